package domain

import "time"

// Plan is a user-assembled night plan. A plan either carries the tonight
// flag, a concrete date, or neither; grouping for display is derived from
// those two fields plus the current time.
type Plan struct {
	ID        string
	Title     string
	City      string
	IsTonight bool
	Date      *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanItem is one stop on a plan (a venue or an event), ordered by Position
// within its plan.
type PlanItem struct {
	ID        string
	PlanID    string
	Position  int
	RecordID  string
	Name      string
	Note      string
	Status    PlanItemStatus
	CreatedAt time.Time
}
