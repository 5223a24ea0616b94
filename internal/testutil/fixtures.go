package testutil

import (
	"time"

	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/google/uuid"
)

// Record options
type RecordOption func(*domain.Record)

func WithScore(score float64) RecordOption {
	return func(r *domain.Record) {
		r.PopularityScore = &score
	}
}

func WithStartsAt(ts time.Time) RecordOption {
	return func(r *domain.Record) {
		r.StartsAt = ts.Format(time.RFC3339)
	}
}

func WithVibes(tags ...string) RecordOption {
	return func(r *domain.Record) {
		r.VibeTags = tags
	}
}

func WithCity(city string) RecordOption {
	return func(r *domain.Record) {
		r.City = city
	}
}

// NewEvent builds an event record with sensible defaults for tests.
func NewEvent(name, genre string, opts ...RecordOption) domain.Record {
	r := domain.Record{
		ID:    uuid.NewString(),
		Kind:  domain.KindEvent,
		Name:  name,
		Genre: genre,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewVenue builds a venue record with sensible defaults for tests.
func NewVenue(name, musicGenre string, opts ...RecordOption) domain.Record {
	r := domain.Record{
		ID:         uuid.NewString(),
		Kind:       domain.KindVenue,
		Name:       name,
		MusicGenre: musicGenre,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Plan options
type PlanOption func(*domain.Plan)

func WithDate(d time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.Date = &d
	}
}

func Tonight() PlanOption {
	return func(p *domain.Plan) {
		p.IsTonight = true
	}
}

// NewPlan builds a plan with generated ID and fixed timestamps.
func NewPlan(title string, now time.Time, opts ...PlanOption) domain.Plan {
	p := domain.Plan{
		ID:        uuid.NewString(),
		Title:     title,
		City:      "lisbon",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewPlanItem builds a plan item at the given position.
func NewPlanItem(planID, name string, position int, now time.Time) domain.PlanItem {
	return domain.PlanItem{
		ID:        uuid.NewString(),
		PlanID:    planID,
		Position:  position,
		Name:      name,
		Status:    domain.PlanItemPlanned,
		CreatedAt: now,
	}
}
