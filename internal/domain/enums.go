package domain

type RecordKind string

const (
	KindVenue RecordKind = "venue"
	KindEvent RecordKind = "event"
)

// ValidRecordKinds is the canonical set of accepted record kind strings
// from the content API; anything else decodes as a venue.
var ValidRecordKinds = map[string]bool{
	"venue": true, "event": true,
}

type PlanItemStatus string

const (
	PlanItemPlanned PlanItemStatus = "planned"
	PlanItemDone    PlanItemStatus = "done"
	PlanItemSkipped PlanItemStatus = "skipped"
)
