package planner

import (
	"sort"
	"time"

	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/temporal"
)

// Group keys for the fixed buckets; dated groups use their ISO date as key.
const (
	KeyTonight = "tonight"
	KeyNoDate  = "no_date"
	KeyPast    = "past"
)

// Group is one temporal bucket of plans for display.
type Group struct {
	Key       string
	Label     string
	Plans     []domain.Plan
	IsTonight bool
	Date      *time.Time
}

// GroupPlans partitions plans into display buckets. The rule is exhaustive
// and mutually exclusive: the tonight flag wins first, then a date before
// today goes to Past, then each remaining dated plan is bucketed by its
// exact calendar date, and undated plans land in No Date.
//
// Output order: Tonight first (always present, even empty — the UI hangs
// its create affordance on it), dated groups ascending, No Date, then Past
// last. No Date and Past appear only when non-empty.
func GroupPlans(plans []domain.Plan, now time.Time) []Group {
	tonight := Group{Key: KeyTonight, Label: "Tonight", IsTonight: true}
	noDate := Group{Key: KeyNoDate, Label: "No Date"}
	past := Group{Key: KeyPast, Label: "Past"}
	dated := make(map[string]*Group)

	for _, p := range plans {
		switch {
		case p.IsTonight:
			tonight.Plans = append(tonight.Plans, p)
		case p.Date == nil:
			noDate.Plans = append(noDate.Plans, p)
		case temporal.IsPast(*p.Date, now):
			past.Plans = append(past.Plans, p)
		default:
			key := temporal.StartOfDay(*p.Date).Format("2006-01-02")
			g, ok := dated[key]
			if !ok {
				day := temporal.StartOfDay(*p.Date)
				g = &Group{
					Key:   key,
					Label: temporal.RelativeLabel(day, now),
					Date:  &day,
				}
				dated[key] = g
			}
			g.Plans = append(g.Plans, p)
		}
	}

	keys := make([]string, 0, len(dated))
	for k := range dated {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := []Group{tonight}
	for _, k := range keys {
		out = append(out, *dated[k])
	}
	if len(noDate.Plans) > 0 {
		out = append(out, noDate)
	}
	if len(past.Plans) > 0 {
		out = append(out, past)
	}
	return out
}
