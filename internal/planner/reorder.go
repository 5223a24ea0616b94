package planner

import (
	"fmt"

	"github.com/davidmontoya/vesper/internal/domain"
)

// ReorderItems moves the item at from to position to within one plan's
// item list, returning a renumbered copy. It is a pure permutation: items
// never leave the list through this operation, and moving an item to a
// different plan (or a plan to a different group) happens only by editing
// the owning plan, never here.
func ReorderItems(items []domain.PlanItem, from, to int) ([]domain.PlanItem, error) {
	if from < 0 || from >= len(items) {
		return nil, fmt.Errorf("reorder: from index %d out of range [0,%d)", from, len(items))
	}
	if to < 0 || to >= len(items) {
		return nil, fmt.Errorf("reorder: to index %d out of range [0,%d)", to, len(items))
	}

	out := make([]domain.PlanItem, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	out = append(out[:to], append([]domain.PlanItem{items[from]}, out[to:]...)...)

	for i := range out {
		out[i].Position = i
	}
	return out, nil
}

// ReorderPlans moves a plan within a single group's plan list. Cross-group
// moves are rejected by construction: the permutation only ever sees one
// group.
func ReorderPlans(g Group, from, to int) (Group, error) {
	if from < 0 || from >= len(g.Plans) {
		return g, fmt.Errorf("reorder: from index %d out of range [0,%d)", from, len(g.Plans))
	}
	if to < 0 || to >= len(g.Plans) {
		return g, fmt.Errorf("reorder: to index %d out of range [0,%d)", to, len(g.Plans))
	}

	plans := make([]domain.Plan, 0, len(g.Plans))
	plans = append(plans, g.Plans[:from]...)
	plans = append(plans, g.Plans[from+1:]...)
	plans = append(plans[:to], append([]domain.Plan{g.Plans[from]}, plans[to:]...)...)

	g.Plans = plans
	return g, nil
}
