package formatter

import (
	"fmt"
	"strings"

	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/planner"
)

// FormatPlanGroups renders the grouped plan overview: Tonight first, then
// each dated bucket, then No Date and Past.
func FormatPlanGroups(groups []planner.Group) string {
	var b strings.Builder

	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Header(g.Label))
		b.WriteString("\n")

		if len(g.Plans) == 0 {
			b.WriteString(Dim("No plans yet. vesper plan add --tonight") + "\n")
			continue
		}
		for _, p := range g.Plans {
			b.WriteString(formatPlanLine(p))
		}
	}
	return b.String()
}

func formatPlanLine(p domain.Plan) string {
	line := fmt.Sprintf("  %s  %s", TruncID(p.ID), Bold(p.Title))
	if p.City != "" {
		line += "  " + Dim(p.City)
	}
	return line + "\n"
}

// FormatPlanDetail renders one plan with its ordered items.
func FormatPlanDetail(p *domain.Plan, items []domain.PlanItem) string {
	var b strings.Builder

	b.WriteString(Header(p.Title))
	b.WriteString("\n")
	meta := []string{TruncID(p.ID)}
	if p.City != "" {
		meta = append(meta, p.City)
	}
	switch {
	case p.IsTonight:
		meta = append(meta, "tonight")
	case p.Date != nil:
		meta = append(meta, p.Date.Format("Mon, Jan 2"))
	}
	b.WriteString(Dim(strings.Join(meta, " · ")) + "\n\n")

	if len(items) == 0 {
		b.WriteString(Dim("No stops yet. vesper plan item add") + "\n")
		return b.String()
	}

	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %d. %s  %s", item.Position+1, item.Name, ItemStatusPill(item.Status)))
		if item.Note != "" {
			b.WriteString("  " + Dim(item.Note))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
