package formatter

import (
	"fmt"
	"strings"

	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/domain"
)

// FormatRecommendations renders the three ranked recommendation lists in a
// box, lead picks first.
func FormatRecommendations(resp *contract.RecommendResponse) string {
	var b strings.Builder

	b.WriteString(contextSummary(resp))
	b.WriteString("\n")

	sections := []struct {
		title string
		items []domain.Record
	}{
		{"Your night", resp.Primary},
		{"And after", resp.After},
		{"Events worth a detour", resp.Events},
	}

	any := false
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		any = true
		b.WriteString(Header(s.title))
		b.WriteString("\n")
		for i, r := range s.items {
			b.WriteString(recommendationLine(i+1, r))
		}
		b.WriteByte('\n')
	}
	if !any {
		b.WriteString(Dim("Nothing matched that night. Try loosening the vibe.") + "\n")
	}
	return b.String()
}

func recommendationLine(rank int, r domain.Record) string {
	var b strings.Builder
	b.WriteString(Dim(padRank(rank)))
	b.WriteString(Bold(r.DisplayName()))
	if g := Genre(r); g != "" {
		b.WriteString("  " + StylePurple.Render(g))
	}
	if p := Place(r); p != "" {
		b.WriteString("  " + Dim(p))
	}
	b.WriteString("  " + Rating(r.Rating))
	b.WriteByte('\n')
	return b.String()
}

func padRank(rank int) string {
	return fmt.Sprintf("%2d. ", rank)
}

// contextSummary restates the slot answers the dialogue collected.
func contextSummary(resp *contract.RecommendResponse) string {
	rc := resp.Context
	parts := make([]string, 0, 7)
	for _, v := range []string{rc.Companionship, rc.Timing, rc.PlanShape, rc.Vibe, rc.Cuisine, rc.AfterDinner, rc.Music} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return Dim(strings.Join(parts, " · ")) + "\n"
}
