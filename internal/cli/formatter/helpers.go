package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davidmontoya/vesper/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Rating renders a record's rating as "★ 4.6", dimmed dashes when absent.
func Rating(r *float64) string {
	if r == nil {
		return StyleDim.Render("★ --")
	}
	return StyleYellow.Render(fmt.Sprintf("★ %.1f", *r))
}

// PriceLevel renders a record's price level as "€" through "€€€€".
func PriceLevel(level *int) string {
	n := domain.IntFromPtrWithDefault(0, level)
	if n <= 0 {
		return StyleDim.Render("--")
	}
	if n > 4 {
		n = 4
	}
	return StyleGreen.Render(strings.Repeat("€", n))
}

// Genre returns the genre label appropriate for the record's kind.
func Genre(r domain.Record) string {
	if r.Kind == domain.KindEvent {
		return r.Genre
	}
	return r.MusicGenre
}

// Place returns the best location label for a record: neighborhood when
// known, host venue for events, city otherwise.
func Place(r domain.Record) string {
	return domain.CoalesceStr(r.Neighborhood, r.VenueName, r.City)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
