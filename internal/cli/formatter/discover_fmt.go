package formatter

import (
	"fmt"
	"strings"

	"github.com/davidmontoya/vesper/internal/collection"
	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/domain"
)

// FormatDiscover renders the full discover response: one section per
// collection, in menu order.
func FormatDiscover(resp *contract.DiscoverResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Out in %s", resp.City)))
	b.WriteString("\n\n")

	if len(resp.Collections) == 0 {
		b.WriteString(Dim("Nothing on right now. Try another city.") + "\n")
		return b.String()
	}

	for i, c := range resp.Collections {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatCollection(c))
	}
	return b.String()
}

func formatCollection(c collection.Collection) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(c.Label))
	b.WriteString(Dim(fmt.Sprintf("  (%d)", len(c.Items))))
	b.WriteByte('\n')

	rows := make([][]string, 0, len(c.Items))
	for _, r := range c.Items {
		rows = append(rows, recordRow(r))
	}
	b.WriteString(RenderTable([]string{"", "Name", "Genre", "Where", "Rating", "Price"}, rows))
	return b.String()
}

// recordRow builds one table row for a record, shared by the discover and
// search views.
func recordRow(r domain.Record) []string {
	return []string{
		KindBadge(r.Kind),
		r.DisplayName(),
		Genre(r),
		Place(r),
		Rating(r.Rating),
		PriceLevel(r.PriceLevel),
	}
}
