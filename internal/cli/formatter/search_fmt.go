package formatter

import (
	"fmt"
	"strings"

	"github.com/davidmontoya/vesper/internal/contract"
)

// FormatSearch renders search results as a flat table.
func FormatSearch(resp *contract.SearchResponse) string {
	var b strings.Builder

	if len(resp.Results) == 0 {
		b.WriteString(Dim(fmt.Sprintf("No matches for %q.", resp.Query)) + "\n")
		return b.String()
	}

	b.WriteString(Header(fmt.Sprintf("%d matches for %q", len(resp.Results), resp.Query)))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		rows = append(rows, recordRow(r))
	}
	b.WriteString(RenderTable([]string{"", "Name", "Genre", "Where", "Rating", "Price"}, rows))
	return b.String()
}
