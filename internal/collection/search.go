package collection

import (
	"strings"

	"github.com/davidmontoya/vesper/internal/domain"
)

// DefaultSearchCap bounds search results when the caller passes no cap.
const DefaultSearchCap = 20

// Search returns up to max records whose name, venue name, or genre
// contains the query, case-insensitive. Input order is preserved: search
// results are intentionally not re-ranked, so the same query over the same
// content always renders identically.
//
// A blank query returns an empty result. Distinguishing "no query yet"
// from "query matched nothing" is the caller's job, via query length.
func Search(records []domain.Record, query string, max int) []domain.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if max <= 0 {
		max = DefaultSearchCap
	}

	var out []domain.Record
	for _, r := range records {
		if !searchHit(r, q) {
			continue
		}
		out = append(out, r)
		if len(out) == max {
			break
		}
	}
	return out
}

func searchHit(r domain.Record, q string) bool {
	for _, f := range []string{r.Name, r.VenueName, r.Genre, r.MusicGenre} {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
