package match

import (
	"strings"

	"github.com/davidmontoya/vesper/internal/domain"
)

// Terms is a list of lowercase match terms. An empty list matches every
// record, which is how unrestricted collections like "Trending" are
// expressed.
type Terms []string

// NewTerms lowercases and trims the given terms, dropping blanks.
func NewTerms(terms ...string) Terms {
	out := make(Terms, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Record reports whether any term is a substring of any of the record's
// searchable fields. Field sets are record-kind aware: venues expose their
// vibe tags (matched per element, never as a joined string), music genre,
// and name; events expose their genre and title. The asymmetry is
// intentional and changing it changes which records land in which
// collection.
func (t Terms) Record(r domain.Record) bool {
	if len(t) == 0 {
		return true
	}
	return t.anyField(searchFields(r))
}

// searchFields returns the normalized candidate values for a record.
func searchFields(r domain.Record) []string {
	switch r.Kind {
	case domain.KindEvent:
		return []string{
			strings.ToLower(r.Genre),
			strings.ToLower(r.Name),
		}
	default:
		fields := make([]string, 0, len(r.VibeTags)+2)
		for _, tag := range r.VibeTags {
			fields = append(fields, strings.ToLower(tag))
		}
		fields = append(fields,
			strings.ToLower(r.MusicGenre),
			strings.ToLower(r.Name),
		)
		return fields
	}
}

func (t Terms) anyField(fields []string) bool {
	for _, term := range t {
		for _, f := range fields {
			if f == "" {
				continue
			}
			if strings.Contains(f, term) {
				return true
			}
		}
	}
	return false
}
