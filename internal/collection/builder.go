package collection

import (
	"sort"
	"time"

	"github.com/davidmontoya/vesper/internal/domain"
)

// Build runs every spec over the records: filter, stable sort, cap, and
// drop empty results. Specs are independent, so a record can legitimately
// appear in several output collections; there is no cross-collection
// dedup. The sort is stable so records with equal keys keep their input
// order across identical re-fetches and the rendered rows do not jitter.
func Build(records []domain.Record, specs []Spec, now time.Time) []Collection {
	out := make([]Collection, 0, len(specs))
	for _, spec := range specs {
		var items []domain.Record
		for _, r := range records {
			if spec.Match(r, now) {
				items = append(items, r)
			}
		}
		if spec.SortBy != nil {
			less := spec.SortBy
			sort.SliceStable(items, func(i, j int) bool {
				return less(items[i], items[j])
			})
		}
		if spec.Cap > 0 && len(items) > spec.Cap {
			items = items[:spec.Cap]
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, Collection{Label: spec.Label, Items: items})
	}
	return out
}
