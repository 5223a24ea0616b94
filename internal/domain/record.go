package domain

// Record is a single venue or event as returned by the content API.
// The API is loosely typed: field presence is not guaranteed, so optional
// numeric fields are pointers and absent values degrade to documented
// defaults (missing score ranks as 0, missing timestamp lands in the
// no-date bucket) rather than failing.
type Record struct {
	ID           string
	Kind         RecordKind
	Name         string
	Category     string
	Neighborhood string
	City         string

	Rating          *float64
	PopularityScore *float64
	PriceLevel      *int

	// StartsAt is the raw ISO-8601 timestamp from the API, empty when absent.
	StartsAt string

	// Venue-only fields.
	VibeTags   []string
	MusicGenre string

	// Event-only fields.
	Genre     string
	VenueName string
}

// Popularity returns the popularity score, or 0 when the API omitted it.
// Records without a score are still rankable, just at the bottom.
func (r Record) Popularity() float64 {
	return Float64FromPtrWithDefault(0, r.PopularityScore)
}

// RatingValue returns the rating, or 0 when the API omitted it.
func (r Record) RatingValue() float64 {
	return Float64FromPtrWithDefault(0, r.Rating)
}

// DisplayName returns the best available label for the record.
func (r Record) DisplayName() string {
	return CoalesceStr(r.Name, r.VenueName, r.ID)
}
