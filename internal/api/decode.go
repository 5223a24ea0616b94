package api

import "github.com/davidmontoya/vesper/internal/domain"

// wireRecord mirrors the loosely-typed record shape the content service
// emits. Every field is optional and several travel under more than one
// name (name/title, genre/musicGenre, timestamp/date); decoding tolerates
// all of it and never fails on absence.
type wireRecord struct {
	ID           string   `json:"id"`
	Kind         string   `json:"type"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Genre        string   `json:"genre"`
	MusicGenre   string   `json:"musicGenre"`
	VibeTags     []string `json:"vibeTags"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city"`
	VenueName    string   `json:"venueName"`
	Timestamp    string   `json:"timestamp"`
	Date         string   `json:"date"`

	Rating          *float64 `json:"rating"`
	PopularityScore *float64 `json:"popularityScore"`
	PriceLevel      *int     `json:"priceLevel"`
}

// toDomain narrows a wire record into the tagged domain variant. Records
// without an explicit type are classed as events when they carry
// event-shaped fields (title, genre, venue name), venues otherwise.
func (w wireRecord) toDomain() domain.Record {
	kind := domain.RecordKind(w.Kind)
	if !domain.ValidRecordKinds[w.Kind] {
		if w.Title != "" || w.Genre != "" || w.VenueName != "" {
			kind = domain.KindEvent
		} else {
			kind = domain.KindVenue
		}
	}

	return domain.Record{
		ID:              w.ID,
		Kind:            kind,
		Name:            domain.CoalesceStr(w.Name, w.Title),
		Category:        w.Category,
		Neighborhood:    w.Neighborhood,
		City:            w.City,
		Rating:          w.Rating,
		PopularityScore: w.PopularityScore,
		PriceLevel:      w.PriceLevel,
		StartsAt:        domain.CoalesceStr(w.Timestamp, w.Date),
		VibeTags:        w.VibeTags,
		MusicGenre:      w.MusicGenre,
		Genre:           w.Genre,
		VenueName:       w.VenueName,
	}
}

func toDomainList(items []wireRecord) []domain.Record {
	out := make([]domain.Record, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out
}
