package contract

import (
	"time"

	"github.com/davidmontoya/vesper/internal/collection"
	"github.com/davidmontoya/vesper/internal/domain"
)

// DiscoverRequest asks for the home-screen collections of a city.
// Now overrides the wall clock for deterministic output; nil means now.
type DiscoverRequest struct {
	City string
	Now  *time.Time
}

// DiscoverResponse carries the built, non-empty collections in display
// order.
type DiscoverResponse struct {
	GeneratedAt time.Time
	City        string
	Collections []collection.Collection
}

// SearchRequest is a free-text search over the city's fetched content.
type SearchRequest struct {
	City  string
	Query string
	Cap   int
}

// SearchResponse carries the capped, input-ordered matches. Empty both for
// a blank query and for a query matching nothing; the caller tells those
// apart by the query itself.
type SearchResponse struct {
	Query   string
	Results []domain.Record
}
