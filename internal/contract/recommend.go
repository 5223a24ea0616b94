package contract

import (
	"time"

	"github.com/davidmontoya/vesper/internal/dialogue"
	"github.com/davidmontoya/vesper/internal/domain"
)

// RecommendRequest carries a finished dialogue to the recommendation
// collaborator. State must be terminal; anything earlier is rejected with
// ErrDialogueIncomplete.
type RecommendRequest struct {
	City  string
	State dialogue.State
}

// RecommendResponse returns the three server-ordered lists untouched,
// plus the context that produced them.
type RecommendResponse struct {
	GeneratedAt time.Time
	Context     dialogue.RecommendationContext
	Primary     []domain.Record
	After       []domain.Record
	Events      []domain.Record
}
