package service

import (
	"context"
	"fmt"
	"time"

	"github.com/davidmontoya/vesper/internal/api"
	"github.com/davidmontoya/vesper/internal/contract"
)

type recommendService struct {
	client api.Client
	clock  func() time.Time
}

// NewRecommendService creates a RecommendService over the given API client.
func NewRecommendService(client api.Client) RecommendService {
	return &recommendService{client: client, clock: time.Now}
}

func (s *recommendService) Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error) {
	rctx, err := req.State.Context()
	if err != nil {
		return nil, &contract.Error{
			Code:    contract.ErrDialogueIncomplete,
			Message: "finish the dialogue before requesting recommendations",
		}
	}

	recs, err := s.client.Recommend(ctx, req.City, rctx)
	if err != nil {
		return nil, &contract.Error{
			Code:    contract.ErrContentUnavailable,
			Message: fmt.Sprintf("requesting recommendations for %s: %v", req.City, err),
		}
	}

	// The three lists come back already ranked by the service; they are
	// passed through untouched.
	return &contract.RecommendResponse{
		GeneratedAt: s.clock(),
		Context:     rctx,
		Primary:     recs.Primary,
		After:       recs.After,
		Events:      recs.Events,
	}, nil
}
