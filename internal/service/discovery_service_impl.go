package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/davidmontoya/vesper/internal/api"
	"github.com/davidmontoya/vesper/internal/collection"
	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/domain"
)

type discoveryService struct {
	client api.Client
	menu   []collection.Spec
	clock  func() time.Time

	// Refresh state. A new fetch supersedes an in-flight one: the older
	// call is cancelled and its result, if it arrives anyway, never
	// overwrites the snapshot (last write wins by generation).
	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	city     string
	snapshot []domain.Record
}

// NewDiscoveryService creates a DiscoveryService over the given API client
// and collection menu.
func NewDiscoveryService(client api.Client, menu []collection.Spec) DiscoveryService {
	return &discoveryService{
		client: client,
		menu:   menu,
		clock:  time.Now,
	}
}

func (s *discoveryService) Discover(ctx context.Context, req contract.DiscoverRequest) (*contract.DiscoverResponse, error) {
	now := s.clock()
	if req.Now != nil {
		now = *req.Now
	}

	records, err := s.refresh(ctx, req.City)
	if err != nil {
		return nil, &contract.Error{
			Code:    contract.ErrContentUnavailable,
			Message: fmt.Sprintf("fetching content for %s: %v", req.City, err),
		}
	}

	return &contract.DiscoverResponse{
		GeneratedAt: now,
		City:        req.City,
		Collections: collection.Build(records, s.menu, now),
	}, nil
}

func (s *discoveryService) Search(ctx context.Context, req contract.SearchRequest) (*contract.SearchResponse, error) {
	records, ok := s.cached(req.City)
	if !ok {
		var err error
		records, err = s.refresh(ctx, req.City)
		if err != nil {
			return nil, &contract.Error{
				Code:    contract.ErrContentUnavailable,
				Message: fmt.Sprintf("fetching content for %s: %v", req.City, err),
			}
		}
	}

	return &contract.SearchResponse{
		Query:   req.Query,
		Results: collection.Search(records, req.Query, req.Cap),
	}, nil
}

// refresh fetches the city's content, superseding any in-flight fetch.
// Only the newest generation may write the snapshot; a superseded call
// still returns its own records so its caller sees a consistent view.
func (s *discoveryService) refresh(ctx context.Context, city string) ([]domain.Record, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	records, err := s.client.FetchContent(fetchCtx, city)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if gen == s.gen {
		s.city = city
		s.snapshot = records
	}
	return records, nil
}

// cached returns the latest snapshot for the city, if any.
func (s *discoveryService) cached(city string) ([]domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.city != city || s.snapshot == nil {
		return nil, false
	}
	return s.snapshot, true
}
