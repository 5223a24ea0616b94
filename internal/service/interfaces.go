package service

import (
	"context"
	"time"

	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/planner"
)

type DiscoveryService interface {
	// Discover fetches the city's content and builds the home-screen
	// collections.
	Discover(ctx context.Context, req contract.DiscoverRequest) (*contract.DiscoverResponse, error)

	// Search filters the most recently fetched content by free text.
	Search(ctx context.Context, req contract.SearchRequest) (*contract.SearchResponse, error)
}

type RecommendService interface {
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
}

type PlanService interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, item *domain.PlanItem) error
	Items(ctx context.Context, planID string) ([]domain.PlanItem, error)
	UpdateItem(ctx context.Context, item *domain.PlanItem) error
	RemoveItem(ctx context.Context, id string) error

	// Grouped partitions all plans into display buckets for the given
	// reference time.
	Grouped(ctx context.Context, now time.Time) ([]planner.Group, error)

	// ReorderItems moves one item within a plan and persists the resulting
	// positions transactionally, returning the new order.
	ReorderItems(ctx context.Context, planID string, from, to int) ([]domain.PlanItem, error)
}
