package repository

import (
	"context"
	"errors"

	"github.com/davidmontoya/vesper/internal/db"
	"github.com/davidmontoya/vesper/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

type PlanItemRepo interface {
	Create(ctx context.Context, item *domain.PlanItem) error
	GetByID(ctx context.Context, id string) (*domain.PlanItem, error)
	ListByPlan(ctx context.Context, planID string) ([]domain.PlanItem, error)
	Update(ctx context.Context, item *domain.PlanItem) error
	// SavePositions persists the Position of every given item. Callers run
	// it inside a transaction via a tx-scoped repo so a reorder is applied
	// all or nothing.
	SavePositions(ctx context.Context, items []domain.PlanItem) error
	Delete(ctx context.Context, id string) error
}

// TxPlanItemRepo creates a PlanItemRepo bound to a transaction's DBTX.
func TxPlanItemRepo(tx db.DBTX) PlanItemRepo {
	return &SQLitePlanItemRepo{db: tx}
}
