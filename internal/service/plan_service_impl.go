package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidmontoya/vesper/internal/contract"
	"github.com/davidmontoya/vesper/internal/db"
	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/planner"
	"github.com/davidmontoya/vesper/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
	items repository.PlanItemRepo
	uow   db.UnitOfWork
	clock func() time.Time
}

// NewPlanService creates a PlanService over the given repositories.
func NewPlanService(plans repository.PlanRepo, items repository.PlanItemRepo, uow db.UnitOfWork) PlanService {
	return &planService{
		plans: plans,
		items: items,
		uow:   uow,
		clock: time.Now,
	}
}

func (s *planService) Create(ctx context.Context, p *domain.Plan) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := s.clock()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.plans.Create(ctx, p)
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, planErr(id, err)
	}
	return p, nil
}

func (s *planService) List(ctx context.Context) ([]domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Update(ctx context.Context, p *domain.Plan) error {
	p.UpdatedAt = s.clock()
	if err := s.plans.Update(ctx, p); err != nil {
		return planErr(p.ID, err)
	}
	return nil
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func (s *planService) AddItem(ctx context.Context, item *domain.PlanItem) error {
	if _, err := s.plans.GetByID(ctx, item.PlanID); err != nil {
		return planErr(item.PlanID, err)
	}
	existing, err := s.items.ListByPlan(ctx, item.PlanID)
	if err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = domain.PlanItemPlanned
	}
	item.Position = len(existing)
	item.CreatedAt = s.clock()
	return s.items.Create(ctx, item)
}

func (s *planService) Items(ctx context.Context, planID string) ([]domain.PlanItem, error) {
	return s.items.ListByPlan(ctx, planID)
}

func (s *planService) UpdateItem(ctx context.Context, item *domain.PlanItem) error {
	return s.items.Update(ctx, item)
}

func (s *planService) RemoveItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *planService) Grouped(ctx context.Context, now time.Time) ([]planner.Group, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	return planner.GroupPlans(plans, now), nil
}

func (s *planService) ReorderItems(ctx context.Context, planID string, from, to int) ([]domain.PlanItem, error) {
	items, err := s.items.ListByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	reordered, err := planner.ReorderItems(items, from, to)
	if err != nil {
		return nil, &contract.Error{
			Code:    contract.ErrInvalidReorder,
			Message: err.Error(),
		}
	}

	// Persist all positions or none.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.TxPlanItemRepo(tx).SavePositions(ctx, reordered)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting reorder: %w", err)
	}
	return reordered, nil
}

func planErr(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &contract.Error{
			Code:    contract.ErrPlanNotFound,
			Message: "no plan with id " + id,
		}
	}
	return err
}
