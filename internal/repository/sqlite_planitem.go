package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/davidmontoya/vesper/internal/db"
	"github.com/davidmontoya/vesper/internal/domain"
)

// SQLitePlanItemRepo implements PlanItemRepo using a SQLite database.
type SQLitePlanItemRepo struct {
	db db.DBTX
}

// NewSQLitePlanItemRepo creates a new SQLitePlanItemRepo.
func NewSQLitePlanItemRepo(database db.DBTX) *SQLitePlanItemRepo {
	return &SQLitePlanItemRepo{db: database}
}

func (r *SQLitePlanItemRepo) Create(ctx context.Context, item *domain.PlanItem) error {
	query := `INSERT INTO plan_items (id, plan_id, position, record_id, name, note, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.PlanID,
		item.Position,
		item.RecordID,
		item.Name,
		item.Note,
		string(item.Status),
		item.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan item: %w", err)
	}
	return nil
}

func (r *SQLitePlanItemRepo) GetByID(ctx context.Context, id string) (*domain.PlanItem, error) {
	query := `SELECT id, plan_id, position, record_id, name, note, status, created_at
		FROM plan_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanPlanItem(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan item: %w", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

func (r *SQLitePlanItemRepo) ListByPlan(ctx context.Context, planID string) ([]domain.PlanItem, error) {
	query := `SELECT id, plan_id, position, record_id, name, note, status, created_at
		FROM plan_items WHERE plan_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing plan items: %w", err)
	}
	defer rows.Close()

	var items []domain.PlanItem
	for rows.Next() {
		item, err := scanPlanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan items: %w", err)
	}
	return items, nil
}

func (r *SQLitePlanItemRepo) Update(ctx context.Context, item *domain.PlanItem) error {
	query := `UPDATE plan_items SET position = ?, record_id = ?, name = ?, note = ?, status = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Position,
		item.RecordID,
		item.Name,
		item.Note,
		string(item.Status),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanItemRepo) SavePositions(ctx context.Context, items []domain.PlanItem) error {
	for _, item := range items {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE plan_items SET position = ? WHERE id = ?`, item.Position, item.ID,
		); err != nil {
			return fmt.Errorf("saving position of plan item %s: %w", item.ID, err)
		}
	}
	return nil
}

func (r *SQLitePlanItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plan_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan item: %w", err)
	}
	return nil
}

// scanPlanItem scans one row using the given Scan func, shared between
// single-row and multi-row queries.
func scanPlanItem(scan func(dest ...any) error) (*domain.PlanItem, error) {
	var item domain.PlanItem
	var status, createdAtStr string

	if err := scan(
		&item.ID, &item.PlanID, &item.Position, &item.RecordID,
		&item.Name, &item.Note, &status, &createdAtStr,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan item: %w", err)
	}

	item.Status = domain.PlanItemStatus(status)
	var err error
	item.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &item, nil
}

// Compile-time verification the implementations satisfy their interfaces.
var (
	_ PlanRepo     = (*SQLitePlanRepo)(nil)
	_ PlanItemRepo = (*SQLitePlanItemRepo)(nil)
)
