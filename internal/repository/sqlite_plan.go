package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/davidmontoya/vesper/internal/db"
	"github.com/davidmontoya/vesper/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(database db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: database}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, title, city, is_tonight, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.City,
		boolToInt(p.IsTonight),
		nullableTimeToString(p.Date, "2006-01-02"),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT id, title, city, is_tonight, date, created_at, updated_at
		FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]domain.Plan, error) {
	query := `SELECT id, title, city, is_tonight, date, created_at, updated_at
		FROM plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		p, err := r.scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans SET title = ?, city = ?, is_tonight = ?, date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.City,
		boolToInt(p.IsTonight),
		nullableTimeToString(p.Date, "2006-01-02"),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var p domain.Plan
	var tonight int
	var dateStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Title, &p.City, &tonight, &dateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	return r.populatePlan(&p, tonight, dateStr, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) scanPlanRow(rows *sql.Rows) (*domain.Plan, error) {
	var p domain.Plan
	var tonight int
	var dateStr sql.NullString
	var createdAtStr, updatedAtStr string

	if err := rows.Scan(&p.ID, &p.Title, &p.City, &tonight, &dateStr, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning plan row: %w", err)
	}
	return r.populatePlan(&p, tonight, dateStr, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) populatePlan(p *domain.Plan, tonight int, dateStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.Plan, error) {
	p.IsTonight = intToBool(tonight)
	p.Date = parseNullableTime(dateStr, "2006-01-02")

	var err error
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return p, nil
}
