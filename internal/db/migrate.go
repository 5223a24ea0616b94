package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		city       TEXT NOT NULL DEFAULT '',
		is_tonight INTEGER NOT NULL DEFAULT 0,
		date       TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plan_items (
		id         TEXT PRIMARY KEY,
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL DEFAULT 0,
		record_id  TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'planned'
		           CHECK(status IN ('planned','done','skipped')),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_items_plan ON plan_items(plan_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_date ON plans(date)`,
}

// Migrate runs all schema migrations. Statements are written to be
// re-runnable, so the whole list executes on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
