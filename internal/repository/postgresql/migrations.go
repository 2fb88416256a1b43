package postgresql

import (
	"context"
	"fmt"

	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
)

// Migrate creates the schema when it does not exist yet. Statements are
// idempotent so startup can run them unconditionally.
func Migrate(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS workers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			daily_wage NUMERIC(12,2) NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			start_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS workers_name_lower_idx
			ON workers (LOWER(name))`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY,
			worker_id UUID NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status TEXT NOT NULL,
			UNIQUE (worker_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS advances (
			id UUID PRIMARY KEY,
			worker_id UUID NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
			amount NUMERIC(12,2) NOT NULL,
			date DATE NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS advances_worker_date_idx
			ON advances (worker_id, date)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			id UUID PRIMARY KEY,
			date DATE NOT NULL UNIQUE,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'manual',
			description TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
