package postgresql

import (
	"context"
	"fmt"

	"github.com/blazecore/payroll-backend-go/internal/domain/advance"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.NewString()

	query := `
		INSERT INTO advances (id, worker_id, amount, date, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.WorkerID, a.Amount, a.Date, a.Note).Scan(&a.CreatedAt)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return a, nil
}

// ListMonth implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListMonth(ctx context.Context, workerID string, year, month int) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	from, to := monthBounds(year, month)

	query := `
		SELECT id, worker_id, amount, date, COALESCE(note, ''), created_at
		FROM advances
		WHERE worker_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.Amount, &a.Date, &a.Note, &a.CreatedAt); err != nil {
			return nil, err
		}
		advances = append(advances, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return advances, nil
}

// SumMonth implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) SumMonth(ctx context.Context, workerID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	from, to := monthBounds(year, month)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advances
		WHERE worker_id = $1 AND date >= $2 AND date < $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, workerID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}

	return total, nil
}
