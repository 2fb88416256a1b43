package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdvanceRepository defines data access for advance rows.
type AdvanceRepository interface {
	// Create appends a new advance.
	Create(ctx context.Context, a Advance) (Advance, error)

	// ListMonth returns the worker's advances for a calendar month,
	// ordered by date descending.
	ListMonth(ctx context.Context, workerID string, year, month int) ([]Advance, error)

	// SumMonth returns the worker's total advances for a calendar month.
	SumMonth(ctx context.Context, workerID string, year, month int) (decimal.Decimal, error)
}
