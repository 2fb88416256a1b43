package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows.
type AttendanceRepository interface {
	// Upsert sets the status for (workerID, date), overwriting any
	// previously stored status for that day.
	Upsert(ctx context.Context, workerID string, date time.Time, status Status) error

	// Delete removes the row for (workerID, date) if present.
	Delete(ctx context.Context, workerID string, date time.Time) error

	// ListMonth returns the worker's rows for a calendar month,
	// ordered by date descending.
	ListMonth(ctx context.Context, workerID string, year, month int) ([]Record, error)
}
