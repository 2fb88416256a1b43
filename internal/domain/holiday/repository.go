package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for holiday rows.
type HolidayRepository interface {
	// Create inserts a holiday, returning ErrHolidayExists when the date
	// is already taken. The existing row is never overwritten.
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// List returns holidays matching the filter. Unfiltered listings come
	// newest first; year- or month-scoped listings in ascending date order.
	List(ctx context.Context, filter ListFilter) ([]Holiday, error)

	// GetByDate returns the holiday covering a date, or nil.
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)

	// Delete removes a holiday by id, returning ErrHolidayNotFound when
	// no row matches.
	Delete(ctx context.Context, id string) error
}
