package holiday

import (
	"context"
	"time"
)

// HolidayService defines business logic for the holiday calendar.
type HolidayService interface {
	Add(ctx context.Context, req AddHolidayRequest) (HolidayResponse, error)
	List(ctx context.Context, filter ListFilter) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error

	// IsHoliday is a point lookup used to annotate attendance marking.
	IsHoliday(ctx context.Context, date time.Time) (*Holiday, error)
}
