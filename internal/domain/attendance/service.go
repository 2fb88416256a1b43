package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance marking and reads.
type AttendanceService interface {
	// Mark upserts the day's status, or deletes it for "unmarked". The
	// response notes when the day is a holiday; marking is never blocked.
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// GetMonth returns the worker's records for a month, newest first,
	// enriched with wage earned and Panchang annotations.
	GetMonth(ctx context.Context, filter MonthFilter) ([]RecordResponse, error)

	// GetMonthByDay returns a day-of-month -> status map for calendar views.
	GetMonthByDay(ctx context.Context, filter MonthFilter) (map[int]Status, error)
}
