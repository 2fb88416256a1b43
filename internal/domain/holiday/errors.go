package holiday

import "errors"

var (
	ErrHolidayExists   = errors.New("a holiday already exists on this date")
	ErrHolidayNotFound = errors.New("holiday not found")
)
