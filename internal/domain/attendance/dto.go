package attendance

import (
	"github.com/blazecore/payroll-backend-go/internal/pkg/panchang"
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MarkAttendanceRequest struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date format, use YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Half Day, unmarked",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkAttendanceResponse carries the holiday annotation: marking a holiday
// is allowed, only flagged.
type MarkAttendanceResponse struct {
	Message        string `json:"message"`
	HolidayWarning bool   `json:"holiday_warning"`
	WorkerName     string `json:"worker_name"`
}

// RecordResponse is one month-view row, enriched with the wage earned that
// day and the Panchang annotation.
type RecordResponse struct {
	Date       string            `json:"date"`
	Status     Status            `json:"status"`
	WageEarned decimal.Decimal   `json:"wage_earned"`
	HinduDate  *panchang.Summary `json:"hindu_date,omitempty"`
}

// MonthFilter scopes a fetch to one worker's calendar month.
type MonthFilter struct {
	WorkerID string
	Year     int
	Month    int
}
