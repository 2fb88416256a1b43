package advance

import (
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GiveAdvanceRequest struct {
	WorkerID string          `json:"worker_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

func (r *GiveAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "advance amount must be greater than 0",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdvanceResponse is one month-view advance row. Reason duplicates Note;
// older clients read the field under both names.
type AdvanceResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Note   string          `json:"note"`
	Reason string          `json:"reason"`
}

// MonthFilter scopes a fetch to one worker's calendar month.
type MonthFilter struct {
	WorkerID string
	Year     int
	Month    int
}
