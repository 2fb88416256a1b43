package worker

import (
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name      string          `json:"name"`
	Wage      decimal.Decimal `json:"wage"`
	Phone     string          `json:"phone"`
	StartDate string          `json:"start_date"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "worker name cannot be empty",
		})
	}

	if r.Wage.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage",
			Message: "daily wage must be greater than 0",
		})
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if !validator.IsEmpty(r.StartDate) {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "invalid date format, use YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID   string          `json:"-"`
	Name string          `json:"name"`
	Wage decimal.Decimal `json:"wage"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "worker name cannot be empty",
		})
	}

	if r.Wage.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage",
			Message: "daily wage must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkerResponse mirrors the worker row. Wage duplicates DailyWage because
// older clients read the field under both names.
type WorkerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	DailyWage decimal.Decimal `json:"daily_wage"`
	Wage      decimal.Decimal `json:"wage"`
	Phone     string          `json:"phone,omitempty"`
	StartDate string          `json:"start_date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// WorkerListItem is a WorkerResponse enriched with the current month's
// attendance figures for the dashboard listing.
type WorkerListItem struct {
	WorkerResponse
	AttendanceCount int  `json:"attendance_count"`
	PresentToday    bool `json:"present_today"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	resp := WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		DailyWage: w.DailyWage,
		Wage:      w.DailyWage,
		Phone:     w.Phone,
		CreatedAt: w.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if w.StartDate != nil {
		resp.StartDate = w.StartDate.Format("2006-01-02")
	}
	return resp
}
