package response

import (
	"errors"
	"net/http"

	"github.com/blazecore/payroll-backend-go/internal/domain/advance"
	"github.com/blazecore/payroll-backend-go/internal/domain/auth"
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Store-level error text
// never reaches the client; anything unrecognized becomes a generic 500.
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation failures carry their own detail map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerNameExists):
		BadRequest(w, "A worker with this name already exists", nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrOverTransactionCeiling):
		BadRequest(w, "Advance amount exceeds the per-transaction limit", nil)
	case errors.Is(err, advance.ErrOverMonthlyCeiling):
		BadRequest(w, "Total advances for the month would exceed the monthly limit", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayExists):
		BadRequest(w, "A holiday already exists on this date", nil)
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
