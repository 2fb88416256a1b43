package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
)

// yearMonthFromQuery reads optional year/month query parameters, defaulting
// to the current month. Out-of-range values also fall back to the current
// month rather than producing an empty period.
func yearMonthFromQuery(r *http.Request) (year, month int) {
	now := time.Now()
	year, month = now.Year(), int(now.Month())

	qYear, qMonth := year, month
	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			qYear = parsed
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			qMonth = parsed
		}
	}

	if validator.IsValidYearMonth(qYear, qMonth) {
		year, month = qYear, qMonth
	}
	return year, month
}
