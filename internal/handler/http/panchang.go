package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blazecore/payroll-backend-go/internal/handler/http/response"
	"github.com/blazecore/payroll-backend-go/internal/pkg/panchang"
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
)

type PanchangHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Festivals(w http.ResponseWriter, r *http.Request)
	SuggestedHolidays(w http.ResponseWriter, r *http.Request)
}

type panchangHandlerImpl struct{}

func NewPanchangHandler() PanchangHandler {
	return &panchangHandlerImpl{}
}

func (h *panchangHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	response.Success(w, panchang.GetSummary(date))
}

func (h *panchangHandlerImpl) Festivals(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthFromPath(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	// Month 0 means the whole year.
	var festivals []panchang.MonthFestival
	if month == 0 {
		for m := 1; m <= 12; m++ {
			festivals = append(festivals, panchang.MonthFestivals(year, m)...)
		}
	} else {
		festivals = panchang.MonthFestivals(year, month)
	}

	response.Success(w, map[string]any{
		"year":      year,
		"month":     month,
		"festivals": festivals,
	})
}

func (h *panchangHandlerImpl) SuggestedHolidays(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthFromPath(r)
	if !ok || !validator.IsValidYearMonth(year, month) {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	response.Success(w, map[string]any{
		"year":        year,
		"month":       month,
		"suggestions": panchang.SuggestedHolidays(year, month),
	})
}

func yearMonthFromPath(r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
