package http

import (
	"net/http"

	"github.com/blazecore/payroll-backend-go/internal/domain/report"
	"github.com/blazecore/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Payroll(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthFromQuery(r)

	result, err := h.reportService.Payroll(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthFromQuery(r)

	result, err := h.reportService.Attendance(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
