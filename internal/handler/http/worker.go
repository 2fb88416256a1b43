package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/blazecore/payroll-backend-go/internal/domain/advance"
	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/report"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendanceByDay(w http.ResponseWriter, r *http.Request)
	GetAdvances(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService     worker.WorkerService
	attendanceService attendance.AttendanceService
	advanceService    advance.AdvanceService
	reportService     report.ReportService
}

func NewWorkerHandler(
	workerService worker.WorkerService,
	attendanceService attendance.AttendanceService,
	advanceService advance.AdvanceService,
	reportService report.ReportService,
) WorkerHandler {
	return &workerHandlerImpl{
		workerService:     workerService,
		attendanceService: attendanceService,
		advanceService:    advanceService,
		reportService:     reportService,
	}
}

func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("Worker '%s' added successfully", result.Name), result)
}

func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.workerService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Worker '%s' updated successfully", result.Name), result)
}

func (h *workerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	if err := h.workerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted successfully", nil)
}

func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workerService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.workerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	year, month := yearMonthFromQuery(r)

	result, err := h.attendanceService.GetMonth(r.Context(), attendance.MonthFilter{
		WorkerID: id,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) GetAttendanceByDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	year, month := yearMonthFromQuery(r)

	result, err := h.attendanceService.GetMonthByDay(r.Context(), attendance.MonthFilter{
		WorkerID: id,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) GetAdvances(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	year, month := yearMonthFromQuery(r)

	result, err := h.advanceService.GetMonth(r.Context(), advance.MonthFilter{
		WorkerID: id,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	year, month := yearMonthFromQuery(r)

	result, err := h.reportService.WorkerSummary(r.Context(), id, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
