package attendance

import (
	"context"
	"fmt"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/pkg/cache"
	"github.com/blazecore/payroll-backend-go/internal/pkg/panchang"
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MonthCache caches month-scoped attendance reads. It is best-effort:
// the repository stays the source of truth and staleness is bounded by
// the cache TTL.
type MonthCache = cache.Cache[[]attendance.Record]

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	holidayRepo    holiday.HolidayRepository
	monthCache     *MonthCache
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	holidayRepo holiday.HolidayRepository,
	monthCache *MonthCache,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		holidayRepo:    holidayRepo,
		monthCache:     monthCache,
	}
}

func monthKey(workerID string, year, month int) string {
	return fmt.Sprintf("%s:%04d-%02d", workerID, year, month)
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	status := attendance.Status(req.Status)

	// The day may be a holiday; marking proceeds, the caller gets a note.
	hol, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	if status == attendance.StatusUnmarked {
		err = s.attendanceRepo.Delete(ctx, w.ID, date)
	} else {
		err = s.attendanceRepo.Upsert(ctx, w.ID, date, status)
	}
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	s.monthCache.Invalidate(monthKey(w.ID, date.Year(), int(date.Month())))

	message := fmt.Sprintf("Attendance marked as %s for %s", req.Status, w.Name)
	if hol != nil && status.CountsAsWorked() {
		message += fmt.Sprintf(" (Note: %s is marked as a holiday)", hol.Name)
	}

	return attendance.MarkAttendanceResponse{
		Message:        message,
		HolidayWarning: hol != nil,
		WorkerName:     w.Name,
	}, nil
}

// GetMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonth(ctx context.Context, filter attendance.MonthFilter) ([]attendance.RecordResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, filter.WorkerID)
	if err != nil {
		return nil, err
	}

	records, err := s.listMonthCached(ctx, filter)
	if err != nil {
		return nil, err
	}

	half := decimal.NewFromInt(2)
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp := attendance.RecordResponse{
			Date:   rec.Date.Format("2006-01-02"),
			Status: rec.Status,
		}
		switch rec.Status {
		case attendance.StatusPresent:
			resp.WageEarned = w.DailyWage
		case attendance.StatusHalfDay:
			resp.WageEarned = w.DailyWage.Div(half)
		default:
			resp.WageEarned = decimal.Zero
		}

		summary := panchang.GetSummary(rec.Date)
		resp.HinduDate = &summary

		responses = append(responses, resp)
	}

	return responses, nil
}

// GetMonthByDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthByDay(ctx context.Context, filter attendance.MonthFilter) (map[int]attendance.Status, error) {
	if _, err := s.workerRepo.GetByID(ctx, filter.WorkerID); err != nil {
		return nil, err
	}

	records, err := s.listMonthCached(ctx, filter)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]attendance.Status, len(records))
	for _, rec := range records {
		byDay[rec.Date.Day()] = rec.Status
	}

	return byDay, nil
}

func (s *AttendanceServiceImpl) listMonthCached(ctx context.Context, filter attendance.MonthFilter) ([]attendance.Record, error) {
	key := monthKey(filter.WorkerID, filter.Year, filter.Month)
	if records, ok := s.monthCache.Get(key); ok {
		return records, nil
	}

	records, err := s.attendanceRepo.ListMonth(ctx, filter.WorkerID, filter.Year, filter.Month)
	if err != nil {
		return nil, err
	}

	s.monthCache.Set(key, records)
	return records, nil
}
