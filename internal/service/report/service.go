package report

import (
	"context"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/domain/advance"
	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/domain/report"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	holidayRepo    holiday.HolidayRepository
}

func NewReportService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	holidayRepo holiday.HolidayRepository,
) report.ReportService {
	return &ReportServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		holidayRepo:    holidayRepo,
	}
}

// WorkerSummary implements report.ReportService.
func (s *ReportServiceImpl) WorkerSummary(ctx context.Context, workerID string, year, month int) (report.MonthlySummary, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	records, err := s.attendanceRepo.ListMonth(ctx, workerID, year, month)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	totalAdvances, err := s.advanceRepo.SumMonth(ctx, workerID, year, month)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	present, half, absent := countStatuses(records)
	gross := grossPay(w.DailyWage, present, half)

	return report.MonthlySummary{
		WorkerID:      w.ID,
		WorkerName:    w.Name,
		Year:          year,
		Month:         month,
		MonthName:     time.Month(month).String(),
		PresentDays:   present,
		HalfDays:      half,
		AbsentDays:    absent,
		GrossPay:      gross,
		TotalAdvances: totalAdvances,
		NetPay:        gross.Sub(totalAdvances),
	}, nil
}

// Payroll implements report.ReportService.
func (s *ReportServiceImpl) Payroll(ctx context.Context, year, month int) (report.PayrollReport, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return report.PayrollReport{}, err
	}

	result := report.PayrollReport{
		Month:   time.Month(month).String(),
		Year:    year,
		Workers: []report.PayrollRow{},
		Summary: report.PayrollSummary{
			TotalWorkers:  len(workers),
			TotalPayroll:  decimal.Zero,
			TotalAdvances: decimal.Zero,
			TotalNet:      decimal.Zero,
		},
	}

	for _, w := range workers {
		records, err := s.attendanceRepo.ListMonth(ctx, w.ID, year, month)
		if err != nil {
			return report.PayrollReport{}, err
		}
		advanceTotal, err := s.advanceRepo.SumMonth(ctx, w.ID, year, month)
		if err != nil {
			return report.PayrollReport{}, err
		}

		row := buildPayrollRow(w, records, advanceTotal)
		result.Workers = append(result.Workers, row)
		result.Summary.TotalPayroll = result.Summary.TotalPayroll.Add(row.GrossSalary)
		result.Summary.TotalAdvances = result.Summary.TotalAdvances.Add(row.Advances)
		result.Summary.TotalNet = result.Summary.TotalNet.Add(row.NetSalary)
	}

	return result, nil
}

// Attendance implements report.ReportService.
func (s *ReportServiceImpl) Attendance(ctx context.Context, year, month int) (report.AttendanceReport, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	holidays, err := s.holidayRepo.List(ctx, holiday.ListFilter{Year: &year, Month: &month})
	if err != nil {
		return report.AttendanceReport{}, err
	}
	holidayDates := holidayDateSet(holidays)

	days := daysInMonth(year, month)
	result := report.AttendanceReport{
		Month:    time.Month(month).String(),
		Year:     year,
		Workers:  []report.AttendanceRow{},
		Holidays: []holiday.HolidayResponse{},
		Summary: report.AttendanceSummary{
			TotalDays:   days,
			WorkingDays: days - len(holidays),
			Holidays:    len(holidays),
		},
	}
	for _, h := range holidays {
		result.Holidays = append(result.Holidays, holiday.NewHolidayResponse(h))
	}

	for _, w := range workers {
		records, err := s.attendanceRepo.ListMonth(ctx, w.ID, year, month)
		if err != nil {
			return report.AttendanceReport{}, err
		}
		result.Workers = append(result.Workers, buildAttendanceRow(w, year, month, records, holidayDates))
	}

	return result, nil
}
