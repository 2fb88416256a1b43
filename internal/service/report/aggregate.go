package report

import (
	"math"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/domain/report"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// countStatuses tallies present/half/absent across the stored rows.
func countStatuses(records []attendance.Record) (present, half, absent int) {
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusHalfDay:
			half++
		case attendance.StatusAbsent:
			absent++
		}
	}
	return present, half, absent
}

// grossPay computes presentDays*wage + halfDays*wage/2.
func grossPay(wage decimal.Decimal, presentDays, halfDays int) decimal.Decimal {
	full := wage.Mul(decimal.NewFromInt(int64(presentDays)))
	halves := wage.Mul(decimal.NewFromInt(int64(halfDays))).Div(two)
	return full.Add(halves)
}

// buildPayrollRow derives one worker's payroll line. NetSalary may go
// negative when advances exceed earnings.
func buildPayrollRow(w worker.Worker, records []attendance.Record, advanceTotal decimal.Decimal) report.PayrollRow {
	present, half, _ := countStatuses(records)
	gross := grossPay(w.DailyWage, present, half)

	return report.PayrollRow{
		WorkerID:    w.ID,
		WorkerName:  w.Name,
		DailyWage:   w.DailyWage,
		PresentDays: present,
		HalfDays:    half,
		TotalDays:   float64(present) + 0.5*float64(half),
		GrossSalary: gross,
		Advances:    advanceTotal,
		NetSalary:   gross.Sub(advanceTotal),
	}
}

// buildAttendanceRow walks every calendar day of the month and classifies
// it: holiday first, then the recorded status, else absent. A day with no
// record and no holiday is an absence even if it lies in the future; the
// report carries no notion of "not yet recorded".
func buildAttendanceRow(w worker.Worker, year, month int, records []attendance.Record, holidayDates map[string]bool) report.AttendanceRow {
	byDate := make(map[string]attendance.Status, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec.Status
	}

	days := daysInMonth(year, month)
	var present, half, absent, holidays int
	for day := 1; day <= days; day++ {
		dateStr := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		switch {
		case holidayDates[dateStr]:
			holidays++
		case byDate[dateStr] == attendance.StatusPresent:
			present++
		case byDate[dateStr] == attendance.StatusHalfDay:
			half++
		default:
			absent++
		}
	}

	workingDays := days - holidays
	percentage := 0.0
	if workingDays > 0 {
		percentage = (float64(present) + 0.5*float64(half)) / float64(workingDays) * 100
		percentage = math.Round(percentage*10) / 10
	}

	return report.AttendanceRow{
		WorkerID:             w.ID,
		WorkerName:           w.Name,
		PresentDays:          present,
		HalfDays:             half,
		AbsentDays:           absent,
		Holidays:             holidays,
		TotalWorkingDays:     workingDays,
		AttendancePercentage: percentage,
	}
}

func holidayDateSet(holidays []holiday.Holiday) map[string]bool {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h.Date.Format("2006-01-02")] = true
	}
	return set
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
