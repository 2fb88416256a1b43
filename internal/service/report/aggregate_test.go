package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
)

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func TestGrossPay(t *testing.T) {
	wage := decimal.NewFromInt(600)

	assert.True(t, decimal.NewFromInt(900).Equal(grossPay(wage, 1, 1)))
	assert.True(t, decimal.Zero.Equal(grossPay(wage, 0, 0)))
	assert.True(t, decimal.NewFromInt(3000).Equal(grossPay(wage, 5, 0)))

	// Odd wage halves cleanly under decimal arithmetic.
	odd := decimal.NewFromInt(555)
	assert.True(t, decimal.NewFromFloat(277.5).Equal(grossPay(odd, 0, 1)))
}

func TestBuildPayrollRow(t *testing.T) {
	w := worker.Worker{
		ID:        "w1",
		Name:      "Ravi",
		DailyWage: decimal.NewFromInt(600),
	}
	records := []attendance.Record{
		{WorkerID: "w1", Date: day(2025, 6, 1), Status: attendance.StatusPresent},
		{WorkerID: "w1", Date: day(2025, 6, 2), Status: attendance.StatusHalfDay},
	}

	row := buildPayrollRow(w, records, decimal.NewFromInt(500))

	assert.Equal(t, 1, row.PresentDays)
	assert.Equal(t, 1, row.HalfDays)
	assert.Equal(t, 1.5, row.TotalDays)
	assert.True(t, decimal.NewFromInt(900).Equal(row.GrossSalary))
	assert.True(t, decimal.NewFromInt(500).Equal(row.Advances))
	assert.True(t, decimal.NewFromInt(400).Equal(row.NetSalary))
}

func TestBuildPayrollRowNegativeNet(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ravi", DailyWage: decimal.NewFromInt(600)}
	records := []attendance.Record{
		{WorkerID: "w1", Date: day(2025, 6, 1), Status: attendance.StatusPresent},
	}

	row := buildPayrollRow(w, records, decimal.NewFromInt(1000))

	assert.True(t, decimal.NewFromInt(-400).Equal(row.NetSalary))
}

func TestBuildPayrollRowIgnoresAbsentDays(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ravi", DailyWage: decimal.NewFromInt(600)}
	records := []attendance.Record{
		{WorkerID: "w1", Date: day(2025, 6, 1), Status: attendance.StatusAbsent},
		{WorkerID: "w1", Date: day(2025, 6, 2), Status: attendance.StatusAbsent},
	}

	row := buildPayrollRow(w, records, decimal.Zero)

	assert.Equal(t, 0, row.PresentDays)
	assert.True(t, decimal.Zero.Equal(row.GrossSalary))
}

func TestBuildAttendanceRow(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ravi"}
	records := []attendance.Record{
		{WorkerID: "w1", Date: day(2025, 6, 1), Status: attendance.StatusPresent},
		{WorkerID: "w1", Date: day(2025, 6, 2), Status: attendance.StatusHalfDay},
		{WorkerID: "w1", Date: day(2025, 6, 3), Status: attendance.StatusAbsent},
	}
	holidays := map[string]bool{"2025-06-04": true}

	row := buildAttendanceRow(w, 2025, 6, records, holidays)

	// June has 30 days, one holiday: 29 working days, every
	// unrecorded day counts absent.
	assert.Equal(t, 1, row.PresentDays)
	assert.Equal(t, 1, row.HalfDays)
	assert.Equal(t, 27, row.AbsentDays)
	assert.Equal(t, 1, row.Holidays)
	assert.Equal(t, 29, row.TotalWorkingDays)
	assert.InDelta(t, 5.2, row.AttendancePercentage, 0.001)
}

func TestBuildAttendanceRowHolidayWinsOverRecord(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ravi"}
	records := []attendance.Record{
		{WorkerID: "w1", Date: day(2025, 6, 4), Status: attendance.StatusPresent},
	}
	holidays := map[string]bool{"2025-06-04": true}

	row := buildAttendanceRow(w, 2025, 6, records, holidays)

	assert.Equal(t, 0, row.PresentDays)
	assert.Equal(t, 1, row.Holidays)
}

func TestBuildAttendanceRowAllHolidays(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ravi"}
	holidays := make(map[string]bool)
	for d := 1; d <= 30; d++ {
		holidays[day(2025, 6, d).Format("2006-01-02")] = true
	}

	row := buildAttendanceRow(w, 2025, 6, nil, holidays)

	assert.Equal(t, 0, row.TotalWorkingDays)
	assert.Equal(t, 0.0, row.AttendancePercentage)
}

func TestBuildAttendanceRowPercentageRounding(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ravi"}
	records := []attendance.Record{
		{WorkerID: "w1", Date: day(2025, 6, 1), Status: attendance.StatusPresent},
	}

	row := buildAttendanceRow(w, 2025, 6, records, nil)

	// 1/30 = 3.333...%, rounded to one decimal place.
	assert.Equal(t, 3.3, row.AttendancePercentage)
}

func TestHolidayDateSet(t *testing.T) {
	set := holidayDateSet([]holiday.Holiday{
		{ID: "h1", Date: day(2025, 6, 4), Name: "Eid"},
		{ID: "h2", Date: day(2025, 6, 15), Name: "Founders Day"},
	})

	assert.True(t, set["2025-06-04"])
	assert.True(t, set["2025-06-15"])
	assert.False(t, set["2025-06-05"])
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, daysInMonth(2025, 6))
	assert.Equal(t, 31, daysInMonth(2025, 7))
	assert.Equal(t, 28, daysInMonth(2025, 2))
	assert.Equal(t, 29, daysInMonth(2024, 2))
}
