package report

import (
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
)

// MonthlySummary holds one worker's pay figures for a month. NetPay may be
// negative when advances exceed earnings; that is accepted, not an error.
type MonthlySummary struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	MonthName     string          `json:"month_name"`
	PresentDays   int             `json:"present_days"`
	HalfDays      int             `json:"half_days"`
	AbsentDays    int             `json:"absent_days"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
	NetPay        decimal.Decimal `json:"net_pay"`
}

// PayrollRow is one worker's line in the monthly payroll report.
type PayrollRow struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	DailyWage   decimal.Decimal `json:"daily_wage"`
	PresentDays int             `json:"present_days"`
	HalfDays    int             `json:"half_days"`
	TotalDays   float64         `json:"total_days"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Advances    decimal.Decimal `json:"advances"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

// PayrollReport is the month's payroll across all workers.
type PayrollReport struct {
	Month   string         `json:"month"`
	Year    int            `json:"year"`
	Workers []PayrollRow   `json:"workers"`
	Summary PayrollSummary `json:"summary"`
}

type PayrollSummary struct {
	TotalWorkers  int             `json:"total_workers"`
	TotalPayroll  decimal.Decimal `json:"total_payroll"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
	TotalNet      decimal.Decimal `json:"total_net"`
}

// AttendanceRow is one worker's line in the monthly attendance report.
// Days with no record that are not holidays count as absent, including days
// that have not happened yet; the report makes no "pending" distinction.
type AttendanceRow struct {
	WorkerID             string  `json:"worker_id"`
	WorkerName           string  `json:"worker_name"`
	PresentDays          int     `json:"present_days"`
	HalfDays             int     `json:"half_days"`
	AbsentDays           int     `json:"absent_days"`
	Holidays             int     `json:"holidays"`
	TotalWorkingDays     int     `json:"total_working_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// AttendanceReport is the month's attendance across all workers.
type AttendanceReport struct {
	Month    string                    `json:"month"`
	Year     int                       `json:"year"`
	Workers  []AttendanceRow           `json:"workers"`
	Holidays []holiday.HolidayResponse `json:"holidays"`
	Summary  AttendanceSummary         `json:"summary"`
}

type AttendanceSummary struct {
	TotalDays   int `json:"total_days"`
	WorkingDays int `json:"working_days"`
	Holidays    int `json:"holidays"`
}
