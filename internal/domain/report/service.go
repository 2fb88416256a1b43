package report

import (
	"context"
)

// ReportService derives the monthly reporting figures. All derivations are
// pure functions of the fetched worker, attendance, advance and holiday rows.
type ReportService interface {
	// WorkerSummary computes one worker's pay figures for a month.
	WorkerSummary(ctx context.Context, workerID string, year, month int) (MonthlySummary, error)

	// Payroll computes the payroll report for all workers in a month.
	Payroll(ctx context.Context, year, month int) (PayrollReport, error)

	// Attendance computes the attendance-percentage report for a month.
	Attendance(ctx context.Context, year, month int) (AttendanceReport, error)
}
