package dashboard

// Stats is the landing-page snapshot for the current month.
//
// AvgAttendance divides by the current day of month for every worker,
// regardless of individual start dates, and is clamped at 100. It is an
// approximation inherited from the reporting rules, not a true rate.
type Stats struct {
	TotalWorkers  int   `json:"total_workers"`
	PresentToday  int   `json:"present_today"`
	TotalPayroll  int64 `json:"total_payroll"`
	AvgAttendance int   `json:"avg_attendance"`
}
