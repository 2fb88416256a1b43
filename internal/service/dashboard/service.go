package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/dashboard"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewDashboardService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
	}
}

var two = decimal.NewFromInt(2)

// Stats implements dashboard.DashboardService.
//
// avg_attendance divides each worker's attendance days by the current day
// of month, assuming everyone was eligible from day 1. The figure is an
// approximation and is clamped at 100.
func (s *DashboardServiceImpl) Stats(ctx context.Context, now time.Time) (dashboard.Stats, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	today := now.Format("2006-01-02")
	year, month := now.Year(), int(now.Month())

	presentToday := 0
	totalPayroll := decimal.Zero
	totalAttendanceDays := 0.0

	for _, w := range workers {
		records, err := s.attendanceRepo.ListMonth(ctx, w.ID, year, month)
		if err != nil {
			return dashboard.Stats{}, err
		}

		countedToday := false
		for _, rec := range records {
			if !countedToday && rec.Status.CountsAsWorked() && rec.Date.Format("2006-01-02") == today {
				presentToday++
				countedToday = true
			}
			switch rec.Status {
			case attendance.StatusPresent:
				totalPayroll = totalPayroll.Add(w.DailyWage)
				totalAttendanceDays++
			case attendance.StatusHalfDay:
				totalPayroll = totalPayroll.Add(w.DailyWage.Div(two))
				totalAttendanceDays += 0.5
			}
		}
	}

	avgAttendance := 0
	if len(workers) > 0 {
		avg := totalAttendanceDays / float64(len(workers)) / float64(now.Day()) * 100
		avgAttendance = int(math.Round(avg))
		if avgAttendance > 100 {
			avgAttendance = 100
		}
	}

	return dashboard.Stats{
		TotalWorkers:  len(workers),
		PresentToday:  presentToday,
		TotalPayroll:  totalPayroll.IntPart(),
		AvgAttendance: avgAttendance,
	}, nil
}
