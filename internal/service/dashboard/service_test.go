package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
)

type stubWorkerRepo struct {
	worker.WorkerRepository
	workers []worker.Worker
}

func (s *stubWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	return s.workers, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string][]attendance.Record
}

func (s *stubAttendanceRepo) ListMonth(ctx context.Context, workerID string, year, month int) ([]attendance.Record, error) {
	return s.records[workerID], nil
}

func newStatsService(workers []worker.Worker, records map[string][]attendance.Record) *DashboardServiceImpl {
	svc := NewDashboardService(
		&stubWorkerRepo{workers: workers},
		&stubAttendanceRepo{records: records},
	)
	return svc.(*DashboardServiceImpl)
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestStatsNoWorkers(t *testing.T) {
	svc := newStatsService(nil, nil)

	stats, err := svc.Stats(context.Background(), day(15))
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalWorkers)
	assert.Equal(t, 0, stats.PresentToday)
	assert.Equal(t, int64(0), stats.TotalPayroll)
	assert.Equal(t, 0, stats.AvgAttendance)
}

func TestStatsAvgAttendanceClamped(t *testing.T) {
	workers := []worker.Worker{{ID: "w1", Name: "Ravi", DailyWage: decimal.NewFromInt(600)}}
	records := map[string][]attendance.Record{
		"w1": {
			{WorkerID: "w1", Date: day(1), Status: attendance.StatusPresent},
			{WorkerID: "w1", Date: day(2), Status: attendance.StatusPresent},
			{WorkerID: "w1", Date: day(3), Status: attendance.StatusPresent},
			{WorkerID: "w1", Date: day(4), Status: attendance.StatusPresent},
			{WorkerID: "w1", Date: day(5), Status: attendance.StatusPresent},
		},
	}
	svc := newStatsService(workers, records)

	// Five attendance days on day 2 of the month would be 250%.
	stats, err := svc.Stats(context.Background(), day(2))
	require.NoError(t, err)

	assert.Equal(t, 100, stats.AvgAttendance)
}

func TestStatsPayrollTruncatesHalfDayPaise(t *testing.T) {
	workers := []worker.Worker{{ID: "w1", Name: "Ravi", DailyWage: decimal.NewFromInt(333)}}
	records := map[string][]attendance.Record{
		"w1": {
			{WorkerID: "w1", Date: day(1), Status: attendance.StatusPresent},
			{WorkerID: "w1", Date: day(2), Status: attendance.StatusHalfDay},
		},
	}
	svc := newStatsService(workers, records)

	stats, err := svc.Stats(context.Background(), day(10))
	require.NoError(t, err)

	// 333 + 166.5 = 499.5, reported in whole rupees.
	assert.Equal(t, int64(499), stats.TotalPayroll)
	// (1 + 0.5) / 1 worker / 10 days = 15%.
	assert.Equal(t, 15, stats.AvgAttendance)
}

func TestStatsPresentToday(t *testing.T) {
	workers := []worker.Worker{
		{ID: "w1", Name: "Ravi", DailyWage: decimal.NewFromInt(600)},
		{ID: "w2", Name: "Suresh", DailyWage: decimal.NewFromInt(500)},
		{ID: "w3", Name: "Mahesh", DailyWage: decimal.NewFromInt(550)},
	}
	records := map[string][]attendance.Record{
		"w1": {{WorkerID: "w1", Date: day(15), Status: attendance.StatusPresent}},
		"w2": {{WorkerID: "w2", Date: day(15), Status: attendance.StatusHalfDay}},
		"w3": {{WorkerID: "w3", Date: day(14), Status: attendance.StatusPresent}},
	}
	svc := newStatsService(workers, records)

	stats, err := svc.Stats(context.Background(), day(15))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalWorkers)
	assert.Equal(t, 2, stats.PresentToday)
}
