package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository. The unique
// (worker_id, date) constraint makes the insert-or-update atomic.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, workerID string, date time.Time, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, worker_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (worker_id, date) DO UPDATE SET status = EXCLUDED.status
	`

	if _, err := q.Exec(ctx, query, uuid.NewString(), workerID, date, string(status)); err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, workerID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance WHERE worker_id = $1 AND date = $2`
	if _, err := q.Exec(ctx, query, workerID, date); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}

// ListMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListMonth(ctx context.Context, workerID string, year, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	from, to := monthBounds(year, month)

	query := `
		SELECT id, worker_id, date, status
		FROM attendance
		WHERE worker_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var status string
		if err := rows.Scan(&rec.ID, &rec.WorkerID, &rec.Date, &status); err != nil {
			return nil, err
		}
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// monthBounds returns the half-open [first day, first day of next month)
// interval for a calendar month.
func monthBounds(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
