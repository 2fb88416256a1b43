package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository. The unique date constraint
// guards against overwriting an existing holiday.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h.ID = uuid.NewString()

	query := `
		INSERT INTO holidays (id, date, name, type, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, h.ID, h.Date, h.Name, h.Type, h.Description); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var rows pgx.Rows
	var err error

	switch {
	case filter.Year != nil && filter.Month != nil:
		from, to := monthBounds(*filter.Year, *filter.Month)
		rows, err = q.Query(ctx, `
			SELECT id, date, name, type, description
			FROM holidays
			WHERE date >= $1 AND date < $2
			ORDER BY date
		`, from, to)
	case filter.Year != nil:
		from := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		rows, err = q.Query(ctx, `
			SELECT id, date, name, type, description
			FROM holidays
			WHERE date >= $1 AND date < $2
			ORDER BY date
		`, from, from.AddDate(1, 0, 0))
	default:
		rows, err = q.Query(ctx, `
			SELECT id, date, name, type, description
			FROM holidays
			ORDER BY date DESC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.Description); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// GetByDate implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, type, description
		FROM holidays
		WHERE date = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}

	return &h, nil
}

// Delete implements holiday.HolidayRepository. Malformed ids are treated
// as not found rather than reaching the uuid column.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return holiday.ErrHolidayNotFound
	}

	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
