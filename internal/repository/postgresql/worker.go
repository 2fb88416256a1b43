package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	w.ID = uuid.NewString()

	query := `
		INSERT INTO workers (id, name, daily_wage, phone, start_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, w.ID, w.Name, w.DailyWage, w.Phone, w.StartDate).Scan(&w.CreatedAt)
	if err != nil {
		// A concurrent insert can slip past the service-level name check;
		// the LOWER(name) unique index reports it as 23505.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrWorkerNameExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository. Malformed ids are treated as
// not found rather than reaching the uuid column.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	if _, err := uuid.Parse(id); err != nil {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, daily_wage, phone, start_date, created_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.DailyWage, &w.Phone, &w.StartDate, &w.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, daily_wage, phone, start_date, created_at
		FROM workers
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.DailyWage, &w.Phone, &w.StartDate, &w.CreatedAt); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

// ExistsByName implements worker.WorkerRepository.
func (r *workerRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM workers
			WHERE LOWER(name) = LOWER($1) AND ($2 = '' OR id != $2::uuid)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check worker name: %w", err)
	}

	return exists, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	if _, err := uuid.Parse(w.ID); err != nil {
		return worker.ErrWorkerNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $1, daily_wage = $2
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, w.Name, w.DailyWage, w.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.ErrWorkerNameExists
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository. Child attendance and advance
// rows cascade through the foreign keys.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return worker.ErrWorkerNotFound
	}

	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}
