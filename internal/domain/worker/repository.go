package worker

import (
	"context"
)

// WorkerRepository defines data access for worker rows.
type WorkerRepository interface {
	// Create inserts a new worker and returns it with identity and timestamps set.
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves a worker, returning ErrWorkerNotFound when absent.
	GetByID(ctx context.Context, id string) (Worker, error)

	// List returns all workers ordered by name.
	List(ctx context.Context) ([]Worker, error)

	// ExistsByName reports whether another worker already holds this name,
	// compared case-insensitively. excludeID may be empty.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)

	// Update rewrites name and wage for an existing worker.
	Update(ctx context.Context, w Worker) error

	// Delete removes a worker; attendance and advances cascade with it.
	// Deleting an absent worker is not an error.
	Delete(ctx context.Context, id string) error
}
