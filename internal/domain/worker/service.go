package worker

import (
	"context"
)

// WorkerService defines business logic over workers.
type WorkerService interface {
	// Create adds a worker after validating name, wage and uniqueness.
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	// Update changes a worker's name and wage, re-checking uniqueness
	// against everyone else.
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// Delete removes the worker and all owned attendance/advance rows.
	Delete(ctx context.Context, id string) error

	// Get returns a single worker.
	Get(ctx context.Context, id string) (WorkerResponse, error)

	// List returns all workers enriched with the current month's attendance
	// count and today's present flag.
	List(ctx context.Context) ([]WorkerListItem, error)
}
