package advance

import (
	"context"
)

// AdvanceService defines business logic for cash advances.
type AdvanceService interface {
	// Give records an advance after checking the per-transaction ceiling
	// and the configured monthly policy.
	Give(ctx context.Context, req GiveAdvanceRequest) (AdvanceResponse, error)

	// GetMonth returns the worker's advances for a month, newest first.
	GetMonth(ctx context.Context, filter MonthFilter) ([]AdvanceResponse, error)
}
