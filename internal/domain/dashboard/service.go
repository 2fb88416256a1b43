package dashboard

import (
	"context"
	"time"
)

// DashboardService computes the landing-page statistics.
type DashboardService interface {
	// Stats derives the snapshot for the month containing now.
	Stats(ctx context.Context, now time.Time) (Stats, error)
}
