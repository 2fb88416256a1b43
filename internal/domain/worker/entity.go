package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is the aggregate root: attendance and advance rows belong to
// exactly one worker and never outlive it.
type Worker struct {
	ID        string
	Name      string
	DailyWage decimal.Decimal
	Phone     string
	StartDate *time.Time
	CreatedAt time.Time
}
