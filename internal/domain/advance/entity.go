package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is one cash advance. Rows are append-only; they disappear only
// when the owning worker is deleted.
type Advance struct {
	ID        string
	WorkerID  string
	Amount    decimal.Decimal
	Date      time.Time
	Note      string
	CreatedAt time.Time
}
