package holiday

import "time"

// Type distinguishes manually entered holidays from ones accepted out of
// the festival suggestions.
const (
	TypeManual    = "manual"
	TypeFestival  = "festival"
	TypeNational  = "national"
	TypeSuggested = "suggested"
)

// Holiday is a company-wide non-working day. Dates are unique.
type Holiday struct {
	ID          string
	Date        time.Time
	Name        string
	Type        string
	Description string
}
