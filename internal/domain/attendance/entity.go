package attendance

import "time"

// Status is the recorded state of one worker-day.
type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half Day"
	StatusAbsent  Status = "Absent"

	// StatusUnmarked is an API sentinel, never stored: marking a day
	// unmarked deletes the row.
	StatusUnmarked Status = "unmarked"
)

// ValidStatuses are the values accepted by the mark operation.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusUnmarked),
}

// IsStorable reports whether the status maps to a stored row.
func (s Status) IsStorable() bool {
	return s == StatusPresent || s == StatusHalfDay || s == StatusAbsent
}

// CountsAsWorked reports whether the status earns wage for the day.
func (s Status) CountsAsWorked() bool {
	return s == StatusPresent || s == StatusHalfDay
}

// Record is one attendance row. At most one exists per (worker, date).
type Record struct {
	ID       string
	WorkerID string
	Date     time.Time
	Status   Status
}
