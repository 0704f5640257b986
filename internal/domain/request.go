package domain

import (
	"errors"
	"strings"
)

// Validation errors for schedule requests.
var (
	ErrEmptyDuration       = errors.New("duration is required")
	ErrEmptyGoals          = errors.New("goals are required")
	ErrEmptyConsiderations = errors.New("considerations are required")
	ErrInvalidHours        = errors.New("available hours must be a positive number of at most 24")
)

// Request is the immutable input for one schedule generation run.
type Request struct {
	Duration       string  // free text, e.g. "2 weeks"
	Goals          string  // free text goal description
	AvailableHours float64 // hours per day
	Considerations string  // free text constraints, e.g. "morning meetings"
}

// Validate checks that all four fields are usable. Upstream form
// validation should reject these first; this is the last line of defense
// before the pipeline runs.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Duration) == "" {
		return ErrEmptyDuration
	}
	if strings.TrimSpace(r.Goals) == "" {
		return ErrEmptyGoals
	}
	if strings.TrimSpace(r.Considerations) == "" {
		return ErrEmptyConsiderations
	}
	if r.AvailableHours <= 0 || r.AvailableHours > 24 {
		return ErrInvalidHours
	}
	return nil
}
