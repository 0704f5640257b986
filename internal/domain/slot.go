package domain

// Slot is a candidate hour of the day together with a desirability score.
// Scores are always in [0,1]. Slots produced by the classifier path are
// renormalized over the selected subset; fallback scores are raw priority
// bands and are left as-is.
type Slot struct {
	Hour  int
	Score float64
}

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// PriorityFor derives the priority label for an hour of the day. An exact
// hour match in slots maps the slot score onto priority bands; otherwise a
// static time-of-day rule applies. Slots that don't cover the hour fall
// through to the static rule rather than interpolating.
func PriorityFor(hour int, slots []Slot) Priority {
	for _, s := range slots {
		if s.Hour == hour {
			switch {
			case s.Score >= 0.7:
				return PriorityHigh
			case s.Score >= 0.4:
				return PriorityMedium
			default:
				return PriorityLow
			}
		}
	}

	switch {
	case hour >= 9 && hour <= 11:
		return PriorityHigh
	case hour >= 14 && hour <= 16:
		return PriorityHigh
	case hour < 8 || hour > 20:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Label returns the priority with only the first letter capitalized,
// as rendered in formatted schedule lines.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}
