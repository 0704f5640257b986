package domain

import "time"

// ScoreSource identifies which scoring path produced the slot ranking.
type ScoreSource string

const (
	SourceClassifier ScoreSource = "classifier"
	SourceRules      ScoreSource = "rules"
)

// Schedule is a persisted, fully formatted schedule together with the
// request that produced it.
type Schedule struct {
	ID             string
	Duration       string
	Goals          string
	AvailableHours float64
	Considerations string
	Body           string // final formatted text
	Model          string // LLM model that drafted it
	Source         ScoreSource
	CreatedAt      time.Time
}
