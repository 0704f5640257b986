package service

import (
	"context"

	"github.com/alexanderramin/tempora/internal/domain"
	"github.com/alexanderramin/tempora/internal/drafting"
)

// Drafter produces the prose schedule draft for a request.
type Drafter interface {
	Draft(ctx context.Context, duration, goals string, slots []domain.Slot, considerations string) (*drafting.Draft, error)
}

// PlanResult is the outcome of one full pipeline run.
type PlanResult struct {
	Schedule *domain.Schedule
	Slots    []domain.Slot
	Source   domain.ScoreSource
	Warnings []string // degradations recorded along the way
}

// PlannerService runs the full schedule pipeline: feature extraction,
// slot scoring, drafting, formatting and best-effort persistence.
type PlannerService interface {
	Generate(ctx context.Context, req domain.Request) (*PlanResult, error)
}
