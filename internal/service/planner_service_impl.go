package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempora/internal/classifier"
	"github.com/alexanderramin/tempora/internal/domain"
	"github.com/alexanderramin/tempora/internal/features"
	"github.com/alexanderramin/tempora/internal/format"
	"github.com/alexanderramin/tempora/internal/repository"
	"github.com/alexanderramin/tempora/internal/scoring"
)

type plannerService struct {
	bundle  *classifier.Bundle
	scorer  *scoring.Scorer
	drafter Drafter
	repo    repository.ScheduleRepo // nil disables persistence
	now     func() time.Time
}

// NewPlannerService wires the pipeline. bundle may be empty (rule-based
// scoring) and repo may be nil (no history).
func NewPlannerService(bundle *classifier.Bundle, drafter Drafter, repo repository.ScheduleRepo) PlannerService {
	if bundle == nil {
		bundle = &classifier.Bundle{}
	}
	return &plannerService{
		bundle:  bundle,
		scorer:  scoring.NewScorer(bundle.Forest),
		drafter: drafter,
		repo:    repo,
		now:     time.Now,
	}
}

// Generate runs one request through the pipeline. Degradable failures
// (scaler transform, classifier prediction, bad draft lines, persistence)
// become warnings; a drafting failure is fatal and returns no partial
// output.
func (s *plannerService) Generate(ctx context.Context, req domain.Request) (*PlanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	vec := features.Extract(req.Goals, req.AvailableHours, req.Considerations)
	if len(s.bundle.FeatureNames) > 0 {
		vec = features.Align(vec, s.bundle.FeatureNames)
	}

	values := vec.Values()
	if s.bundle.Scaler != nil {
		scaled, err := s.bundle.Scaler.Transform(values)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("feature scaling failed, using raw features: %v", err))
		} else {
			values = scaled
		}
	}

	scored := s.scorer.Score(values, req.AvailableHours, req.Considerations)
	warnings = append(warnings, scored.Warnings...)

	draft, err := s.drafter.Draft(ctx, req.Duration, req.Goals, scored.Slots, req.Considerations)
	if err != nil {
		return nil, err
	}

	rendered := format.Render(draft.Text, req, scored.Slots)
	warnings = append(warnings, rendered.Warnings...)

	schedule := &domain.Schedule{
		ID:             uuid.NewString(),
		Duration:       req.Duration,
		Goals:          req.Goals,
		AvailableHours: req.AvailableHours,
		Considerations: req.Considerations,
		Body:           rendered.Text,
		Model:          draft.Model,
		Source:         scored.Source,
		CreatedAt:      s.now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, schedule); err != nil {
			warnings = append(warnings, fmt.Sprintf("saving schedule to history: %v", err))
		}
	}

	return &PlanResult{
		Schedule: schedule,
		Slots:    scored.Slots,
		Source:   scored.Source,
		Warnings: warnings,
	}, nil
}
