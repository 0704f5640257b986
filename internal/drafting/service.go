package drafting

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/tempora/internal/domain"
	"github.com/alexanderramin/tempora/internal/llm"
)

// ErrDraftFailed wraps any failure of the external drafting call. It is
// fatal for the request: the pipeline returns it instead of partial output.
var ErrDraftFailed = errors.New("failed to generate schedule draft")

// Draft is the raw prose schedule returned by the model, before formatting.
type Draft struct {
	Text     string
	Model    string
	Strategy string // draft_weekly, draft_monthly or draft_yearly
}

// Service builds a duration-appropriate prompt and asks the LLM for a
// schedule draft.
type Service struct {
	client llm.Client
}

// NewService creates a drafting Service backed by an LLM client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Draft generates the prose schedule for a request, biased toward the
// ranked slots. Collaborator failures are wrapped in ErrDraftFailed,
// never swallowed.
func (s *Service) Draft(ctx context.Context, duration, goals string, slots []domain.Slot, considerations string) (*Draft, error) {
	strat := strategyFor(duration)
	prompt := strat.build(goals, slots, considerations)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Op:           strat.op,
		SystemPrompt: draftSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDraftFailed, err)
	}

	return &Draft{
		Text:     resp.Text,
		Model:    resp.Model,
		Strategy: strat.op,
	}, nil
}
