package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempora/internal/domain"
	"github.com/alexanderramin/tempora/internal/repository"
)

const resolveScanLimit = 200

// resolveSchedule resolves a schedule identifier which can be a full UUID
// or a unique UUID prefix (history displays the first 8 characters).
func resolveSchedule(ctx context.Context, app *App, input string) (*domain.Schedule, error) {
	schedule, err := app.Schedules.GetByID(ctx, input)
	if err == nil {
		return schedule, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	recent, err := app.Schedules.ListRecent(ctx, resolveScanLimit)
	if err != nil {
		return nil, err
	}

	var match *domain.Schedule
	for _, s := range recent {
		if !strings.HasPrefix(s.ID, input) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("schedule ID %q is ambiguous", input)
		}
		match = s
	}
	if match == nil {
		return nil, fmt.Errorf("schedule %q: %w", input, repository.ErrNotFound)
	}
	return match, nil
}
