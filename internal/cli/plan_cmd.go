package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempora/internal/cli/formatter"
	"github.com/alexanderramin/tempora/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	var duration string
	var goals string
	var hours float64
	var considerations string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a prioritized schedule from goals and available hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.Request{
				Duration:       duration,
				Goals:          goals,
				AvailableHours: hours,
				Considerations: considerations,
			}

			// Without flags on an interactive terminal, collect the
			// request through the guided form.
			if requestIsBlank(req) && app.IsInteractive != nil && app.IsInteractive() {
				filled, err := collectRequest()
				if err != nil {
					return err
				}
				req = *filled
			}

			stop := formatter.StartSpinner("Drafting schedule...")
			res, err := app.Planner.Generate(context.Background(), req)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(res.Schedule, res.Slots, res.Warnings))
			return nil
		},
	}

	cmd.Flags().StringVar(&duration, "duration", "", "Planning horizon, e.g. \"2 weeks\" or \"3 months\"")
	cmd.Flags().StringVar(&goals, "goals", "", "What you want to accomplish")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Available hours per day (0-24]")
	cmd.Flags().StringVar(&considerations, "considerations", "", "Constraints and preferences, e.g. \"morning meetings\"")

	return cmd
}

// requestIsBlank reports whether no request field was supplied via flags.
func requestIsBlank(req domain.Request) bool {
	return req.Duration == "" && req.Goals == "" && req.AvailableHours == 0 && req.Considerations == ""
}

// collectRequest runs the interactive form and parses its fields into a
// Request.
func collectRequest() (*domain.Request, error) {
	var duration, goals, hours, considerations string

	if err := planForm(&duration, &goals, &hours, &considerations).Run(); err != nil {
		return nil, fmt.Errorf("collecting schedule request: %w", err)
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(hours), 64)
	if err != nil {
		return nil, fmt.Errorf("parsing hours: %w", err)
	}

	return &domain.Request{
		Duration:       strings.TrimSpace(duration),
		Goals:          strings.TrimSpace(goals),
		AvailableHours: parsed,
		Considerations: strings.TrimSpace(considerations),
	}, nil
}
