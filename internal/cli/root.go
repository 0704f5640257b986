package cli

import (
	"github.com/alexanderramin/tempora/internal/repository"
	"github.com/alexanderramin/tempora/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Planner   service.PlannerService
	Schedules repository.ScheduleRepo

	// IsInteractive reports whether stdin is a terminal, enabling the
	// guided form when flags are omitted.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempora" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempora",
		Short: "Turn goals and available hours into a prioritized schedule",
	}

	root.AddCommand(
		newPlanCmd(app),
		newHistoryCmd(app),
		newShowCmd(app),
	)

	return root
}
