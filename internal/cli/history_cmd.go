package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempora/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatHistory(schedules))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of schedules to list")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display a stored schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := resolveSchedule(context.Background(), app, args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSchedule(schedule))
			return nil
		},
	}

	return cmd
}
