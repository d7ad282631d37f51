package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [event-id]",
		Short: "Cancel an event",
		Long: `Cancel an event by its ID. Cancelling a recurring event removes
the whole series.

Example:
  planpal cancel 4c2f9a1e-...`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			if err := a.repo.DeleteEvent(ctx, args[0]); err != nil {
				return fmt.Errorf("cancelling event: %w", err)
			}

			fmt.Printf("Cancelled event %s\n", args[0])
			return nil
		},
	}
}
