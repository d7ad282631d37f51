package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/view"
)

// loadVisible fetches the events the calendar views operate on.
func (a *App) loadVisible(ctx context.Context) ([]*event.Event, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	events, err := a.repo.ListEventsForOwner(ctx, a.config.User.Handle)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

func (a *App) dayCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show a single day",
		Long: `Display the detail view for one day. Overlapping events share the
horizontal space and are numbered by column.

Example:
  planpal day
  planpal day 2025-03-10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			anchor, err := anchorFromArgs(args)
			if err != nil {
				return err
			}
			events, err := a.loadVisible(context.Background())
			if err != nil {
				return err
			}
			v := view.ComputeDayView(events, anchor, time.Now(), a.viewOptions())
			fmt.Print(RenderDayView(v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) weekCmd() *cobra.Command {
	var workWeek bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show the week containing a date",
		Long: `Display the Monday-based week containing the given date (default:
today). With --work only Monday through Friday are shown.`,
		Example: `  planpal week
  planpal week 2025-03-10 --work`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			anchor, err := anchorFromArgs(args)
			if err != nil {
				return err
			}
			events, err := a.loadVisible(context.Background())
			if err != nil {
				return err
			}
			v := view.ComputeWeekView(events, anchor, time.Now(), workWeek, a.viewOptions())
			fmt.Print(RenderWeekView(v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&workWeek, "work", false, "Show Monday through Friday only")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) monthCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "month [date]",
		Short: "Show the month containing a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			anchor, err := anchorFromArgs(args)
			if err != nil {
				return err
			}
			events, err := a.loadVisible(context.Background())
			if err != nil {
				return err
			}
			v := view.ComputeMonthView(events, anchor, a.viewOptions())
			fmt.Print(RenderMonthView(v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) yearCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "year [date]",
		Short: "Show the year overview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			anchor, err := anchorFromArgs(args)
			if err != nil {
				return err
			}
			events, err := a.loadVisible(context.Background())
			if err != nil {
				return err
			}
			v := view.ComputeYearView(events, anchor, a.viewOptions())
			fmt.Print(RenderYearView(v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
