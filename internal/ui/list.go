package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
)

func (a *App) listCmd() *cobra.Command {
	var (
		search string
		all    bool
		mine   bool
		start  string
		end    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events visible to you: your own plus public ones.

With --search, only events whose title or description contains the
query are shown. With --all, visibility is ignored and every stored
event is listed; with --mine, only events you created. --start and
--end bound the listing by start date.`,
		Example: `  planpal list
  planpal list --search=football
  planpal list --mine --start=2025-03-01 --end=2025-03-31`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			var (
				events []*event.Event
				err    error
			)
			switch {
			case search != "":
				events, err = a.repo.SearchEvents(ctx, a.config.User.Handle, search)
			case all:
				events, err = a.repo.ListAllEvents(ctx)
			default:
				events, err = a.repo.ListEventsForOwner(ctx, a.config.User.Handle)
			}
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			events, err = filterEvents(events, a.config.User.Handle, mine, start, end)
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No events found.")
				return nil
			}

			// Print events grouped by start date
			var currentDate string
			for _, e := range events {
				if e.StartDate != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", e.StartDate)
					currentDate = e.StartDate
				}
				fmt.Println(eventRow(e))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by title or description")
	cmd.Flags().BoolVar(&all, "all", false, "List every stored event regardless of visibility")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only events you created")
	cmd.Flags().StringVar(&start, "start", "", "Earliest start date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Latest start date to include (YYYY-MM-DD)")

	return cmd
}

// filterEvents narrows a listing by creator and start-date bounds. Civil
// dates compare lexicographically, so the bounds are plain string compares.
func filterEvents(events []*event.Event, handle string, mine bool, start, end string) ([]*event.Event, error) {
	if start != "" {
		if _, err := dateutil.ParseDate(start); err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
	}
	if end != "" {
		if _, err := dateutil.ParseDate(end); err != nil {
			return nil, fmt.Errorf("--end: %w", err)
		}
	}

	out := events[:0]
	for _, e := range events {
		if mine && e.Creator != handle {
			continue
		}
		if start != "" && e.StartDate < start {
			continue
		}
		if end != "" && e.StartDate > end {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
