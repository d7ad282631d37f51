package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/ics"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		out string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events as an iCalendar file",
		Long: `Serialize events to the iCalendar (.ics) format.

By default the events visible to you are written to stdout; use --out
to write to a file and --all to include every stored event.`,
		Example: `  planpal export > my.ics
  planpal export --out=shared.ics --all`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			var (
				events []*event.Event
				err    error
			)
			if all {
				events, err = a.repo.ListAllEvents(ctx)
			} else {
				events, err = a.repo.ListEventsForOwner(ctx, a.config.User.Handle)
			}
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			doc, skipped := ics.Export(events, time.Now())
			for _, serr := range skipped {
				fmt.Fprintln(os.Stderr, formatMuted("skipped: "+serr.Error()))
			}

			if out == "" {
				fmt.Print(doc)
				return nil
			}
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %d event(s) to %s\n", len(events)-len(skipped), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&all, "all", false, "Export every stored event regardless of visibility")

	return cmd
}
