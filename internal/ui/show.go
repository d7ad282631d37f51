package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/JordanDim/planpal/internal/event"
)

func (a *App) showCmd() *cobra.Command {
	var copyToClipboard bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [event-id]",
		Short: "Show an event's details",
		Long: `Display every field of a single event.

With --copy, a one-line summary is also placed on the clipboard so it
can be pasted into a chat.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			e, err := a.repo.GetEvent(ctx, args[0])
			if err != nil {
				return fmt.Errorf("fetching event: %w", err)
			}

			printEvent(e)

			if copyToClipboard {
				if err := clipboard.WriteAll(eventSummary(e)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatMuted("\nSummary copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy a one-line summary to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printEvent(e *event.Event) {
	fmt.Printf("%s  %s\n", categoryTag(e.Category), formatHeader(e.Title))
	fmt.Printf("  ID:        %s\n", e.ID)
	fmt.Printf("  When:      %s %s - %s %s\n", e.StartDate, e.StartTime, e.EndDate, e.EndTime)
	if e.Location != "" {
		fmt.Printf("  Where:     %s\n", e.Location)
	}
	fmt.Printf("  Category:  %s\n", e.Category.Label())
	fmt.Printf("  Creator:   %s\n", e.Creator)
	if e.Public {
		fmt.Printf("  Access:    public\n")
	} else {
		fmt.Printf("  Access:    private\n")
	}
	if suffix := recurrenceSuffix(e.Recurrence); suffix != "" {
		fmt.Printf("  Repeats:   %s\n", strings.Trim(suffix, "()"))
	}
	if e.Description != "" {
		fmt.Printf("  Notes:     %s\n", e.Description)
	}
}

// eventSummary builds the plain-text line used for clipboard sharing.
func eventSummary(e *event.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %s-%s", e.Title, e.StartDate, e.StartTime, e.EndTime)
	if e.Location != "" {
		fmt.Fprintf(&b, " @ %s", e.Location)
	}
	if suffix := recurrenceSuffix(e.Recurrence); suffix != "" {
		fmt.Fprintf(&b, " %s", suffix)
	}
	return b.String()
}
