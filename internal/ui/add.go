package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JordanDim/planpal/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date        string
		start       string
		end         string
		endDate     string
		category    string
		location    string
		description string
		repeat      string
		until       string
		indefinite  bool
		public      bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to your calendar.

Example:
  planpal add "Football" --date=2025-03-10 --start=18:00 --end=19:30 --category=sports
  planpal add "Standup" --date=2025-03-10 --start=09:00 --end=09:15 --repeat=weekly --until=2025-06-30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			if _, err := event.ParseCategoryStrict(category); err != nil {
				return err
			}

			recur := event.Recurrence{
				Freq:       event.Frequency(repeat),
				Until:      until,
				Indefinite: indefinite,
			}

			e, err := event.New(args[0], category, a.config.User.Handle, date, start, endDate, end, recur)
			if err != nil {
				return err
			}
			e.Location = location
			e.Description = description
			e.Public = public

			ctx := context.Background()
			if err := a.repo.CreateEvent(ctx, e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created event %s: %s %s %s-%s\n", e.ID, e.Title, e.StartDate, e.StartTime, e.EndTime)
			if suffix := recurrenceSuffix(e.Recurrence); suffix != "" {
				fmt.Printf("Repeats %s\n", suffix)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Start date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date for multi-day events (YYYY-MM-DD, default: start date)")
	cmd.Flags().StringVar(&category, "category", "other", "Category: sports, culture, entertainment or other")
	cmd.Flags().StringVar(&location, "location", "", "Where the event takes place")
	cmd.Flags().StringVar(&description, "desc", "", "Event description")
	cmd.Flags().StringVar(&repeat, "repeat", "none", "Recurrence: none, weekly, monthly or yearly")
	cmd.Flags().StringVar(&until, "until", "", "Final date of the series (YYYY-MM-DD, inclusive)")
	cmd.Flags().BoolVar(&indefinite, "indefinite", false, "Repeat without a final date")
	cmd.Flags().BoolVar(&public, "public", false, "Make the event visible to everyone")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
