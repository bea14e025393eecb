package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Daily and weekly rollups",
	}

	cmd.AddCommand(
		newReportTodayCmd(app),
		newReportWeekCmd(app),
	)

	return cmd
}

func newReportTodayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Rollup for one calendar date, open sessions included live",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = service.Today(app.clock())
			} else if err := validateDate(date); err != nil {
				return fmt.Errorf("--date: %w", err)
			}

			summary, err := app.Summaries.Daily(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDailySummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Calendar date (YYYY-MM-DD, default today)")

	return cmd
}

func newReportWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Rollup for the 7 days ending at a date, completed sessions only",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = service.Today(app.clock())
			} else if err := validateDate(date); err != nil {
				return fmt.Errorf("--date: %w", err)
			}

			ctx := context.Background()
			summary, err := app.Summaries.Weekly(ctx, date)
			if err != nil {
				return err
			}

			rate, err := app.Summaries.CompletionRate(ctx, repository.SessionFilter{
				DateFrom: summary.WindowStart,
				DateTo:   summary.WindowEnd,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeeklySummary(summary, rate))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Window end date (YYYY-MM-DD, default today)")

	return cmd
}
