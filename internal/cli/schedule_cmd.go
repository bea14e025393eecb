package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage planned shifts",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleMarkCmd(app, "complete", "Mark a shift as completed", app.scheduleComplete),
		newScheduleMarkCmd(app, "miss", "Mark a shift as missed", app.scheduleMiss),
	)

	return cmd
}

func (a *App) scheduleComplete(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	return a.Schedules.MarkCompleted(ctx, id)
}

func (a *App) scheduleMiss(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	return a.Schedules.MarkMissed(ctx, id)
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var workerID, shiftDate, startTime, endTime, note string
	var breakMin int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Plan a shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDate(shiftDate); err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			if err := validateWallClock(startTime); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if err := validateWallClock(endTime); err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			ctx := context.Background()
			entry, err := app.Schedules.Create(ctx, service.ScheduleRequest{
				WorkerID:  workerID,
				ShiftDate: shiftDate,
				StartTime: startTime,
				EndTime:   endTime,
				BreakMin:  breakMin,
				Note:      note,
			})
			if err != nil {
				return err
			}

			name := app.Query.ResolveWorkerName(ctx, entry.WorkerID)
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s on %s, %s (%s)\n",
				formatter.Bold(name),
				formatter.DayLabel(entry.ShiftDate),
				formatter.ShiftWindow(entry.StartTime, entry.EndTime, entry.BreakMin),
				formatter.TruncID(entry.ID),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&workerID, "worker", "", "Worker ID")
	cmd.Flags().StringVar(&shiftDate, "date", "", "Shift date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startTime, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endTime, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", 0, fmt.Sprintf("Break minutes (default %d)", domain.DefaultBreakMin))
	cmd.Flags().StringVar(&note, "note", "", "Shift note")
	_ = cmd.MarkFlagRequired("worker")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var opts scheduleFilterOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List planned shifts, most recent date first",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Query.ScheduleViews(context.Background(), opts.toFilter())
			if err != nil {
				return err
			}

			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No shifts found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScheduleList(views))
			return nil
		},
	}

	registerScheduleFilterFlags(cmd.Flags(), &opts)

	return cmd
}

func newScheduleMarkCmd(
	app *App,
	use, short string,
	mark func(ctx context.Context, id string) (*domain.ScheduleEntry, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entry, err := mark(ctx, args[0])
			if err != nil {
				return err
			}

			name := app.Query.ResolveWorkerName(ctx, entry.WorkerID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s on %s\n",
				formatter.ShiftBadge(entry.State),
				formatter.Bold(name),
				formatter.DayLabel(entry.ShiftDate),
			)
			return nil
		},
	}
}
