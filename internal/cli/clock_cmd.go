package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/rollup"
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/spf13/cobra"
)

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock workers in and out",
	}

	cmd.AddCommand(
		newClockInCmd(app),
		newClockOutCmd(app),
		newClockPauseCmd(app),
		newClockResumeCmd(app),
		newClockStatusCmd(app),
		newClockWatchCmd(app),
	)

	return cmd
}

func newClockInCmd(app *App) *cobra.Command {
	var workerID, projectID, taskID, note string

	cmd := &cobra.Command{
		Use:   "in",
		Short: "Clock a worker in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if workerID == "" {
				if !app.interactive() {
					return fmt.Errorf("--worker is required (or run interactively)")
				}
				if err := runClockInWizard(ctx, app, &workerID, &projectID, &note); err != nil {
					return err
				}
			}

			sess, err := app.Sessions.ClockIn(ctx, service.ClockInRequest{
				WorkerID:  workerID,
				ProjectID: projectID,
				TaskID:    taskID,
				Note:      note,
			})
			if err != nil {
				return err
			}

			name := app.Query.ResolveWorkerName(ctx, sess.WorkerID)
			fmt.Fprintf(cmd.OutOrStdout(), "Clocked in %s at %s (%s)\n",
				formatter.Bold(name),
				formatter.ClockTime(sess.StartedAt),
				formatter.TruncID(sess.ID),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&workerID, "worker", "", "Worker ID")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID (optional)")
	cmd.Flags().StringVar(&taskID, "task", "", "Task ID (optional)")
	cmd.Flags().StringVar(&note, "note", "", "Session note")

	return cmd
}

// runClockInWizard collects the clock-in fields interactively. The project
// form is skipped when the project roster is empty.
func runClockInWizard(ctx context.Context, app *App, workerID, projectID, note *string) error {
	workerForm := formSelectWorker(ctx, app, workerID)
	if workerForm == nil {
		return fmt.Errorf("no workers on the roster; add one with 'roster worker add'")
	}
	if err := workerForm.Run(); err != nil {
		return err
	}

	if projectForm := formSelectProject(ctx, app, projectID); projectForm != nil {
		if err := projectForm.Run(); err != nil {
			return err
		}
	}

	return formInputNote(note).Run()
}

func newClockOutCmd(app *App) *cobra.Command {
	return newClockTransitionCmd(app, "out", "Clock a worker out",
		func(ctx context.Context, id string) (*domain.TimeSession, error) {
			return app.Sessions.ClockOut(ctx, id)
		},
		func(sess *domain.TimeSession, name string) string {
			worked := 0
			if sess.DurationMin != nil {
				worked = *sess.DurationMin
			}
			return fmt.Sprintf("Clocked out %s after %s\n",
				formatter.Bold(name), formatter.Bold(formatter.FormatMinutes(worked)))
		},
	)
}

func newClockPauseCmd(app *App) *cobra.Command {
	return newClockTransitionCmd(app, "pause", "Pause a worker's open session",
		func(ctx context.Context, id string) (*domain.TimeSession, error) {
			return app.Sessions.Pause(ctx, id)
		},
		func(sess *domain.TimeSession, name string) string {
			return fmt.Sprintf("Paused %s's session\n", formatter.Bold(name))
		},
	)
}

func newClockResumeCmd(app *App) *cobra.Command {
	return newClockTransitionCmd(app, "resume", "Resume a worker's paused session",
		func(ctx context.Context, id string) (*domain.TimeSession, error) {
			return app.Sessions.Resume(ctx, id)
		},
		func(sess *domain.TimeSession, name string) string {
			return fmt.Sprintf("Resumed %s's session\n", formatter.Bold(name))
		},
	)
}

// newClockTransitionCmd builds an out/pause/resume command. The target session
// comes from --session directly or from the worker's open session.
func newClockTransitionCmd(
	app *App,
	use, short string,
	run func(ctx context.Context, sessionID string) (*domain.TimeSession, error),
	done func(sess *domain.TimeSession, workerName string) string,
) *cobra.Command {
	var workerID, sessionID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			target, err := resolveTargetSession(ctx, app, workerID, sessionID)
			if err != nil {
				return err
			}

			sess, err := run(ctx, target)
			if err != nil {
				return err
			}

			name := app.Query.ResolveWorkerName(ctx, sess.WorkerID)
			fmt.Fprint(cmd.OutOrStdout(), done(sess, name))
			return nil
		},
	}

	cmd.Flags().StringVar(&workerID, "worker", "", "Worker whose open session is targeted")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (overrides --worker)")

	return cmd
}

// resolveTargetSession returns the session ID to operate on: --session wins,
// otherwise the worker's open session is looked up.
func resolveTargetSession(ctx context.Context, app *App, workerID, sessionID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}
	if workerID == "" {
		return "", fmt.Errorf("--worker or --session is required")
	}

	sess, err := app.Sessions.ActiveSessionFor(ctx, workerID)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", fmt.Errorf("worker %s has no open session", workerID)
	}
	return sess.ID, nil
}

func newClockStatusCmd(app *App) *cobra.Command {
	var workerID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a worker's open session with live elapsed time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sess, err := app.Sessions.ActiveSessionFor(ctx, workerID)
			if err != nil {
				return err
			}

			name := app.Query.ResolveWorkerName(ctx, workerID)
			if sess == nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClockedOut(name))
				return nil
			}

			view := service.SessionView{
				Session:     sess,
				WorkerName:  name,
				ProjectName: app.Query.ResolveProjectName(ctx, sess.ProjectID),
				ElapsedMin:  rollup.ElapsedMinutes(sess, app.clock().Now().UTC()),
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClockStatus(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&workerID, "worker", "", "Worker ID")
	_ = cmd.MarkFlagRequired("worker")

	return cmd
}
