package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Seed the worker and project rosters",
	}

	worker := &cobra.Command{
		Use:   "worker",
		Short: "Manage roster workers",
	}
	worker.AddCommand(newWorkerAddCmd(app), newWorkerListCmd(app))

	project := &cobra.Command{
		Use:   "project",
		Short: "Manage roster projects",
	}
	project.AddCommand(newProjectAddCmd(app), newProjectListCmd(app))

	cmd.AddCommand(worker, project)

	return cmd
}

func newWorkerAddCmd(app *App) *cobra.Command {
	var first, last, position, department string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a worker to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Roster.AddWorker(context.Background(), service.WorkerRequest{
				FirstName:  first,
				LastName:   last,
				Position:   position,
				Department: department,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added worker %s (%s)\n",
				formatter.Bold(w.DisplayName()), formatter.TruncID(w.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&position, "position", "", "Position")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	_ = cmd.MarkFlagRequired("first")

	return cmd
}

func newWorkerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roster workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Roster.Workers(context.Background())
			if err != nil {
				return err
			}

			if len(workers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workers on the roster.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkerList(workers))
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a project to the roster",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Roster.AddProject(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added project %s (%s)\n",
				formatter.Bold(p.Name), formatter.TruncID(p.ID))
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roster projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Roster.Projects(context.Background())
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects on the roster.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}
