package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect recorded time sessions",
	}

	cmd.AddCommand(newSessionListCmd(app))

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var opts sessionFilterOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Query.SessionViews(context.Background(), opts.toFilter())
			if err != nil {
				return err
			}

			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionList(views))
			return nil
		},
	}

	registerSessionFilterFlags(cmd.Flags(), &opts)

	return cmd
}
