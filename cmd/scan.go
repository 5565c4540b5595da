package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newScanCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <transcript>",
		Short: "Run one scan cycle over a transcript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.newWatchService(args[0], true, cmd.ErrOrStderr(), zerolog.Nop())

			outcome, err := runScanSpinner(cmd.Context(), cmd.ErrOrStderr(), service.ScanOnce)
			if err != nil {
				return err
			}

			switch {
			case outcome.Applied:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cooldown recorded: %s\n", outcome.TimeText)
			case outcome.Detected:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Limit notice found (%s), nothing to update\n", outcome.TimeText)
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No limit notice found")
			}

			return nil
		},
	}
}
