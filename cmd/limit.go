package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlvx/limitwatch/internal/domain"
)

func newLimitCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit",
		Short: "Manually set or clear an account cooldown",
	}

	cmd.AddCommand(
		newLimitSetCmd(app),
		newLimitClearCmd(app),
	)

	return cmd
}

func newLimitSetCmd(app *app) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Mark an account as cooling down for the given hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours <= 0 {
				return errors.New("--hours must be positive")
			}

			d := time.Duration(hours * float64(time.Hour))
			if err := app.service.SetCooldown(cmd.Context(), domain.AccountID(args[0]), d); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account %s cooling down for %s\n", args[0], domain.FormatRemaining(d))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "cooldown length in hours")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newLimitClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <id>",
		Short: "Clear an account's cooldown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.ClearCooldown(cmd.Context(), domain.AccountID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared cooldown on account %s\n", args[0])
			return nil
		},
	}
}
