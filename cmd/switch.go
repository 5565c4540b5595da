package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlvx/limitwatch/internal/domain"
)

func newSwitchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Mark an account as the active session",
		Long:  "switch records which account the watched session is authenticated as. Detected limits are attributed to the active account.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.service.SwitchAccount(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active account: %s (%s) %s\n",
				account.Name, account.ID, account.MaskedKey())
			return nil
		},
	}
}

func newNextCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Switch to the first account that is not cooling down",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.service.NextAvailable(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active account: %s (%s) %s\n",
				account.Name, account.ID, account.MaskedKey())
			return nil
		},
	}
}
