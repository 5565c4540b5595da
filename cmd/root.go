package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lw",
		Short:         "limitwatch (lw): session account switching and rate-limit cooldown tracking",
		Long:          "lw stores multiple session credentials for one chat service, switches which one is active, watches a transcript for the service's rate-limit notice, and tracks per-account cooldowns.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newSwitchCmd(app),
		newNextCmd(app),
		newLimitCmd(app),
		newStatusCmd(app),
		newScanCmd(app),
		newWatchCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return rootCmd
}
