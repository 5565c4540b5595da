package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var (
		poll     bool
		interval time.Duration
		throttle time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "watch <transcript>",
		Short: "Watch a transcript file and record cooldowns as limits appear",
		Long:  "watch scans the transcript whenever it changes (or on a fixed interval with --poll). A detected rate-limit notice is resolved to an absolute timestamp and recorded on the active account.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("interval") {
				app.cfg.Set("watch.interval", interval)
			}
			if cmd.Flags().Changed("throttle") {
				app.cfg.Set("watch.throttle", throttle)
			}

			logger := newWatchLogger(cmd.ErrOrStderr(), logLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			service := app.newWatchService(args[0], poll, cmd.ErrOrStderr(), logger)

			logger.Info().
				Str("transcript", args[0]).
				Bool("poll", poll).
				Msg("watching for limit notices")

			return service.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&poll, "poll", false, "poll on a fixed interval instead of reacting to file changes")
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval (with --poll)")
	cmd.Flags().DurationVar(&throttle, "throttle", 0, "minimum gap between change-driven scans")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func newWatchLogger(out io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}
