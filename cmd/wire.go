package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mlvx/limitwatch/internal/adapters/notify"
	statusadapter "github.com/mlvx/limitwatch/internal/adapters/render/status"
	tomlrepo "github.com/mlvx/limitwatch/internal/adapters/repo/toml"
	"github.com/mlvx/limitwatch/internal/adapters/transcript"
	"github.com/mlvx/limitwatch/internal/adapters/trigger"
	"github.com/mlvx/limitwatch/internal/application"
	"github.com/mlvx/limitwatch/internal/cooldown"
	"github.com/mlvx/limitwatch/internal/ports"
	"github.com/mlvx/limitwatch/internal/scan"
)

type app struct {
	cfg            *viper.Viper
	repo           *tomlrepo.Repository
	service        *application.Service
	statusRenderer func([]application.Status, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault("scan.window", transcript.DefaultWindow)
	cfg.SetDefault("scan.max_lines", scan.DefaultMaxLines)
	cfg.SetDefault("watch.interval", trigger.DefaultPollInterval)
	cfg.SetDefault("watch.throttle", trigger.DefaultThrottle)
	cfg.SetDefault("cooldown.tolerance", cooldown.DefaultTolerance)
	cfg.SetDefault("notify.visible_for", notify.DefaultVisibleFor)

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	return &app{
		cfg:            cfg,
		repo:           repo,
		service:        application.NewService(repo, repo, ports.SystemClock{}),
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}, nil
}

// newWatchService assembles the scan pipeline for one transcript. The
// trigger model is chosen here; everything downstream is oblivious to
// whether cycles come from a ticker or from file-change events.
func (a *app) newWatchService(transcriptPath string, poll bool, toastOut io.Writer, logger zerolog.Logger) *application.WatchService {
	source := transcript.NewFileSource(transcriptPath, a.cfg.GetInt("scan.window"))
	scanner := scan.New(scan.Config{MaxLines: a.cfg.GetInt("scan.max_lines")}, ports.SystemClock{})
	notifier := notify.NewToast(toastOut, ports.SystemClock{}, a.cfg.GetDuration("notify.visible_for"))
	resolver := cooldown.NewResolver(a.repo, a.repo, notifier, a.cfg.GetDuration("cooldown.tolerance"))

	var trig ports.Trigger
	if poll {
		trig = trigger.NewPoll(a.cfg.GetDuration("watch.interval"))
	} else {
		trig = trigger.NewWatch(transcriptPath, a.cfg.GetDuration("watch.throttle"), logger)
	}

	return application.NewWatchService(source, scanner, resolver, trig, logger)
}
