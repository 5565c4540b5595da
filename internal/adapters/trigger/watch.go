package trigger

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mlvx/limitwatch/internal/ports"
)

const DefaultThrottle = 2 * time.Second

// Watch fires a cycle when the transcript file changes. Change events
// arrive in bursts while text is streaming in, so the cycle runs on the
// trailing edge of a throttle window: the first event arms a timer and
// every further event inside the window is dropped.
type Watch struct {
	path     string
	throttle time.Duration
	log      zerolog.Logger
}

var _ ports.Trigger = (*Watch)(nil)

func NewWatch(path string, throttle time.Duration, log zerolog.Logger) *Watch {
	if throttle <= 0 {
		throttle = DefaultThrottle
	}

	return &Watch{path: filepath.Clean(path), throttle: throttle, log: log}
}

func (w *Watch) Run(ctx context.Context, cycle func(context.Context)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directory: editors and appenders often replace
	// the file via rename, which a watch on the file itself loses.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch transcript directory: %w", err)
	}

	cycle(ctx)

	timer := time.NewTimer(w.throttle)
	if !timer.Stop() {
		<-timer.C
	}
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending == nil {
				timer.Reset(w.throttle)
				pending = timer.C
			}
		case <-pending:
			pending = nil
			cycle(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("transcript watcher error")
		}
	}
}
