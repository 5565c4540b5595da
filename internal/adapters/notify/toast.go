package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlvx/limitwatch/internal/ports"
)

// DefaultVisibleFor is how long a toast counts as on screen. A second
// notification raised inside that window is dropped instead of stacked.
const DefaultVisibleFor = 4 * time.Second

// Toast writes transient one-line notifications to a terminal stream.
type Toast struct {
	out        io.Writer
	clock      ports.Clock
	visibleFor time.Duration
	style      lipgloss.Style

	mu        sync.Mutex
	lastShown time.Time
}

var _ ports.Notifier = (*Toast)(nil)

func NewToast(out io.Writer, clock ports.Clock, visibleFor time.Duration) *Toast {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if visibleFor <= 0 {
		visibleFor = DefaultVisibleFor
	}

	return &Toast{
		out:        out,
		clock:      clock,
		visibleFor: visibleFor,
		style: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("173")).
			Padding(0, 1),
	}
}

func (t *Toast) Notify(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if !t.lastShown.IsZero() && now.Sub(t.lastShown) < t.visibleFor {
		return
	}
	t.lastShown = now

	_, _ = fmt.Fprintln(t.out, t.style.Render(message))
}
