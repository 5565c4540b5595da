package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestToastWritesMessage(t *testing.T) {
	var out strings.Builder
	clock := &stepClock{now: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)}

	toast := NewToast(&out, clock, 4*time.Second)
	toast.Notify("Limit detected: 5 PM")

	assert.Contains(t, out.String(), "Limit detected: 5 PM")
}

func TestToastSuppressesWhileVisible(t *testing.T) {
	var out strings.Builder
	clock := &stepClock{now: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)}

	toast := NewToast(&out, clock, 4*time.Second)
	toast.Notify("first")

	clock.advance(2 * time.Second)
	toast.Notify("second")

	assert.Contains(t, out.String(), "first")
	assert.NotContains(t, out.String(), "second")
}

func TestToastShowsAgainAfterWindow(t *testing.T) {
	var out strings.Builder
	clock := &stepClock{now: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)}

	toast := NewToast(&out, clock, 4*time.Second)
	toast.Notify("first")

	clock.advance(4 * time.Second)
	toast.Notify("second")

	assert.Contains(t, out.String(), "first")
	assert.Contains(t, out.String(), "second")
}
