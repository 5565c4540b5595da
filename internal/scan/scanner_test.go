package scan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlvx/limitwatch/internal/ports"
)

var scanClock = ports.FixedClock{Instant: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)}

func TestScanExtractsTimeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain hour",
			text: "some output\nYou have hit your usage limit until 5 PM.\n",
			want: "5 PM",
		},
		{
			name: "hour and minutes",
			text: "usage limit reached until 10:30 AM today",
			want: "10:30 AM",
		},
		{
			name: "case insensitive",
			text: "UNTIL 12:00 am",
			want: "12:00 am",
		},
		{
			name: "prose around the notice",
			text: "a\nb\nrate limited, try again until 7 pm or switch accounts\nc",
			want: "7 pm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Config{}, scanClock)

			det, ok := s.Scan(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, det.TimeText)
			assert.Equal(t, scanClock.Instant, det.ObservedAt)
		})
	}
}

func TestScanNoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "ordinary output", text: "hello\nworld\n"},
		{name: "anchor without a time", text: "wait until tomorrow\n"},
		{name: "time without the anchor", text: "it is 5 PM\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Config{}, scanClock)

			_, ok := s.Scan(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestScanAnchorGateSkipsPattern(t *testing.T) {
	s := New(Config{}, scanClock)

	_, ok := s.Scan("line one\nline two\nline three\n")
	assert.False(t, ok)
	assert.Zero(t, s.PatternChecks())
}

func TestScanNewestNoticeWins(t *testing.T) {
	s := New(Config{}, scanClock)

	text := "limit until 2 PM\nmore output\nlimit until 5 PM\n"
	det, ok := s.Scan(text)
	require.True(t, ok)
	assert.Equal(t, "5 PM", det.TimeText)
}

func TestScanLastMatchInLineWins(t *testing.T) {
	s := New(Config{}, scanClock)

	det, ok := s.Scan("blocked until 2 PM, then again until 5 PM")
	require.True(t, ok)
	assert.Equal(t, "5 PM", det.TimeText)
}

func TestScanMaxLinesCap(t *testing.T) {
	s := New(Config{MaxLines: 10}, scanClock)

	// The notice sits below the cap measured from the end.
	var b strings.Builder
	b.WriteString("limit until 5 PM\n")
	for i := 0; i < 20; i++ {
		b.WriteString("filler line\n")
	}

	_, ok := s.Scan(b.String())
	assert.False(t, ok)
}

func TestScanWithinMaxLinesCap(t *testing.T) {
	s := New(Config{MaxLines: 10}, scanClock)

	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("filler line\n")
	}
	b.WriteString("limit until 5 PM\n")

	det, ok := s.Scan(b.String())
	require.True(t, ok)
	assert.Equal(t, "5 PM", det.TimeText)
}
