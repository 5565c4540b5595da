package scan

import (
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/mlvx/limitwatch/internal/domain"
	"github.com/mlvx/limitwatch/internal/ports"
)

// limitPattern matches the service's rate-limit notice: "until 5 PM",
// "until 10:30 am". Capture group 1 is the raw time text.
var limitPattern = regexp.MustCompile(`(?i)until\s+(\d{1,2}(?::\d{2})?\s*(?:AM|PM))`)

// anchor is the cheap containment gate that decides whether a line is
// worth running the pattern against. The anchor word is rare in normal
// transcript text, so almost every line is rejected by this check alone.
const anchor = "until"

const DefaultMaxLines = 5000

type Config struct {
	// MaxLines caps how many lines one scan examines, newest first.
	// A pathological snapshot aborts instead of running unboundedly.
	MaxLines int
}

// Scanner extracts the raw limit time from transcript text. Scans walk
// lines from the end of the snapshot because notices are appended, and
// stop at the first match.
type Scanner struct {
	cfg   Config
	clock ports.Clock

	patternChecks atomic.Int64
}

func New(cfg Config, clock ports.Clock) *Scanner {
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = DefaultMaxLines
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Scanner{cfg: cfg, clock: clock}
}

// Scan reports the newest limit notice in text, if any. The detection
// carries a single captured "now" for the resolver to resolve against.
func (s *Scanner) Scan(text string) (domain.Detection, bool) {
	lines := strings.Split(text, "\n")

	examined := 0
	for i := len(lines) - 1; i >= 0; i-- {
		examined++
		if examined > s.cfg.MaxLines {
			break
		}

		line := lines[i]
		if len(line) < len(anchor) || !strings.Contains(strings.ToLower(line), anchor) {
			continue
		}

		s.patternChecks.Add(1)
		matches := limitPattern.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}

		// Newest match within the line wins too.
		timeText := matches[len(matches)-1][1]
		return domain.Detection{
			TimeText:   timeText,
			ObservedAt: s.clock.Now(),
		}, true
	}

	return domain.Detection{}, false
}

// PatternChecks returns how many times the full pattern ran. Tests use
// it to verify the anchor gate short-circuits non-matching input.
func (s *Scanner) PatternChecks() int64 {
	return s.patternChecks.Load()
}
