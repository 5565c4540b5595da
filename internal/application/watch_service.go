package application

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mlvx/limitwatch/internal/cooldown"
	"github.com/mlvx/limitwatch/internal/ports"
	"github.com/mlvx/limitwatch/internal/scan"
)

// ScanOutcome describes one completed scan cycle.
type ScanOutcome struct {
	Detected bool
	TimeText string
	// Applied is true when the cycle wrote a new cooldown; a detection
	// inside the debounce tolerance leaves it false.
	Applied bool
}

// WatchService runs the scan pipeline: trigger fires, the transcript
// is snapshotted, scanned, and any detection is reconciled before the
// cycle counts as complete. Cycles are single-flight: a trigger that
// fires mid-cycle is dropped, never queued.
type WatchService struct {
	source   ports.TranscriptSource
	scanner  *scan.Scanner
	resolver *cooldown.Resolver
	trigger  ports.Trigger
	log      zerolog.Logger

	inFlight atomic.Bool
}

func NewWatchService(source ports.TranscriptSource, scanner *scan.Scanner, resolver *cooldown.Resolver, trigger ports.Trigger, log zerolog.Logger) *WatchService {
	return &WatchService{
		source:   source,
		scanner:  scanner,
		resolver: resolver,
		trigger:  trigger,
		log:      log,
	}
}

// Run blocks until ctx is done, scanning whenever the trigger fires.
func (s *WatchService) Run(ctx context.Context) error {
	return s.trigger.Run(ctx, s.Cycle)
}

// Cycle runs at most one scan. Every failure is contained here: a bad
// snapshot or a failed store write is logged and the next cycle starts
// from scratch. Nothing reaches the user except the success toast the
// resolver emits.
func (s *WatchService) Cycle(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer s.inFlight.Store(false)

	outcome, err := s.runOnce(ctx)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("scan cycle failed")
	case outcome.Applied:
		s.log.Info().Str("time_text", outcome.TimeText).Msg("cooldown recorded")
	case outcome.Detected:
		s.log.Debug().Str("time_text", outcome.TimeText).Msg("duplicate or unattributed detection")
	default:
		s.log.Debug().Msg("no limit notice found")
	}
}

// ScanOnce runs a single cycle outside the trigger loop, bypassing the
// single-flight guard. The one-shot scan command uses it.
func (s *WatchService) ScanOnce(ctx context.Context) (ScanOutcome, error) {
	return s.runOnce(ctx)
}

func (s *WatchService) runOnce(ctx context.Context) (ScanOutcome, error) {
	text, err := s.source.Snapshot(ctx)
	if err != nil {
		return ScanOutcome{}, err
	}

	det, ok := s.scanner.Scan(text)
	if !ok {
		return ScanOutcome{}, nil
	}

	applied, err := s.resolver.Apply(ctx, det)
	if err != nil {
		return ScanOutcome{Detected: true, TimeText: det.TimeText}, err
	}

	return ScanOutcome{Detected: true, TimeText: det.TimeText, Applied: applied}, nil
}
