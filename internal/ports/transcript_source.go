package ports

import "context"

// TranscriptSource yields the current text of the watched transcript.
// Implementations may return only a suffix of the full document; limit
// notices are appended content, so the tail is where they live.
type TranscriptSource interface {
	Snapshot(ctx context.Context) (string, error)
}
