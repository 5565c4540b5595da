package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mlvx/limitwatch/internal/ports"
)

// DefaultWindow is how many trailing bytes of the transcript one
// snapshot covers. Limit notices are appended content; a notice older
// than the window is deliberately not seen.
const DefaultWindow = 5000

// FileSource reads the watched transcript from a file the host tooling
// appends to. Only the suffix window is returned, cut at a line
// boundary so the scanner never sees a torn first line.
type FileSource struct {
	path   string
	window int64
}

var _ ports.TranscriptSource = (*FileSource)(nil)

func NewFileSource(path string, window int) *FileSource {
	if window <= 0 {
		window = DefaultWindow
	}

	return &FileSource{path: path, window: int64(window)}
}

func (s *FileSource) Snapshot(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("open transcript: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat transcript: %w", err)
	}

	truncated := false
	if info.Size() > s.window {
		if _, err := f.Seek(info.Size()-s.window, io.SeekStart); err != nil {
			return "", fmt.Errorf("seek transcript window: %w", err)
		}
		truncated = true
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := string(data)
	if truncated {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i+1:]
		}
	}

	return text, nil
}
