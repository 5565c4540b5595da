package transcript

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranscript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transcript.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSnapshotReadsWholeFileWithinWindow(t *testing.T) {
	t.Parallel()

	content := "line one\nline two\nuntil 5 PM\n"
	source := NewFileSource(writeTranscript(t, content), 0)

	got, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSnapshotMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	source := NewFileSource(filepath.Join(t.TempDir(), "absent.log"), 0)

	got, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSnapshotKeepsOnlySuffixWindow(t *testing.T) {
	t.Parallel()

	old := "old notice until 2 PM\n"
	filler := strings.Repeat("filler filler filler\n", 10)
	recent := "recent notice until 5 PM\n"
	source := NewFileSource(writeTranscript(t, old+filler+recent), 64)

	got, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got, "until 5 PM")
	assert.NotContains(t, got, "until 2 PM")
}

func TestSnapshotDropsTornFirstLine(t *testing.T) {
	t.Parallel()

	content := "first line is long enough to be cut\nsecond line\nthird line\n"
	source := NewFileSource(writeTranscript(t, content), len(content)-10)

	got, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second line\nthird line\n", got)
}

func TestSnapshotHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	source := NewFileSource(writeTranscript(t, "content\n"), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
