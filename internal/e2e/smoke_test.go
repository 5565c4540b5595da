package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeAccountsFixture(home))

	stdout, stderr, err := runLW(t, binaryPath, home, "switch", "1")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Active account: Primary (1)")

	transcriptPath := filepath.Join(home, "transcript.log")
	require.NoError(t, os.WriteFile(transcriptPath, []byte("output\nusage limit reached until 11:59 PM\n"), 0o600))

	stdout, stderr, err = runLW(t, binaryPath, home, "scan", transcriptPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Cooldown recorded: 11:59 PM")

	stdout, stderr, err = runLW(t, binaryPath, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Primary (1)")
	assert.Contains(t, stdout, "[cooling")

	stdout, stderr, err = runLW(t, binaryPath, home, "next")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Active account: Backup (2)")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "lw-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/lw")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build lw binary: %s", string(output))
	return binaryPath
}

func runLW(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeAccountsFixture(home string) error {
	configDir := filepath.Join(home, ".limitwatch")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	accounts := `version = 1

[[accounts]]
id = "1"
name = "Primary"
key = "sk-primary-0001"

[[accounts]]
id = "2"
name = "Backup"
key = "sk-backup-0001"
`

	return os.WriteFile(filepath.Join(configDir, "accounts.toml"), []byte(accounts), 0o600)
}
