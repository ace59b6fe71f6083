package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	configHome := t.TempDir()
	dataRoot := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(configHome, dataRoot))

	stdout, stderr, err := runPD(t, binaryPath, configHome, "todo", "add", "Buy milk")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Buy milk")
	assert.Contains(t, stderr, "document saved")

	id := strings.Fields(stdout)[0]
	_, stderr, err = runPD(t, binaryPath, configHome, "todo", "done", id)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runPD(t, binaryPath, configHome, "todo", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "[x]")

	_, err = os.Stat(filepath.Join(dataRoot, "data", "todos.json"))
	require.NoError(t, err)
}

func TestSmokeInvalidCommandExitsNonZero(t *testing.T) {
	configHome := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(configHome, t.TempDir()))

	_, stderr, err := runPD(t, binaryPath, configHome, "pomodoro", "config", "set", "--focus", "0")
	require.Error(t, err)
	assert.Contains(t, stderr, "focusMinutes must be greater than 0")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pd-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pd")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pd binary: %s", string(output))
	return binaryPath
}

func runPD(t *testing.T, binaryPath, configHome string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "PD_DATA_ROOT=")

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

func writeConfigFixture(configHome, dataRoot string) error {
	appDir := filepath.Join(configHome, "pomodesk")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return err
	}

	config := fmt.Sprintf(`[data]
root = %q

[log]
level = "debug"
format = "json"
`, dataRoot)

	return os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(config), 0o644)
}
