package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoAddListDoneFlow(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, root, "todo", "add", "Buy milk", "--priority", "high", "--tag", "home")
	require.NoError(t, err)
	id := firstField(stdout)
	require.NotEmpty(t, id)
	assert.Contains(t, stdout, "Buy milk")

	stdout, _, err = executeCLI(t, root, "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "total: 1  open: 1")
	assert.Contains(t, stdout, "Buy milk")
	assert.Contains(t, stdout, "(high)")

	stdout, _, err = executeCLI(t, root, "todo", "done", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "completed")

	stdout, _, err = executeCLI(t, root, "todo", "list", "--json")
	require.NoError(t, err)
	var todos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, true, todos[0]["completed"])
	assert.NotNil(t, todos[0]["completedAt"])
	assert.Equal(t, "high", todos[0]["priority"])
	assert.Equal(t, []any{"home"}, todos[0]["tags"])
	assert.NotContains(t, todos[0], "Completed")

	_, _, err = executeCLI(t, root, "todo", "rm", id)
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, root, "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No todos yet.")
}

func TestTodoEditChangesOnlyGivenFields(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, root, "todo", "add", "Draft", "--detail", "first pass")
	require.NoError(t, err)
	id := firstField(stdout)

	_, _, err = executeCLI(t, root, "todo", "edit", id, "--title", "Final", "--due", "2024-03-11T17:00:00Z")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, root, "todo", "list", "--json")
	require.NoError(t, err)
	var todos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, "Final", todos[0]["title"])
	assert.Equal(t, "first pass", todos[0]["detail"])
	assert.Equal(t, "2024-03-11T17:00:00Z", todos[0]["dueAt"])
}

func TestTodoCommandsReportMissingTodo(t *testing.T) {
	root := t.TempDir()

	for _, args := range [][]string{
		{"todo", "done", "missing"},
		{"todo", "rm", "missing"},
		{"todo", "edit", "missing", "--title", "x"},
	} {
		_, _, err := executeCLI(t, root, args...)
		require.Error(t, err, strings.Join(args, " "))
		assert.Contains(t, err.Error(), "not found")
	}
}

func TestTodoAddRejectsUnknownPriority(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCLI(t, root, "todo", "add", "Buy milk", "--priority", "urgent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority must be one of: low, medium, high")
}

func TestPomodoroConfigSetValidatesBeforeSaving(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCLI(t, root, "pomodoro", "config", "set", "--focus", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "focusMinutes must be greater than 0")

	stdout, _, err := executeCLI(t, root, "pomodoro", "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "focus\t25")

	_, _, err = executeCLI(t, root, "pomodoro", "config", "set", "--focus", "50", "--auto-start")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, root, "pomodoro", "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "focus\t50")
	assert.Contains(t, stdout, "auto-start\ttrue")
}

func TestSessionAddInfersDurationAndListFiltersByDate(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, root, "session", "add",
		"--start", "2024-03-10T10:00:00Z",
		"--end", "2024-03-10T10:25:00Z",
		"--completed",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "focus\t25")

	_, _, err = executeCLI(t, root, "session", "add", "--start", "2024-03-11T10:00:00Z", "--type", "shortBreak", "--duration", "5")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, root, "session", "list", "--date", "2024-03-10", "--json")
	require.NoError(t, err)
	var sessions []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &sessions))
	require.Len(t, sessions, 1)
	assert.EqualValues(t, 25, sessions[0]["durationMinutes"])
	assert.Equal(t, "focus", sessions[0]["type"])
	assert.Equal(t, "2024-03-10T10:00:00Z", sessions[0]["startAt"])

	stdout, _, err = executeCLI(t, root, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 2")
}

func TestSessionAddRequiresStart(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCLI(t, root, "session", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"start\" not set")
}

func TestSettingsSetAndShow(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCLI(t, root, "settings", "set", "--theme", "dark", "--opacity", "0.5")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, root, "settings")
	require.NoError(t, err)
	assert.Contains(t, stdout, "theme: dark")
	assert.Contains(t, stdout, "floating opacity: 0.50")
	assert.Contains(t, stdout, "focus: 25m")

	_, _, err = executeCLI(t, root, "settings", "set", "--opacity", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floatingOpacity")

	stdout, _, err = executeCLI(t, root, "settings", "--json")
	require.NoError(t, err)
	var settings map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &settings))
	assert.Equal(t, "dark", settings["theme"])
	assert.InDelta(t, 0.5, settings["floatingOpacity"], 1e-9)
	assert.Contains(t, settings, "windowState")
	assert.NotContains(t, settings, "Theme")

	stdout, _, err = executeCLI(t, root, "pomodoro", "config", "--json")
	require.NoError(t, err)
	var config map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &config))
	assert.EqualValues(t, 25, config["focusMinutes"])
}

func TestWindowRecordAndShow(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, root, "window", "show", "floating")
	require.NoError(t, err)
	assert.Contains(t, stdout, "floating\tcentered\tdefault size")

	_, _, err = executeCLI(t, root, "window", "record", "floating", "--x", "40", "--y", "60", "--width", "320", "--height", "480")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, root, "window", "show", "floating")
	require.NoError(t, err)
	assert.Contains(t, stdout, "floating\tat 40,60\t320x480")

	_, _, err = executeCLI(t, root, "window", "record", "sidebar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown window")
}

func TestExportTOMLToFile(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "pomodesk.toml")

	_, _, err := executeCLI(t, root, "todo", "add", "Buy milk")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, root, "export", "--format", "toml", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, stdout, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[todos]]")
	assert.Contains(t, string(data), "Buy milk")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCLI(t, root, "export", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestBackupListAfterSecondWrite(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, root, "backup", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no backups yet")

	_, _, err = executeCLI(t, root, "todo", "add", "Buy milk")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, root, "backup", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "todos.json")
}

func TestPathsPrintsDataDirectories(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, root, "paths")
	require.NoError(t, err)
	assert.Contains(t, stdout, "data\t"+filepath.Join(root, "data"))
	assert.Contains(t, stdout, "backups\t"+filepath.Join(root, "data", "backups"))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PD_DATA_ROOT", root)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
