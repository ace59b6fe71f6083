package listing

import (
	"testing"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTodos(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	detail := "2 litres"
	due := now.Add(-time.Hour)
	completedAt := now

	output, err := RenderTodos([]domain.Todo{
		{
			ID:       "todo-1",
			Title:    "Buy milk",
			Detail:   &detail,
			Priority: domain.PriorityHigh,
			Tags:     []string{"home", "errands"},
			DueAt:    &due,
		},
		{
			ID:          "todo-2",
			Title:       "Write report",
			Priority:    domain.PriorityLow,
			Completed:   true,
			CompletedAt: &completedAt,
		},
	}, RenderOptions{Now: now, Location: time.UTC})

	require.NoError(t, err)
	assert.Contains(t, output, "total: 2  open: 1")
	assert.Contains(t, output, "[ ]")
	assert.Contains(t, output, "[x]")
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "(high)")
	assert.Contains(t, output, "2 litres")
	assert.Contains(t, output, "home, errands")
	assert.Contains(t, output, "2024-03-10 11:00")
	assert.Contains(t, output, "[overdue]")
	assert.Contains(t, output, "todo-2")
}

func TestRenderTodosEmpty(t *testing.T) {
	output, err := RenderTodos(nil, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "No todos yet.")
}

func TestRenderTodosCompletedPastDueIsNotOverdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)

	output, err := RenderTodos([]domain.Todo{
		{ID: "todo-1", Title: "Done already", Priority: domain.PriorityMedium, DueAt: &due, Completed: true, CompletedAt: &now},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.NotContains(t, output, "overdue")
}

func TestRenderSessions(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.FixedZone("", 2*60*60))
	focus := 25
	long := 95
	todoID := domain.TodoID("todo-1")

	output, err := RenderSessions([]domain.Session{
		{ID: "s-1", TodoID: &todoID, StartAt: start, DurationMinutes: &focus, Kind: domain.SessionFocus, Completed: true},
		{ID: "s-2", StartAt: start.Add(30 * time.Minute), DurationMinutes: &long, Kind: domain.SessionFocus},
		{ID: "s-3", StartAt: start.Add(2 * time.Hour), Kind: domain.SessionShortBreak},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "sessions: 3  focus: 2h")
	assert.Contains(t, output, "2024-03-10 09:00")
	assert.Contains(t, output, "25m")
	assert.Contains(t, output, "1h35m")
	assert.Contains(t, output, "open")
	assert.Contains(t, output, "shortBreak")
	assert.Contains(t, output, "todo todo-1")
	assert.Contains(t, output, "done")
}

func TestRenderSessionsEmpty(t *testing.T) {
	output, err := RenderSessions([]domain.Session{}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "No sessions recorded.")
}

func TestRenderSettings(t *testing.T) {
	settings := domain.DefaultSettings()
	hotkey := "CmdOrCtrl+Shift+F"
	x, y, w, h := 10, 20, 320, 480
	settings.Hotkeys.ToggleFloating = &hotkey
	settings.WindowState.Floating = domain.WindowGeometry{X: &x, Y: &y, Width: &w, Height: &h}

	output, err := RenderSettings(settings, domain.DefaultPomodoroConfig())

	require.NoError(t, err)
	assert.Contains(t, output, "focus: 25m")
	assert.Contains(t, output, "long break every: 4 sessions")
	assert.Contains(t, output, "theme: mac")
	assert.Contains(t, output, "floating opacity: 0.95")
	assert.Contains(t, output, "toggle floating hotkey: CmdOrCtrl+Shift+F")
	assert.Contains(t, output, "start/pause hotkey: unset")
	assert.Contains(t, output, "main window: not recorded")
	assert.Contains(t, output, "floating window: at 10,20 320x480")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", formatMinutes(0))
	assert.Equal(t, "59m", formatMinutes(59))
	assert.Equal(t, "1h", formatMinutes(60))
	assert.Equal(t, "2h05m", formatMinutes(125))
}
