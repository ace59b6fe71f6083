package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBootstrapsMissingDocuments(t *testing.T) {
	t.Parallel()

	paths, err := ResolvePaths(t.TempDir())
	require.NoError(t, err)

	_, err = Open(context.Background(), paths, nil, nil)
	require.NoError(t, err)

	for _, document := range Documents {
		_, err := os.Stat(filepath.Join(paths.DataDir, document))
		require.NoError(t, err, document)
	}

	todos, err := os.ReadFile(filepath.Join(paths.DataDir, TodosDocument))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(todos))

	settings, err := os.ReadFile(filepath.Join(paths.DataDir, SettingsDocument))
	require.NoError(t, err)
	assert.Contains(t, string(settings), `"floatingOpacity": 0.95`)
	assert.Contains(t, string(settings), `"theme": "mac"`)

	config, err := os.ReadFile(filepath.Join(paths.DataDir, PomodoroDocument))
	require.NoError(t, err)
	assert.JSONEq(t, `{"focusMinutes":25,"shortBreakMinutes":5,"longBreakMinutes":15,"longBreakInterval":4,"autoStartNext":false}`, string(config))

	backups, err := os.ReadDir(paths.BackupDir)
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestOpenBootstrapIsIdempotent(t *testing.T) {
	t.Parallel()

	paths, err := ResolvePaths(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	store, err := Open(ctx, paths, nil, nil)
	require.NoError(t, err)

	config := domain.DefaultPomodoroConfig()
	config.FocusMinutes = 40
	require.NoError(t, store.SavePomodoroConfig(ctx, config))

	emptySettings := filepath.Join(paths.DataDir, SettingsDocument)
	require.NoError(t, os.WriteFile(emptySettings, nil, 0o600))

	reopened, err := Open(ctx, paths, fixedClock{now: time.Now()}, nil)
	require.NoError(t, err)

	got, err := reopened.LoadPomodoroConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, got.FocusMinutes)

	data, err := os.ReadFile(emptySettings)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpenBootstrapFailurePropagates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	paths := Paths{
		Root:      root,
		DataDir:   filepath.Join(root, "data"),
		BackupDir: filepath.Join(root, "data", "backups"),
	}
	// A regular file where the data directory should be makes every write fail.
	require.NoError(t, os.WriteFile(paths.DataDir, []byte("not a directory"), 0o600))

	_, err := Open(context.Background(), paths, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorContains(t, err, "bootstrap")
}

func TestOpenSweepsStaleTempFiles(t *testing.T) {
	t.Parallel()

	paths, err := ResolvePaths(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	store, err := Open(ctx, paths, nil, nil)
	require.NoError(t, err)
	require.NoError(t, store.SaveTodos(ctx, []domain.Todo{{ID: "t1", Title: "Keep me", Priority: domain.PriorityLow}}))

	stale := filepath.Join(paths.DataDir, ".todos.json-123.tmp")
	require.NoError(t, os.WriteFile(stale, []byte(`[{"id":"half`), 0o600))
	unrelated := filepath.Join(paths.DataDir, "notes.tmp")
	require.NoError(t, os.WriteFile(unrelated, []byte("mine"), 0o600))

	reopened, err := Open(ctx, paths, nil, nil)
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(unrelated)
	assert.NoError(t, err)

	todos, err := reopened.LoadTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Keep me", todos[0].Title)
}
