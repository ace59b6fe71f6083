// Package export writes a point-in-time snapshot of every stored document in a
// single JSON or TOML file.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/ports"
	"github.com/pelletier/go-toml/v2"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", domain.NewValidationError("format", fmt.Sprintf("unsupported export format %q (want json or toml)", raw))
	}
}

type Snapshot struct {
	ExportedAt time.Time
	Todos      []domain.Todo
	Pomodoro   domain.PomodoroConfig
	Sessions   []domain.Session
	Settings   domain.Settings
}

// Collect loads every document from store. Each load takes the store lock on
// its own, so the snapshot is consistent per document rather than globally.
func Collect(ctx context.Context, store ports.DocumentStore, clock ports.Clock) (Snapshot, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	todos, err := store.LoadTodos(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load todos: %w", err)
	}
	config, err := store.LoadPomodoroConfig(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load pomodoro config: %w", err)
	}
	sessions, err := store.LoadSessions(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load sessions: %w", err)
	}
	settings, err := store.LoadSettings(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load settings: %w", err)
	}

	return Snapshot{
		ExportedAt: clock.Now().UTC(),
		Todos:      todos,
		Pomodoro:   config,
		Sessions:   sessions,
		Settings:   settings,
	}, nil
}

func Encode(snapshot Snapshot, format Format) ([]byte, error) {
	schema := toSnapshotSchema(snapshot)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json snapshot: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(schema); err != nil {
			return nil, fmt.Errorf("encode toml snapshot: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, domain.NewValidationError("format", fmt.Sprintf("unsupported export format %q (want json or toml)", format))
	}
}

func Write(w io.Writer, snapshot Snapshot, format Format) error {
	data, err := Encode(snapshot, format)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}
