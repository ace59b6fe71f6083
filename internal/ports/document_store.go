package ports

import (
	"context"

	"github.com/bnema/pomodesk/internal/domain"
)

// Each repository loads and saves a whole document; there are no field-level
// updates at this boundary.

type TodoRepository interface {
	LoadTodos(ctx context.Context) ([]domain.Todo, error)
	SaveTodos(ctx context.Context, todos []domain.Todo) error
}

type PomodoroRepository interface {
	LoadPomodoroConfig(ctx context.Context) (domain.PomodoroConfig, error)
	SavePomodoroConfig(ctx context.Context, config domain.PomodoroConfig) error
	LoadSessions(ctx context.Context) ([]domain.Session, error)
	SaveSessions(ctx context.Context, sessions []domain.Session) error
}

type SettingsRepository interface {
	LoadSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

type DocumentStore interface {
	TodoRepository
	PomodoroRepository
	SettingsRepository
}
