package cmd

import (
	"context"
	"fmt"
	"time"

	listingadapter "github.com/bnema/pomodesk/internal/adapters/render/listing"
	"github.com/bnema/pomodesk/internal/adapters/repo/jsonfile"
	"github.com/bnema/pomodesk/internal/application"
	"github.com/bnema/pomodesk/internal/config"
	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/logging"
	"github.com/bnema/pomodesk/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	paths    jsonfile.Paths
	store    *jsonfile.Store
	todos    *application.TodoService
	pomodoro *application.PomodoroService
	settings *application.SettingsService
	logger   *zap.Logger

	todoRenderer     func([]domain.Todo, listingadapter.RenderOptions) (string, error)
	sessionRenderer  func([]domain.Session, listingadapter.RenderOptions) (string, error)
	settingsRenderer func(domain.Settings, domain.PomodoroConfig) (string, error)
	now              func() time.Time
}

func wireApp() (*app, error) {
	// The host root is only needed when no override is configured, so a
	// resolution failure is reported after the config has had its say.
	hostRoot, hostErr := jsonfile.AppDataRoot()

	var searchDirs []string
	if hostErr == nil {
		searchDirs = append(searchDirs, hostRoot)
	}

	cfg, err := config.Load(viper.New(), searchDirs...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	root := cfg.DataRoot
	if root == "" {
		if hostErr != nil {
			return nil, hostErr
		}
		root = hostRoot
	}

	paths, err := jsonfile.ResolvePaths(root)
	if err != nil {
		return nil, fmt.Errorf("resolve data paths: %w", err)
	}

	clock := ports.SystemClock{}
	store, err := jsonfile.Open(context.Background(), paths, clock, logger)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}

	ids := ports.UUIDGenerator{}

	return &app{
		paths:            paths,
		store:            store,
		todos:            application.NewTodoService(store, clock, ids),
		pomodoro:         application.NewPomodoroService(store, ids),
		settings:         application.NewSettingsService(store),
		logger:           logger,
		todoRenderer:     listingadapter.RenderTodos,
		sessionRenderer:  listingadapter.RenderSessions,
		settingsRenderer: listingadapter.RenderSettings,
		now:              time.Now,
	}, nil
}
