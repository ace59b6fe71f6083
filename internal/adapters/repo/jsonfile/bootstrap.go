package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/pomodesk/internal/domain"
	"go.uber.org/zap"
)

// bootstrap writes the default value of every document whose file is absent.
// Existing files, even empty ones, are left alone.
func (s *Store) bootstrap(ctx context.Context) error {
	defaults := map[string]func(context.Context) error{
		TodosDocument: func(ctx context.Context) error {
			return s.SaveTodos(ctx, []domain.Todo{})
		},
		SessionsDocument: func(ctx context.Context) error {
			return s.SaveSessions(ctx, []domain.Session{})
		},
		PomodoroDocument: func(ctx context.Context) error {
			return s.SavePomodoroConfig(ctx, domain.DefaultPomodoroConfig())
		},
		SettingsDocument: func(ctx context.Context) error {
			return s.SaveSettings(ctx, domain.DefaultSettings())
		},
	}

	s.sweepTempFiles()

	for _, document := range Documents {
		_, err := os.Stat(s.pathFor(document))
		if err == nil {
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("bootstrap %s: %w", document, &domain.IOError{Op: "stat", Document: document, Err: err})
		}

		if err := defaults[document](ctx); err != nil {
			return fmt.Errorf("bootstrap %s: %w", document, err)
		}
		s.logger.Info("document initialized with defaults", zap.String("document", document))
	}

	return nil
}

// sweepTempFiles removes temp files left by a save that died before its
// rename. Failures are logged and skipped.
func (s *Store) sweepTempFiles() {
	for _, document := range Documents {
		matches, err := filepath.Glob(filepath.Join(s.paths.DataDir, tempPattern(document)))
		if err != nil {
			continue
		}
		for _, match := range matches {
			if err := os.Remove(match); err != nil && !errors.Is(err, os.ErrNotExist) {
				s.logger.Warn("stale temp file not removed", zap.String("path", match), zap.Error(err))
				continue
			}
			s.logger.Info("stale temp file removed", zap.String("path", match))
		}
	}
}
