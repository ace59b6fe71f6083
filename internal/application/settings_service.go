package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/ports"
	"github.com/go-playground/validator/v10"
)

type SettingsService struct {
	repo     ports.SettingsRepository
	validate *validator.Validate
	mu       sync.Mutex
}

func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo, validate: newValidator()}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	return settings, nil
}

func (s *SettingsService) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if err := s.validateSettings(settings); err != nil {
		return domain.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	return settings, nil
}

// RecordWindowGeometry stores the last known geometry of a named window.
// Values outside the plausible screen envelope are refused rather than saved.
func (s *SettingsService) RecordWindowGeometry(ctx context.Context, label domain.WindowLabel, geometry domain.WindowGeometry) (domain.Settings, error) {
	if _, known := domain.DefaultSettings().Geometry(label); !known {
		return domain.Settings{}, domain.NewValidationError("label", fmt.Sprintf("unknown window %q", label))
	}
	if field := geometry.OutOfRangeField(); field != "" {
		return domain.Settings{}, domain.NewValidationError(field, "is outside the supported window envelope")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	settings.SetGeometry(label, geometry)

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	return settings, nil
}

// RestoreGeometry reads the remembered geometry for label and decides how the
// window should be placed. It never writes.
func (s *SettingsService) RestoreGeometry(ctx context.Context, label domain.WindowLabel) (WindowPlacement, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return WindowPlacement{}, fmt.Errorf("load settings: %w", err)
	}

	geometry, known := settings.Geometry(label)
	if !known {
		return WindowPlacement{}, domain.NewValidationError("label", fmt.Sprintf("unknown window %q", label))
	}

	placement := WindowPlacement{Label: label, Centered: true}
	if geometry.HasPosition() {
		placement.Centered = false
		placement.X = geometry.X
		placement.Y = geometry.Y
	}
	if geometry.HasSize() {
		placement.Width = geometry.Width
		placement.Height = geometry.Height
	}

	return placement, nil
}

func (s *SettingsService) validateSettings(settings domain.Settings) error {
	return validateStruct(s.validate, settingsRules{
		Theme:           settings.Theme,
		FloatingOpacity: settings.FloatingOpacity,
	})
}
