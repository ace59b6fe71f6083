package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/ports"
	"github.com/go-playground/validator/v10"
)

type PomodoroService struct {
	repo     ports.PomodoroRepository
	ids      ports.IDGenerator
	validate *validator.Validate
	mu       sync.Mutex
}

func NewPomodoroService(repo ports.PomodoroRepository, ids ports.IDGenerator) *PomodoroService {
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}

	return &PomodoroService{repo: repo, ids: ids, validate: newValidator()}
}

func (s *PomodoroService) GetConfig(ctx context.Context) (domain.PomodoroConfig, error) {
	config, err := s.repo.LoadPomodoroConfig(ctx)
	if err != nil {
		return domain.PomodoroConfig{}, fmt.Errorf("load pomodoro config: %w", err)
	}

	return config, nil
}

// SaveConfig rejects non-positive durations and focus blocks longer than
// domain.MaxFocusMinutes before anything is written.
func (s *PomodoroService) SaveConfig(ctx context.Context, config domain.PomodoroConfig) (domain.PomodoroConfig, error) {
	if err := validateStruct(s.validate, config); err != nil {
		return domain.PomodoroConfig{}, err
	}

	if err := s.repo.SavePomodoroConfig(ctx, config); err != nil {
		return domain.PomodoroConfig{}, fmt.Errorf("save pomodoro config: %w", err)
	}

	return config, nil
}

func (s *PomodoroService) AppendSession(ctx context.Context, cmd AppendSessionCommand) (domain.Session, error) {
	session, err := s.buildSession(cmd)
	if err != nil {
		return domain.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.repo.LoadSessions(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load sessions: %w", err)
	}

	sessions = append(sessions, session)
	if err := s.repo.SaveSessions(ctx, sessions); err != nil {
		return domain.Session{}, fmt.Errorf("save sessions: %w", err)
	}

	return session, nil
}

// ListSessions returns every session, or when date (YYYY-MM-DD) is given only
// those whose start falls on that calendar day in the start's own offset.
func (s *PomodoroService) ListSessions(ctx context.Context, date string) ([]domain.Session, error) {
	var target time.Time
	filter := strings.TrimSpace(date) != ""
	if filter {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(date))
		if err != nil {
			return nil, domain.NewValidationError("date", "must be a YYYY-MM-DD date")
		}
		target = parsed
	}

	sessions, err := s.repo.LoadSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if !filter {
		return sessions, nil
	}

	year, month, day := target.Date()
	matched := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.OnDate(year, month, day) {
			matched = append(matched, session)
		}
	}

	return matched, nil
}

func (s *PomodoroService) buildSession(cmd AppendSessionCommand) (domain.Session, error) {
	if err := validateStruct(s.validate, cmd); err != nil {
		return domain.Session{}, err
	}

	startAt, err := parseTimestamp("startAt", cmd.StartAt)
	if err != nil {
		return domain.Session{}, err
	}
	endAt, err := parseOptionalTimestamp("endAt", cmd.EndAt)
	if err != nil {
		return domain.Session{}, err
	}

	var duration *int
	switch {
	case endAt != nil && cmd.DurationMinutes != nil && *cmd.DurationMinutes > 0:
		explicit := *cmd.DurationMinutes
		duration = &explicit
	case endAt != nil:
		inferred := domain.WholeMinutes(endAt.Sub(startAt))
		duration = &inferred
	case cmd.DurationMinutes != nil:
		explicit := *cmd.DurationMinutes
		duration = &explicit
	}

	var todoID *domain.TodoID
	if cmd.TodoID != nil && strings.TrimSpace(*cmd.TodoID) != "" {
		id := domain.TodoID(strings.TrimSpace(*cmd.TodoID))
		todoID = &id
	}

	return domain.Session{
		ID:              domain.SessionID(s.ids.NewID()),
		TodoID:          todoID,
		StartAt:         startAt,
		EndAt:           endAt,
		DurationMinutes: duration,
		Kind:            cmd.Kind,
		Completed:       cmd.Completed,
	}, nil
}
