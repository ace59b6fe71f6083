package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/ports"
	"github.com/go-playground/validator/v10"
)

type TodoService struct {
	repo     ports.TodoRepository
	clock    ports.Clock
	ids      ports.IDGenerator
	validate *validator.Validate

	// mu spans each load-modify-save so concurrent commands cannot drop
	// each other's changes to the todo list.
	mu sync.Mutex
}

func NewTodoService(repo ports.TodoRepository, clock ports.Clock, ids ports.IDGenerator) *TodoService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}

	return &TodoService{
		repo:     repo,
		clock:    clock,
		ids:      ids,
		validate: newValidator(),
	}
}

func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.repo.LoadTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}

	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, cmd CreateTodoCommand) (domain.Todo, error) {
	cmd.Title = strings.TrimSpace(cmd.Title)
	if err := validateStruct(s.validate, cmd); err != nil {
		return domain.Todo{}, err
	}

	plannedAt, err := parseOptionalTimestamp("plannedAt", cmd.PlannedAt)
	if err != nil {
		return domain.Todo{}, err
	}
	dueAt, err := parseOptionalTimestamp("dueAt", cmd.DueAt)
	if err != nil {
		return domain.Todo{}, err
	}

	priority := cmd.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := s.clock.Now().UTC()
	todo := domain.Todo{
		ID:        domain.TodoID(s.ids.NewID()),
		Title:     cmd.Title,
		Detail:    cmd.Detail,
		Priority:  priority,
		Tags:      normalizeTags(cmd.Tags),
		PlannedAt: plannedAt,
		DueAt:     dueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.repo.LoadTodos(ctx)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("load todos: %w", err)
	}

	todos = append(todos, todo)
	if err := s.repo.SaveTodos(ctx, todos); err != nil {
		return domain.Todo{}, fmt.Errorf("save todos: %w", err)
	}

	return todo, nil
}

// Update replaces the stored todo with the same ID. CreatedAt is kept from
// the stored copy and UpdatedAt is stamped with the current time.
func (s *TodoService) Update(ctx context.Context, updated domain.Todo) (domain.Todo, error) {
	updated.Title = strings.TrimSpace(updated.Title)
	if updated.Priority == "" {
		updated.Priority = domain.PriorityMedium
	}
	if err := validateStruct(s.validate, updateTodoRules{Title: updated.Title, Priority: updated.Priority}); err != nil {
		return domain.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.repo.LoadTodos(ctx)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("load todos: %w", err)
	}

	idx, ok := domain.FindTodo(todos, updated.ID)
	if !ok {
		return domain.Todo{}, fmt.Errorf("update todo %q: %w", updated.ID, domain.ErrTodoNotFound)
	}

	now := s.clock.Now().UTC()
	updated.CreatedAt = todos[idx].CreatedAt
	updated.UpdatedAt = now
	updated.Tags = normalizeTags(updated.Tags)
	updated.NormalizeCompletion(now)
	todos[idx] = updated

	if err := s.repo.SaveTodos(ctx, todos); err != nil {
		return domain.Todo{}, fmt.Errorf("save todos: %w", err)
	}

	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id domain.TodoID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.repo.LoadTodos(ctx)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}

	kept := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}
	if len(kept) == len(todos) {
		return fmt.Errorf("delete todo %q: %w", id, domain.ErrTodoNotFound)
	}

	if err := s.repo.SaveTodos(ctx, kept); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}

	return nil
}

func (s *TodoService) ToggleComplete(ctx context.Context, id domain.TodoID, completed bool) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.repo.LoadTodos(ctx)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("load todos: %w", err)
	}

	idx, ok := domain.FindTodo(todos, id)
	if !ok {
		return domain.Todo{}, fmt.Errorf("toggle todo %q: %w", id, domain.ErrTodoNotFound)
	}

	todos[idx].SetCompleted(completed, s.clock.Now().UTC())

	if err := s.repo.SaveTodos(ctx, todos); err != nil {
		return domain.Todo{}, fmt.Errorf("save todos: %w", err)
	}

	return todos[idx], nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	return normalized
}
