// Package mocks holds testify mocks for the ports interfaces.
package mocks

import (
	"context"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTodoRepository struct {
	mock.Mock
}

func NewMockTodoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoRepository {
	m := &MockTodoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTodoRepository) LoadTodos(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	var todos []domain.Todo
	if v := args.Get(0); v != nil {
		todos = v.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *MockTodoRepository) SaveTodos(ctx context.Context, todos []domain.Todo) error {
	return m.Called(ctx, todos).Error(0)
}

type MockPomodoroRepository struct {
	mock.Mock
}

func NewMockPomodoroRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPomodoroRepository {
	m := &MockPomodoroRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPomodoroRepository) LoadPomodoroConfig(ctx context.Context) (domain.PomodoroConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PomodoroConfig), args.Error(1)
}

func (m *MockPomodoroRepository) SavePomodoroConfig(ctx context.Context, config domain.PomodoroConfig) error {
	return m.Called(ctx, config).Error(0)
}

func (m *MockPomodoroRepository) LoadSessions(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	var sessions []domain.Session
	if v := args.Get(0); v != nil {
		sessions = v.([]domain.Session)
	}
	return sessions, args.Error(1)
}

func (m *MockPomodoroRepository) SaveSessions(ctx context.Context, sessions []domain.Session) error {
	return m.Called(ctx, sessions).Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func NewMockSettingsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsRepository {
	m := &MockSettingsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSettingsRepository) LoadSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return m.Called(ctx, settings).Error(0)
}
