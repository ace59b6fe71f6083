package export

import (
	"fmt"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
)

const currentSnapshotVersion = 1

type snapshotSchema struct {
	Version    int             `json:"version" toml:"version"`
	ExportedAt time.Time       `json:"exportedAt" toml:"exported_at"`
	Pomodoro   pomodoroSchema  `json:"pomodoro" toml:"pomodoro"`
	Settings   settingsSchema  `json:"settings" toml:"settings"`
	Todos      []todoSchema    `json:"todos" toml:"todos"`
	Sessions   []sessionSchema `json:"sessions" toml:"sessions"`
}

type todoSchema struct {
	ID          string     `json:"id" toml:"id"`
	Title       string     `json:"title" toml:"title"`
	Detail      *string    `json:"detail,omitempty" toml:"detail,omitempty"`
	Priority    string     `json:"priority" toml:"priority"`
	Tags        []string   `json:"tags" toml:"tags"`
	PlannedAt   *time.Time `json:"plannedAt,omitempty" toml:"planned_at,omitempty"`
	DueAt       *time.Time `json:"dueAt,omitempty" toml:"due_at,omitempty"`
	Completed   bool       `json:"completed" toml:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty" toml:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" toml:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" toml:"updated_at"`
}

type pomodoroSchema struct {
	FocusMinutes      int  `json:"focusMinutes" toml:"focus_minutes"`
	ShortBreakMinutes int  `json:"shortBreakMinutes" toml:"short_break_minutes"`
	LongBreakMinutes  int  `json:"longBreakMinutes" toml:"long_break_minutes"`
	LongBreakInterval int  `json:"longBreakInterval" toml:"long_break_interval"`
	AutoStartNext     bool `json:"autoStartNext" toml:"auto_start_next"`
}

type sessionSchema struct {
	ID              string     `json:"id" toml:"id"`
	TodoID          *string    `json:"todoId,omitempty" toml:"todo_id,omitempty"`
	StartAt         time.Time  `json:"startAt" toml:"start_at"`
	EndAt           *time.Time `json:"endAt,omitempty" toml:"end_at,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty" toml:"duration_minutes,omitempty"`
	Type            string     `json:"type" toml:"type"`
	Completed       bool       `json:"completed" toml:"completed"`
}

type settingsSchema struct {
	Theme                   string            `json:"theme" toml:"theme"`
	FollowSystemTheme       bool              `json:"followSystemTheme" toml:"follow_system_theme"`
	AlwaysOnTop             bool              `json:"alwaysOnTop" toml:"always_on_top"`
	SnapEdge                bool              `json:"snapEdge" toml:"snap_edge"`
	FloatingOpacity         float64           `json:"floatingOpacity" toml:"floating_opacity"`
	ShowCompletedInFloating bool              `json:"showCompletedInFloating" toml:"show_completed_in_floating"`
	Hotkeys                 hotkeySchema      `json:"hotkeys" toml:"hotkeys"`
	WindowState             windowStateSchema `json:"windowState" toml:"window_state"`
}

type hotkeySchema struct {
	ToggleFloating    *string `json:"toggleFloating,omitempty" toml:"toggle_floating,omitempty"`
	StartOrPauseTimer *string `json:"startOrPauseTimer,omitempty" toml:"start_or_pause_timer,omitempty"`
}

type windowStateSchema struct {
	Main     *geometrySchema `json:"main,omitempty" toml:"main,omitempty"`
	Floating *geometrySchema `json:"floating,omitempty" toml:"floating,omitempty"`
}

type geometrySchema struct {
	X      *int `json:"x,omitempty" toml:"x,omitempty"`
	Y      *int `json:"y,omitempty" toml:"y,omitempty"`
	Width  *int `json:"width,omitempty" toml:"width,omitempty"`
	Height *int `json:"height,omitempty" toml:"height,omitempty"`
}

func toSnapshotSchema(snapshot Snapshot) snapshotSchema {
	todos := make([]todoSchema, 0, len(snapshot.Todos))
	for _, todo := range snapshot.Todos {
		todos = append(todos, toTodoSchema(todo))
	}

	sessions := make([]sessionSchema, 0, len(snapshot.Sessions))
	for _, session := range snapshot.Sessions {
		sessions = append(sessions, toSessionSchema(session))
	}

	return snapshotSchema{
		Version:    currentSnapshotVersion,
		ExportedAt: snapshot.ExportedAt,
		Pomodoro:   toPomodoroSchema(snapshot.Pomodoro),
		Settings:   toSettingsSchema(snapshot.Settings),
		Todos:      todos,
		Sessions:   sessions,
	}
}

func toPomodoroSchema(config domain.PomodoroConfig) pomodoroSchema {
	return pomodoroSchema{
		FocusMinutes:      config.FocusMinutes,
		ShortBreakMinutes: config.ShortBreakMinutes,
		LongBreakMinutes:  config.LongBreakMinutes,
		LongBreakInterval: config.LongBreakInterval,
		AutoStartNext:     config.AutoStartNext,
	}
}

func toTodoSchema(todo domain.Todo) todoSchema {
	tags := todo.Tags
	if tags == nil {
		tags = []string{}
	}

	return todoSchema{
		ID:          string(todo.ID),
		Title:       todo.Title,
		Detail:      todo.Detail,
		Priority:    string(todo.Priority),
		Tags:        tags,
		PlannedAt:   todo.PlannedAt,
		DueAt:       todo.DueAt,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func toSessionSchema(session domain.Session) sessionSchema {
	var todoID *string
	if session.TodoID != nil {
		id := string(*session.TodoID)
		todoID = &id
	}

	return sessionSchema{
		ID:              string(session.ID),
		TodoID:          todoID,
		StartAt:         session.StartAt,
		EndAt:           session.EndAt,
		DurationMinutes: session.DurationMinutes,
		Type:            string(session.Kind),
		Completed:       session.Completed,
	}
}

func toSettingsSchema(settings domain.Settings) settingsSchema {
	return settingsSchema{
		Theme:                   string(settings.Theme),
		FollowSystemTheme:       settings.FollowSystemTheme,
		AlwaysOnTop:             settings.AlwaysOnTop,
		SnapEdge:                settings.SnapEdge,
		FloatingOpacity:         settings.FloatingOpacity,
		ShowCompletedInFloating: settings.ShowCompletedInFloating,
		Hotkeys: hotkeySchema{
			ToggleFloating:    settings.Hotkeys.ToggleFloating,
			StartOrPauseTimer: settings.Hotkeys.StartOrPauseTimer,
		},
		WindowState: windowStateSchema{
			Main:     toGeometrySchema(settings.WindowState.Main),
			Floating: toGeometrySchema(settings.WindowState.Floating),
		},
	}
}

func toGeometrySchema(geometry domain.WindowGeometry) *geometrySchema {
	if geometry.IsZero() {
		return nil
	}

	return &geometrySchema{X: geometry.X, Y: geometry.Y, Width: geometry.Width, Height: geometry.Height}
}

// View maps a domain value onto the same camelCase shape the export uses, so
// command output and snapshots agree on field names.
func View(value any) (any, error) {
	switch v := value.(type) {
	case []domain.Todo:
		todos := make([]todoSchema, 0, len(v))
		for _, todo := range v {
			todos = append(todos, toTodoSchema(todo))
		}
		return todos, nil
	case []domain.Session:
		sessions := make([]sessionSchema, 0, len(v))
		for _, session := range v {
			sessions = append(sessions, toSessionSchema(session))
		}
		return sessions, nil
	case domain.Settings:
		return toSettingsSchema(v), nil
	case domain.PomodoroConfig:
		return toPomodoroSchema(v), nil
	default:
		return nil, fmt.Errorf("no export view for %T", value)
	}
}
