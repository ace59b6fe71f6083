package jsonfile

import (
	"fmt"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
)

// The structs in this file are the on-disk contract. JSON field names are
// camelCase and must not change between releases. Fields absent from a file
// keep the value they were pre-populated with, so every decode starts from
// the defaults below.

const timeLayout = time.RFC3339Nano

type todoSchema struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Detail      *string  `json:"detail"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	PlannedAt   *string  `json:"plannedAt"`
	DueAt       *string  `json:"dueAt"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completedAt"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func (s *todoSchema) applyDefaults() {
	if s.Priority == "" {
		s.Priority = string(domain.PriorityMedium)
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
}

type pomodoroConfigSchema struct {
	FocusMinutes      int  `json:"focusMinutes"`
	ShortBreakMinutes int  `json:"shortBreakMinutes"`
	LongBreakMinutes  int  `json:"longBreakMinutes"`
	LongBreakInterval int  `json:"longBreakInterval"`
	AutoStartNext     bool `json:"autoStartNext"`
}

func defaultPomodoroConfigSchema() pomodoroConfigSchema {
	return toPomodoroConfigSchema(domain.DefaultPomodoroConfig())
}

type sessionSchema struct {
	ID              string  `json:"id"`
	TodoID          *string `json:"todoId"`
	StartAt         string  `json:"startAt"`
	EndAt           *string `json:"endAt"`
	DurationMinutes *int    `json:"durationMinutes"`
	Type            string  `json:"type"`
	Completed       bool    `json:"completed"`
}

func (s *sessionSchema) applyDefaults() {
	if s.Type == "" {
		s.Type = string(domain.SessionFocus)
	}
}

type hotkeySchema struct {
	ToggleFloating    *string `json:"toggleFloating"`
	StartOrPauseTimer *string `json:"startOrPauseTimer"`
}

type geometrySchema struct {
	X      *int `json:"x"`
	Y      *int `json:"y"`
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

type windowStateSchema struct {
	Main     geometrySchema `json:"main"`
	Floating geometrySchema `json:"floating"`
}

type settingsSchema struct {
	Theme                   string            `json:"theme"`
	FollowSystemTheme       bool              `json:"followSystemTheme"`
	AlwaysOnTop             bool              `json:"alwaysOnTop"`
	SnapEdge                bool              `json:"snapEdge"`
	FloatingOpacity         float64           `json:"floatingOpacity"`
	ShowCompletedInFloating bool              `json:"showCompletedInFloating"`
	Hotkeys                 hotkeySchema      `json:"hotkeys"`
	WindowState             windowStateSchema `json:"windowState"`
}

func defaultSettingsSchema() settingsSchema {
	return toSettingsSchema(domain.DefaultSettings())
}

func (s *settingsSchema) applyDefaults() {
	if s.Theme == "" {
		s.Theme = string(domain.ThemeMac)
	}
}

func toTodoSchema(todo domain.Todo) todoSchema {
	// Tags are always written as an array, so nil tags read back as [].
	tags := make([]string, 0, len(todo.Tags))
	tags = append(tags, todo.Tags...)

	return todoSchema{
		ID:          string(todo.ID),
		Title:       todo.Title,
		Detail:      todo.Detail,
		Priority:    string(todo.Priority),
		Tags:        tags,
		PlannedAt:   formatOptionalTime(todo.PlannedAt),
		DueAt:       formatOptionalTime(todo.DueAt),
		Completed:   todo.Completed,
		CompletedAt: formatOptionalTime(todo.CompletedAt),
		CreatedAt:   formatTime(todo.CreatedAt),
		UpdatedAt:   formatTime(todo.UpdatedAt),
	}
}

func fromTodoSchema(schema todoSchema) (domain.Todo, error) {
	schema.applyDefaults()

	priority := domain.TodoPriority(schema.Priority)
	if !priority.Valid() {
		return domain.Todo{}, fmt.Errorf("todo %s: unknown priority %q", schema.ID, schema.Priority)
	}

	plannedAt, err := parseOptionalTime("plannedAt", schema.PlannedAt)
	if err != nil {
		return domain.Todo{}, err
	}
	dueAt, err := parseOptionalTime("dueAt", schema.DueAt)
	if err != nil {
		return domain.Todo{}, err
	}
	completedAt, err := parseOptionalTime("completedAt", schema.CompletedAt)
	if err != nil {
		return domain.Todo{}, err
	}
	createdAt, err := parseTime("createdAt", schema.CreatedAt)
	if err != nil {
		return domain.Todo{}, err
	}
	updatedAt, err := parseTime("updatedAt", schema.UpdatedAt)
	if err != nil {
		return domain.Todo{}, err
	}

	return domain.Todo{
		ID:          domain.TodoID(schema.ID),
		Title:       schema.Title,
		Detail:      schema.Detail,
		Priority:    priority,
		Tags:        schema.Tags,
		PlannedAt:   plannedAt,
		DueAt:       dueAt,
		Completed:   schema.Completed,
		CompletedAt: completedAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func toPomodoroConfigSchema(config domain.PomodoroConfig) pomodoroConfigSchema {
	return pomodoroConfigSchema{
		FocusMinutes:      config.FocusMinutes,
		ShortBreakMinutes: config.ShortBreakMinutes,
		LongBreakMinutes:  config.LongBreakMinutes,
		LongBreakInterval: config.LongBreakInterval,
		AutoStartNext:     config.AutoStartNext,
	}
}

func fromPomodoroConfigSchema(schema pomodoroConfigSchema) domain.PomodoroConfig {
	return domain.PomodoroConfig{
		FocusMinutes:      schema.FocusMinutes,
		ShortBreakMinutes: schema.ShortBreakMinutes,
		LongBreakMinutes:  schema.LongBreakMinutes,
		LongBreakInterval: schema.LongBreakInterval,
		AutoStartNext:     schema.AutoStartNext,
	}
}

func toSessionSchema(session domain.Session) sessionSchema {
	var todoID *string
	if session.TodoID != nil {
		value := string(*session.TodoID)
		todoID = &value
	}

	return sessionSchema{
		ID:              string(session.ID),
		TodoID:          todoID,
		StartAt:         formatTime(session.StartAt),
		EndAt:           formatOptionalTime(session.EndAt),
		DurationMinutes: session.DurationMinutes,
		Type:            string(session.Kind),
		Completed:       session.Completed,
	}
}

func fromSessionSchema(schema sessionSchema) (domain.Session, error) {
	schema.applyDefaults()

	kind := domain.SessionKind(schema.Type)
	if !kind.Valid() {
		return domain.Session{}, fmt.Errorf("session %s: unknown type %q", schema.ID, schema.Type)
	}

	startAt, err := parseTime("startAt", schema.StartAt)
	if err != nil {
		return domain.Session{}, err
	}
	endAt, err := parseOptionalTime("endAt", schema.EndAt)
	if err != nil {
		return domain.Session{}, err
	}
	if schema.DurationMinutes != nil && *schema.DurationMinutes < 0 {
		return domain.Session{}, fmt.Errorf("session %s: durationMinutes is negative", schema.ID)
	}

	var todoID *domain.TodoID
	if schema.TodoID != nil {
		value := domain.TodoID(*schema.TodoID)
		todoID = &value
	}

	return domain.Session{
		ID:              domain.SessionID(schema.ID),
		TodoID:          todoID,
		StartAt:         startAt,
		EndAt:           endAt,
		DurationMinutes: schema.DurationMinutes,
		Kind:            kind,
		Completed:       schema.Completed,
	}, nil
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

func fromSettingsSchema(schema settingsSchema) (domain.Settings, error) {
	schema.applyDefaults()

	theme := domain.Theme(schema.Theme)
	if !theme.Valid() {
		return domain.Settings{}, fmt.Errorf("unknown theme %q", schema.Theme)
	}

	mainWindow, err := fromGeometrySchema("main", schema.WindowState.Main)
	if err != nil {
		return domain.Settings{}, err
	}
	floating, err := fromGeometrySchema("floating", schema.WindowState.Floating)
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		Theme:                   theme,
		FollowSystemTheme:       schema.FollowSystemTheme,
		AlwaysOnTop:             schema.AlwaysOnTop,
		SnapEdge:                schema.SnapEdge,
		FloatingOpacity:         schema.FloatingOpacity,
		ShowCompletedInFloating: schema.ShowCompletedInFloating,
		Hotkeys: domain.HotkeySetting{
			ToggleFloating:    schema.Hotkeys.ToggleFloating,
			StartOrPauseTimer: schema.Hotkeys.StartOrPauseTimer,
		},
		WindowState: domain.WindowState{
			Main:     mainWindow,
			Floating: floating,
		},
	}, nil
}

func toGeometrySchema(geometry domain.WindowGeometry) geometrySchema {
	return geometrySchema{X: geometry.X, Y: geometry.Y, Width: geometry.Width, Height: geometry.Height}
}

// fromGeometrySchema rejects negative sizes. Coordinates may be negative on
// multi-monitor layouts.
func fromGeometrySchema(label string, schema geometrySchema) (domain.WindowGeometry, error) {
	if schema.Width != nil && *schema.Width < 0 {
		return domain.WindowGeometry{}, fmt.Errorf("window %s: width is negative", label)
	}
	if schema.Height != nil && *schema.Height < 0 {
		return domain.WindowGeometry{}, fmt.Errorf("window %s: height is negative", label)
	}

	return domain.WindowGeometry{X: schema.X, Y: schema.Y, Width: schema.Width, Height: schema.Height}, nil
}

func parseTime(field, raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}

	return parsed, nil
}

func parseOptionalTime(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := parseTime(field, *raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func formatTime(value time.Time) string {
	return value.Format(timeLayout)
}

func formatOptionalTime(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := formatTime(*value)
	return &formatted
}
