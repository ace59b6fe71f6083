package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// Location is where timestamps are shown. Nil keeps each timestamp's own offset.
	Location *time.Location
}

const timeLayout = "2006-01-02 15:04"

func renderTodos(todos []domain.Todo, opts RenderOptions, s styles) string {
	open := 0
	for _, todo := range todos {
		if !todo.Completed {
			open++
		}
	}

	lines := []string{
		s.title.Render("Todos"),
		s.header.Render(fmt.Sprintf("total: %d  open: %d", len(todos), open)),
	}

	if len(todos) == 0 {
		lines = append(lines, s.empty.Render("No todos yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, todo := range todos {
		lines = append(lines, renderTodo(todo, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTodo(todo domain.Todo, opts RenderOptions, s styles) string {
	mark := "[ ]"
	title := s.item.Render(todo.Title)
	if todo.Completed {
		mark = "[x]"
		title = s.done.Render(todo.Title)
	}

	priority := string(todo.Priority)
	priorityStyle, ok := s.priority[priority]
	if !ok {
		priorityStyle = s.detail
	}

	head := lipgloss.JoinHorizontal(
		lipgloss.Top,
		mark,
		" ",
		title,
		" ",
		priorityStyle.Render("("+priority+")"),
		" ",
		s.header.Render(string(todo.ID)),
	)

	parts := []string{head}
	if todo.Detail != nil && strings.TrimSpace(*todo.Detail) != "" {
		parts = append(parts, "    "+s.detail.Render(*todo.Detail))
	}
	if len(todo.Tags) > 0 {
		parts = append(parts, "    "+s.key.Render("tags: ")+s.detail.Render(strings.Join(todo.Tags, ", ")))
	}
	if todo.PlannedAt != nil {
		parts = append(parts, "    "+s.key.Render("planned: ")+s.detail.Render(formatTime(*todo.PlannedAt, opts)))
	}
	if todo.DueAt != nil {
		due := s.detail.Render(formatTime(*todo.DueAt, opts))
		if !todo.Completed && !opts.Now.IsZero() && todo.DueAt.Before(opts.Now) {
			due += " " + s.overdue.Render("[overdue]")
		}
		parts = append(parts, "    "+s.key.Render("due: ")+due)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSessions(sessions []domain.Session, opts RenderOptions, s styles) string {
	focusMinutes := 0
	for _, session := range sessions {
		if session.Kind == domain.SessionFocus && session.DurationMinutes != nil {
			focusMinutes += *session.DurationMinutes
		}
	}

	lines := []string{
		s.title.Render("Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d  focus: %s", len(sessions), formatMinutes(focusMinutes))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No sessions recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range sessions {
		lines = append(lines, renderSession(session, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(session domain.Session, opts RenderOptions, s styles) string {
	kindStyle := s.kindBreak
	if session.Kind == domain.SessionFocus {
		kindStyle = s.kindFocus
	}

	duration := "open"
	if session.DurationMinutes != nil {
		duration = formatMinutes(*session.DurationMinutes)
	}

	status := ""
	if session.Completed {
		status = " " + s.value.Render("done")
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render(formatTime(session.StartAt, opts)),
		" ",
		kindStyle.Render(fmt.Sprintf("%-10s", session.Kind)),
		" ",
		s.value.Render(duration),
	) + status

	if session.TodoID != nil {
		line += " " + s.header.Render("todo "+string(*session.TodoID))
	}

	return line
}

func renderSettings(settings domain.Settings, config domain.PomodoroConfig, s styles) string {
	lines := []string{s.title.Render("Pomodoro")}
	lines = append(lines,
		keyValue(s, "focus", formatMinutes(config.FocusMinutes)),
		keyValue(s, "short break", formatMinutes(config.ShortBreakMinutes)),
		keyValue(s, "long break", formatMinutes(config.LongBreakMinutes)),
		keyValue(s, "long break every", fmt.Sprintf("%d sessions", config.LongBreakInterval)),
		keyValue(s, "auto start next", onOff(config.AutoStartNext)),
	)

	lines = append(lines, "", s.title.Render("Settings"))
	lines = append(lines,
		keyValue(s, "theme", string(settings.Theme)),
		keyValue(s, "follow system theme", onOff(settings.FollowSystemTheme)),
		keyValue(s, "always on top", onOff(settings.AlwaysOnTop)),
		keyValue(s, "snap edge", onOff(settings.SnapEdge)),
		keyValue(s, "floating opacity", fmt.Sprintf("%.2f", settings.FloatingOpacity)),
		keyValue(s, "show completed in floating", onOff(settings.ShowCompletedInFloating)),
		keyValue(s, "toggle floating hotkey", optional(settings.Hotkeys.ToggleFloating)),
		keyValue(s, "start/pause hotkey", optional(settings.Hotkeys.StartOrPauseTimer)),
		keyValue(s, "main window", formatGeometry(settings.WindowState.Main)),
		keyValue(s, "floating window", formatGeometry(settings.WindowState.Floating)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyValue(s styles, key, value string) string {
	return s.key.Render(key+": ") + s.value.Render(value)
}

func formatTime(t time.Time, opts RenderOptions) string {
	if opts.Location != nil {
		t = t.In(opts.Location)
	}
	return t.Format(timeLayout)
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

func formatGeometry(g domain.WindowGeometry) string {
	if g.IsZero() {
		return "not recorded"
	}

	parts := make([]string, 0, 2)
	if g.X != nil && g.Y != nil {
		parts = append(parts, fmt.Sprintf("at %d,%d", *g.X, *g.Y))
	}
	if g.Width != nil && g.Height != nil {
		parts = append(parts, fmt.Sprintf("%dx%d", *g.Width, *g.Height))
	}
	if len(parts) == 0 {
		return "partial"
	}

	return strings.Join(parts, " ")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func optional(v *string) string {
	if v == nil || *v == "" {
		return "unset"
	}
	return *v
}
