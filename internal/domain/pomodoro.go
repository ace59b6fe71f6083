package domain

import "time"

type SessionID string
type SessionKind string

const (
	SessionFocus      SessionKind = "focus"
	SessionShortBreak SessionKind = "shortBreak"
	SessionLongBreak  SessionKind = "longBreak"
)

func (k SessionKind) Valid() bool {
	switch k {
	case SessionFocus, SessionShortBreak, SessionLongBreak:
		return true
	default:
		return false
	}
}

// MaxFocusMinutes caps a focus block. It must match the lte rule on
// PomodoroConfig.FocusMinutes, since struct tags cannot reference constants.
const MaxFocusMinutes = 180

type PomodoroConfig struct {
	FocusMinutes      int  `json:"focusMinutes" validate:"gt=0,lte=180"`
	ShortBreakMinutes int  `json:"shortBreakMinutes" validate:"gt=0"`
	LongBreakMinutes  int  `json:"longBreakMinutes" validate:"gt=0"`
	LongBreakInterval int  `json:"longBreakInterval" validate:"gt=0"`
	AutoStartNext     bool `json:"autoStartNext"`
}

func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
		AutoStartNext:     false,
	}
}

type Session struct {
	ID              SessionID
	TodoID          *TodoID
	StartAt         time.Time
	EndAt           *time.Time
	DurationMinutes *int
	Kind            SessionKind
	Completed       bool
}

// OnDate reports whether the session started on the given calendar day, read
// in the offset the start timestamp was recorded with.
func (s Session) OnDate(year int, month time.Month, day int) bool {
	y, m, d := s.StartAt.Date()
	return y == year && m == month && d == day
}

// WholeMinutes truncates d to whole minutes, clamping negative spans to zero.
func WholeMinutes(d time.Duration) int {
	mins := int(d / time.Minute)
	if mins <= 0 {
		return 0
	}
	return mins
}
