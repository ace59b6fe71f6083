package domain

type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeMac    Theme = "mac"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark, ThemeMac:
		return true
	default:
		return false
	}
}

const DefaultFloatingOpacity = 0.95

type HotkeySetting struct {
	ToggleFloating    *string
	StartOrPauseTimer *string
}

type WindowState struct {
	Main     WindowGeometry
	Floating WindowGeometry
}

type Settings struct {
	Theme                   Theme
	FollowSystemTheme       bool
	AlwaysOnTop             bool
	SnapEdge                bool
	FloatingOpacity         float64
	ShowCompletedInFloating bool
	Hotkeys                 HotkeySetting
	WindowState             WindowState
}

func DefaultSettings() Settings {
	return Settings{
		Theme:             ThemeMac,
		FollowSystemTheme: true,
		AlwaysOnTop:       true,
		SnapEdge:          true,
		FloatingOpacity:   DefaultFloatingOpacity,
	}
}

func (s Settings) Geometry(label WindowLabel) (WindowGeometry, bool) {
	switch label {
	case WindowMain:
		return s.WindowState.Main, true
	case WindowFloating:
		return s.WindowState.Floating, true
	default:
		return WindowGeometry{}, false
	}
}

func (s *Settings) SetGeometry(label WindowLabel, geometry WindowGeometry) bool {
	switch label {
	case WindowMain:
		s.WindowState.Main = geometry
	case WindowFloating:
		s.WindowState.Floating = geometry
	default:
		return false
	}

	return true
}
