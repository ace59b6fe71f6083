package cmd

import (
	"fmt"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show application settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, settings)
			}

			config, err := app.pomodoro.GetConfig(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.settingsRenderer(settings, config)
			if err != nil {
				return fmt.Errorf("render settings: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print settings as JSON")
	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var (
		theme             string
		followSystemTheme bool
		alwaysOnTop       bool
		snapEdge          bool
		opacity           float64
		showCompleted     bool
		toggleFloating    string
		startOrPause      string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change application settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("theme") {
				settings.Theme = domain.Theme(theme)
			}
			if flags.Changed("follow-system-theme") {
				settings.FollowSystemTheme = followSystemTheme
			}
			if flags.Changed("always-on-top") {
				settings.AlwaysOnTop = alwaysOnTop
			}
			if flags.Changed("snap-edge") {
				settings.SnapEdge = snapEdge
			}
			if flags.Changed("opacity") {
				settings.FloatingOpacity = opacity
			}
			if flags.Changed("show-completed") {
				settings.ShowCompletedInFloating = showCompleted
			}
			if flags.Changed("hotkey-toggle-floating") {
				settings.Hotkeys.ToggleFloating = optionalString(toggleFloating)
			}
			if flags.Changed("hotkey-start-pause") {
				settings.Hotkeys.StartOrPauseTimer = optionalString(startOrPause)
			}

			if _, err := app.settings.Save(cmd.Context(), settings); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "settings saved")
			return err
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme: system, light, dark or mac")
	cmd.Flags().BoolVar(&followSystemTheme, "follow-system-theme", true, "Follow the OS light/dark preference")
	cmd.Flags().BoolVar(&alwaysOnTop, "always-on-top", true, "Keep the floating window above others")
	cmd.Flags().BoolVar(&snapEdge, "snap-edge", true, "Snap the floating window to screen edges")
	cmd.Flags().Float64Var(&opacity, "opacity", domain.DefaultFloatingOpacity, "Floating window opacity between 0 and 1")
	cmd.Flags().BoolVar(&showCompleted, "show-completed", false, "Show completed todos in the floating window")
	cmd.Flags().StringVar(&toggleFloating, "hotkey-toggle-floating", "", "Accelerator that toggles the floating window (empty clears)")
	cmd.Flags().StringVar(&startOrPause, "hotkey-start-pause", "", "Accelerator that starts or pauses the timer (empty clears)")

	return cmd
}
