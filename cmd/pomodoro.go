package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPomodoroCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Manage the pomodoro timer configuration",
	}

	cmd.AddCommand(newPomodoroConfigCmd(app))

	return cmd
}

func newPomodoroConfigCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the pomodoro timer configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := app.pomodoro.GetConfig(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, config)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "focus\t%d\n", config.FocusMinutes)
			_, _ = fmt.Fprintf(out, "short-break\t%d\n", config.ShortBreakMinutes)
			_, _ = fmt.Fprintf(out, "long-break\t%d\n", config.LongBreakMinutes)
			_, _ = fmt.Fprintf(out, "interval\t%d\n", config.LongBreakInterval)
			_, err = fmt.Fprintf(out, "auto-start\t%t\n", config.AutoStartNext)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the configuration as JSON")
	cmd.AddCommand(newPomodoroConfigSetCmd(app))

	return cmd
}

func newPomodoroConfigSetCmd(app *app) *cobra.Command {
	var (
		focus      int
		shortBreak int
		longBreak  int
		interval   int
		autoStart  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change pomodoro durations (minutes) and behaviour",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := app.pomodoro.GetConfig(cmd.Context())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("focus") {
				config.FocusMinutes = focus
			}
			if flags.Changed("short-break") {
				config.ShortBreakMinutes = shortBreak
			}
			if flags.Changed("long-break") {
				config.LongBreakMinutes = longBreak
			}
			if flags.Changed("interval") {
				config.LongBreakInterval = interval
			}
			if flags.Changed("auto-start") {
				config.AutoStartNext = autoStart
			}

			saved, err := app.pomodoro.SaveConfig(cmd.Context(), config)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved: focus=%d short-break=%d long-break=%d interval=%d auto-start=%t\n",
				saved.FocusMinutes, saved.ShortBreakMinutes, saved.LongBreakMinutes, saved.LongBreakInterval, saved.AutoStartNext)
			return err
		},
	}

	cmd.Flags().IntVar(&focus, "focus", 0, "Focus block length in minutes")
	cmd.Flags().IntVar(&shortBreak, "short-break", 0, "Short break length in minutes")
	cmd.Flags().IntVar(&longBreak, "long-break", 0, "Long break length in minutes")
	cmd.Flags().IntVar(&interval, "interval", 0, "Focus blocks before a long break")
	cmd.Flags().BoolVar(&autoStart, "auto-start", false, "Start the next block automatically")

	return cmd
}
