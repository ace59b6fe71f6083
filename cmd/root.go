package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pd",
		Short:         "pomodesk (pd): todos, pomodoro sessions and desk settings",
		Long:          "pd (pomodesk) keeps a todo list, pomodoro timer configuration, a focus session log and window settings as JSON documents in your application data directory.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newTodoCmd(app),
		newPomodoroCmd(app),
		newSessionCmd(app),
		newSettingsCmd(app),
		newWindowCmd(app),
		newExportCmd(app),
		newBackupCmd(app),
		newPathsCmd(app),
	)

	return rootCmd
}
