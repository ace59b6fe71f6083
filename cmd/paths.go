package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the data and backup directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "root\t%s\n", app.paths.Root)
			_, _ = fmt.Fprintf(out, "data\t%s\n", app.paths.DataDir)
			_, err := fmt.Fprintf(out, "backups\t%s\n", app.paths.BackupDir)
			return err
		},
	}
}
