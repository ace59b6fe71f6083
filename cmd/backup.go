package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Inspect daily document backups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List backups, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.store.Archive().List(cmd.Context())
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no backups yet")
				return err
			}

			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", entry.Day, entry.Document, entry.Name, entry.Size)
			}

			return nil
		},
	})

	return cmd
}
