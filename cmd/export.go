package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bnema/pomodesk/internal/adapters/export"
	"github.com/bnema/pomodesk/internal/ports"
	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every document as a single JSON or TOML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			snapshot, err := export.Collect(cmd.Context(), app.store, ports.SystemClock{})
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), snapshot, parsed)
			}

			var buf bytes.Buffer
			if err := export.Write(&buf, snapshot, parsed); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatJSON), "Output format: json or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
