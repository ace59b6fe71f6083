package cmd

import (
	"fmt"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/spf13/cobra"
)

func newWindowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Remember and restore window geometry",
	}

	cmd.AddCommand(
		newWindowRecordCmd(app),
		newWindowShowCmd(app),
	)

	return cmd
}

func newWindowRecordCmd(app *app) *cobra.Command {
	var x, y, width, height int

	cmd := &cobra.Command{
		Use:       "record <main|floating>",
		Short:     "Store the last known geometry of a window",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.WindowMain), string(domain.WindowFloating)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var geometry domain.WindowGeometry
			flags := cmd.Flags()
			if flags.Changed("x") {
				geometry.X = &x
			}
			if flags.Changed("y") {
				geometry.Y = &y
			}
			if flags.Changed("width") {
				geometry.Width = &width
			}
			if flags.Changed("height") {
				geometry.Height = &height
			}

			label := domain.WindowLabel(args[0])
			if _, err := app.settings.RecordWindowGeometry(cmd.Context(), label, geometry); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "recorded %s\n", label)
			return err
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "Left edge in screen pixels")
	cmd.Flags().IntVar(&y, "y", 0, "Top edge in screen pixels")
	cmd.Flags().IntVar(&width, "width", 0, "Width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Height in pixels")

	return cmd
}

func newWindowShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "show <main|floating>",
		Short:     "Show how a window would be placed at startup",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.WindowMain), string(domain.WindowFloating)},
		RunE: func(cmd *cobra.Command, args []string) error {
			placement, err := app.settings.RestoreGeometry(cmd.Context(), domain.WindowLabel(args[0]))
			if err != nil {
				return err
			}

			position := "centered"
			if !placement.Centered {
				position = fmt.Sprintf("at %d,%d", *placement.X, *placement.Y)
			}

			size := "default size"
			if placement.Width != nil && placement.Height != nil {
				size = fmt.Sprintf("%dx%d", *placement.Width, *placement.Height)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", placement.Label, position, size)
			return err
		},
	}
}
