package cmd

import (
	"fmt"

	listingadapter "github.com/bnema/pomodesk/internal/adapters/render/listing"
	"github.com/bnema/pomodesk/internal/application"
	"github.com/bnema/pomodesk/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and list pomodoro sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *app) *cobra.Command {
	var (
		startAt   string
		endAt     string
		duration  int
		kind      string
		todoID    string
		completed bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a session to the log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := application.AppendSessionCommand{
				TodoID:    optionalString(todoID),
				StartAt:   startAt,
				EndAt:     optionalString(endAt),
				Kind:      domain.SessionKind(kind),
				Completed: completed,
			}
			if cmd.Flags().Changed("duration") {
				draft.DurationMinutes = &duration
			}

			session, err := app.pomodoro.AppendSession(cmd.Context(), draft)
			if err != nil {
				return err
			}

			minutes := "-"
			if session.DurationMinutes != nil {
				minutes = fmt.Sprintf("%d", *session.DurationMinutes)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", session.ID, session.Kind, minutes)
			return err
		},
	}

	cmd.Flags().StringVar(&startAt, "start", "", "Session start (RFC 3339)")
	cmd.Flags().StringVar(&endAt, "end", "", "Session end (RFC 3339)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes; derived from --start/--end when omitted")
	cmd.Flags().StringVar(&kind, "type", string(domain.SessionFocus), "Session type: focus, shortBreak or longBreak")
	cmd.Flags().StringVar(&todoID, "todo", "", "Todo the session was spent on")
	cmd.Flags().BoolVar(&completed, "completed", false, "Mark the session as completed")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newSessionListCmd(app *app) *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, optionally only those started on one day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := app.pomodoro.ListSessions(cmd.Context(), date)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, sessions)
			}

			rendered, err := app.sessionRenderer(sessions, listingadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render sessions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only sessions started on this day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sessions as JSON")

	return cmd
}
