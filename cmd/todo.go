package cmd

import (
	"fmt"

	listingadapter "github.com/bnema/pomodesk/internal/adapters/render/listing"
	"github.com/bnema/pomodesk/internal/application"
	"github.com/bnema/pomodesk/internal/domain"
	"github.com/spf13/cobra"
)

func newTodoCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}

	cmd.AddCommand(
		newTodoListCmd(app),
		newTodoAddCmd(app),
		newTodoEditCmd(app),
		newTodoRemoveCmd(app),
		newTodoToggleCmd(app, "done", "Mark a todo as completed", true),
		newTodoToggleCmd(app, "undone", "Mark a todo as not completed", false),
	)

	return cmd
}

func newTodoListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			todos, err := app.todos.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, todos)
			}

			rendered, err := app.todoRenderer(todos, listingadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render todos: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print todos as JSON")

	return cmd
}

func newTodoAddCmd(app *app) *cobra.Command {
	var (
		detail    string
		priority  string
		tags      []string
		plannedAt string
		dueAt     string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := app.todos.Create(cmd.Context(), application.CreateTodoCommand{
				Title:     args[0],
				Detail:    optionalString(detail),
				Priority:  domain.TodoPriority(priority),
				Tags:      tags,
				PlannedAt: optionalString(plannedAt),
				DueAt:     optionalString(dueAt),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", todo.ID, todo.Title)
			return err
		},
	}

	cmd.Flags().StringVar(&detail, "detail", "", "Longer description")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority: low, medium or high")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&plannedAt, "planned", "", "Planned start (RFC 3339)")
	cmd.Flags().StringVar(&dueAt, "due", "", "Due time (RFC 3339)")

	return cmd
}

func newTodoEditCmd(app *app) *cobra.Command {
	var (
		title     string
		detail    string
		priority  string
		tags      []string
		plannedAt string
		dueAt     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an existing todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todos, err := app.todos.List(cmd.Context())
			if err != nil {
				return err
			}

			id := domain.TodoID(args[0])
			idx, ok := domain.FindTodo(todos, id)
			if !ok {
				return fmt.Errorf("edit todo %q: %w", id, domain.ErrTodoNotFound)
			}
			todo := todos[idx]

			flags := cmd.Flags()
			if flags.Changed("title") {
				todo.Title = title
			}
			if flags.Changed("detail") {
				todo.Detail = optionalString(detail)
			}
			if flags.Changed("priority") {
				todo.Priority = domain.TodoPriority(priority)
			}
			if flags.Changed("tag") {
				todo.Tags = tags
			}
			if flags.Changed("planned") {
				if todo.PlannedAt, err = parseTimeFlag("plannedAt", plannedAt); err != nil {
					return err
				}
			}
			if flags.Changed("due") {
				if todo.DueAt, err = parseTimeFlag("dueAt", dueAt); err != nil {
					return err
				}
			}

			updated, err := app.todos.Update(cmd.Context(), todo)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", updated.ID, updated.Title)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&detail, "detail", "", "New description (empty clears)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (repeatable)")
	cmd.Flags().StringVar(&plannedAt, "planned", "", "Planned start (RFC 3339, empty clears)")
	cmd.Flags().StringVar(&dueAt, "due", "", "Due time (RFC 3339, empty clears)")

	return cmd
}

func newTodoRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.todos.Delete(cmd.Context(), domain.TodoID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}
}

func newTodoToggleCmd(app *app, use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := app.todos.ToggleComplete(cmd.Context(), domain.TodoID(args[0]), completed)
			if err != nil {
				return err
			}

			state := "open"
			if todo.Completed {
				state = "completed"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", todo.ID, todo.Title, state)
			return err
		},
	}
}
