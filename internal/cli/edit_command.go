package cli

import (
	"fmt"

	"todoapp/internal/services"
)

// EditFields carries the edit form input. Nil fields were not supplied
// on the command line and default to the task's current values, like a
// prefilled form.
type EditFields struct {
	Title       *string
	Description *string
	StartDate   *string
	EndDate     *string
}

// EditCommand handles the edit command
type EditCommand struct {
	app *App
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute runs the edit command. The editor is bound to the task at the
// given position and reports a discriminated result; failure reasons
// are surfaced as the command error.
func (c *EditCommand) Execute(args []string, fields EditFields) error {
	if err := c.app.list.Refresh(); err != nil {
		return err
	}

	position, err := parsePosition(args[0], c.app.list.Count())
	if err != nil {
		return err
	}

	task, _ := c.app.list.TaskAt(position)
	editor := services.NewTaskEditor(c.app.store, task)
	editor.SetListener(c.app.list)

	// Prefill unsupplied fields from the task snapshot.
	title := task.Title
	if fields.Title != nil {
		title = *fields.Title
	}
	description := task.Description
	if fields.Description != nil {
		description = *fields.Description
	}

	startDate := task.StartDate
	if fields.StartDate != nil {
		parsed, err := parseDate(*fields.StartDate)
		if err != nil {
			return err
		}
		startDate = parsed
	}

	endDate := task.EndDate
	if fields.EndDate != nil {
		parsed, err := parseDate(*fields.EndDate)
		if err != nil {
			return err
		}
		endDate = &parsed
	}

	result := editor.Update(&title, &description, startDate, endDate)
	if !result.Succeeded() {
		return fmt.Errorf("%s", result.Reason)
	}

	c.app.printf("Updated task: %s\n", title)
	return nil
}
