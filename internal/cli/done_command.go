package cli

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute runs the done command, toggling the completion flag of the
// task at the given list position.
func (c *DoneCommand) Execute(args []string) error {
	if err := c.app.list.Refresh(); err != nil {
		return err
	}

	position, err := parsePosition(args[0], c.app.list.Count())
	if err != nil {
		return err
	}

	if err := c.app.list.ToggleCompletionAt(position); err != nil {
		return err
	}

	task, _ := c.app.list.TaskAt(position)
	if task.IsCompleted {
		c.app.printf("Completed task: %s\n", task.Title)
	} else {
		c.app.printf("Reopened task: %s\n", task.Title)
	}
	return nil
}
