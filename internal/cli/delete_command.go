package cli

// DeleteCommand handles the rm command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the rm command. The position is validated here because
// DeleteAt trusts its caller. Deletion is immediate and irreversible.
func (c *DeleteCommand) Execute(args []string) error {
	if err := c.app.list.Refresh(); err != nil {
		return err
	}

	position, err := parsePosition(args[0], c.app.list.Count())
	if err != nil {
		return err
	}

	task, _ := c.app.list.TaskAt(position)
	if err := c.app.list.DeleteAt(position); err != nil {
		return err
	}

	c.app.printf("Deleted task: %s\n", task.Title)
	return nil
}
