package cli

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(args []string) error {
	if err := c.app.list.Refresh(); err != nil {
		return err
	}

	if c.app.list.Count() == 0 {
		c.app.printf("No tasks.\n")
		return nil
	}

	for i := 0; i < c.app.list.Count(); i++ {
		task, ok := c.app.list.TaskAt(i)
		if !ok {
			break
		}

		status := " "
		if task.IsCompleted {
			status = "x"
		}

		end := "-"
		if task.EndDate != nil {
			end = c.app.formatTime(*task.EndDate)
		}

		c.app.printf("%d. [%s] %s: %s (start: %s, end: %s, owner: %s)\n",
			i+1, status, task.Title, task.Description,
			c.app.formatTime(task.StartDate), end, task.Owner.Mail)
	}

	return nil
}
