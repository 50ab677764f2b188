package cli

import (
	"fmt"
	"time"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command. Creating a task requires an active
// session, so the credentials are verified first.
func (c *AddCommand) Execute(args []string, mail, password, startArg, endArg string) error {
	if err := c.app.Authenticate(mail, password); err != nil {
		return err
	}

	title := args[0]
	description := args[1]

	startDate := time.Now()
	if startArg != "" {
		parsed, err := parseDate(startArg)
		if err != nil {
			return err
		}
		startDate = parsed
	}

	var endDate *time.Time
	if endArg != "" {
		parsed, err := parseDate(endArg)
		if err != nil {
			return err
		}
		endDate = &parsed
	}

	if !c.app.creator.Create(&title, &description, startDate, endDate) {
		return fmt.Errorf("could not save the task: title and description must not be empty")
	}

	c.app.printf("Added task: %s\n", title)
	return nil
}
