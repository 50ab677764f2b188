// Package cli is the presentation collaborator for the task flows: a
// thin cobra-based front end that owns no task state of its own.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"todoapp/internal/config"
	"todoapp/internal/directory"
	"todoapp/internal/errors"
	"todoapp/internal/services"
	"todoapp/internal/session"
	"todoapp/internal/store"
)

// App bundles the flows and their shared dependencies for the command
// handlers.
type App struct {
	config    *config.Config
	store     store.TaskStore
	directory *directory.UserDirectory
	session   *session.Manager

	auth    *services.AuthService
	list    *services.TaskListService
	creator *services.TaskCreator

	out io.Writer
}

// NewApp wires the flows over the given store and user directory.
func NewApp(cfg *config.Config, taskStore store.TaskStore, dir *directory.UserDirectory, out io.Writer) *App {
	sess := session.NewManager()
	return &App{
		config:    cfg,
		store:     taskStore,
		directory: dir,
		session:   sess,
		auth:      services.NewAuthService(dir, sess),
		list:      services.NewTaskListService(taskStore),
		creator:   services.NewTaskCreator(taskStore, sess),
		out:       out,
	}
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}

// Authenticate runs the login flow with the given credentials and
// reports an error when they do not resolve to a user.
func (a *App) Authenticate(mail, password string) error {
	if user := a.auth.Attempt(&mail, &password); user == nil {
		return fmt.Errorf("login failed: check --mail and --password")
	}
	return nil
}

// printf writes formatted output for the command handlers.
func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// formatTime renders a timestamp using the configured display format.
func (a *App) formatTime(t time.Time) string {
	return t.Format(a.config.Display.TimeFormat)
}

// parsePosition parses a 1-based list position argument and converts it
// to a 0-based snapshot position, validating it against the snapshot size.
func parsePosition(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewInvalidInputError("position", arg, "must be a number")
	}
	if n < 1 || n > count {
		return 0, errors.NewInvalidInputError("position", arg, fmt.Sprintf("must be between 1 and %d", count))
	}
	return n - 1, nil
}

// parseDate parses a date argument as either a plain date or a full
// RFC3339 timestamp.
func parseDate(arg string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", arg); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, arg)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", arg, "expected YYYY-MM-DD or RFC3339")
	}
	return t, nil
}
