package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/config"
	"todoapp/internal/directory"
	"todoapp/internal/domain"
	"todoapp/internal/store"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.NewConfig()
	taskStore := store.NewMemoryStore()
	dir := directory.New([]domain.User{
		{ID: 0, Mail: "demo@example.com", Password: "1234"},
	})

	out := &bytes.Buffer{}
	app := NewApp(cfg, taskStore, dir, out)
	t.Cleanup(func() { app.Close() })
	return app, out
}

func addTask(t *testing.T, app *App, title, description string) {
	t.Helper()
	err := NewAddCommand(app).Execute([]string{title, description}, "demo@example.com", "1234", "", "")
	require.NoError(t, err)
}

func TestListCommand_Empty(t *testing.T) {
	app, out := newTestApp(t)

	err := NewListCommand(app).Execute(nil)

	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", out.String())
}

func TestAddCommand(t *testing.T) {
	// Arrange
	app, out := newTestApp(t)

	// Act
	addTask(t, app, "Buy milk", "2%")
	out.Reset()
	err := NewListCommand(app).Execute(nil)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. [ ] Buy milk: 2%")
	assert.Contains(t, out.String(), "owner: demo@example.com")
}

func TestAddCommand_WrongCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	err := NewAddCommand(app).Execute([]string{"Buy milk", "2%"}, "demo@example.com", "wrong", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestAddCommand_EmptyTitle(t *testing.T) {
	app, _ := newTestApp(t)

	err := NewAddCommand(app).Execute([]string{"", "2%"}, "demo@example.com", "1234", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not save the task")
}

func TestDoneCommand_TogglesBothWays(t *testing.T) {
	// Arrange
	app, out := newTestApp(t)
	addTask(t, app, "Buy milk", "2%")

	// Act + Assert
	out.Reset()
	require.NoError(t, NewDoneCommand(app).Execute([]string{"1"}))
	assert.Equal(t, "Completed task: Buy milk\n", out.String())

	out.Reset()
	require.NoError(t, NewDoneCommand(app).Execute([]string{"1"}))
	assert.Equal(t, "Reopened task: Buy milk\n", out.String())
}

func TestDeleteCommand(t *testing.T) {
	// Arrange
	app, out := newTestApp(t)
	addTask(t, app, "Buy milk", "2%")
	addTask(t, app, "Clean up", "the kitchen")

	// Act
	out.Reset()
	err := NewDeleteCommand(app).Execute([]string{"1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Deleted task: Buy milk\n", out.String())

	out.Reset()
	require.NoError(t, NewListCommand(app).Execute(nil))
	assert.Contains(t, out.String(), "Clean up")
	assert.NotContains(t, out.String(), "Buy milk")
}

func TestDeleteCommand_InvalidPosition(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "Buy milk", "2%")

	err := NewDeleteCommand(app).Execute([]string{"2"})

	assert.Error(t, err)
}

func TestEditCommand(t *testing.T) {
	// Arrange
	app, out := newTestApp(t)
	addTask(t, app, "Buy milk", "2%")
	require.NoError(t, NewDoneCommand(app).Execute([]string{"1"}))

	// Act
	out.Reset()
	title := "Buy oat milk"
	err := NewEditCommand(app).Execute([]string{"1"}, EditFields{Title: &title})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Updated task: Buy oat milk\n", out.String())

	out.Reset()
	require.NoError(t, NewListCommand(app).Execute(nil))
	assert.Contains(t, out.String(), "[x] Buy oat milk: 2%")
}

func TestEditCommand_EmptyField(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "Buy milk", "2%")

	empty := ""
	err := NewEditCommand(app).Execute([]string{"1"}, EditFields{Title: &empty})

	require.Error(t, err)
	assert.Equal(t, "Please fill in all fields.", err.Error())
}
