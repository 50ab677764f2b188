package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"todoapp/internal/config"
	"todoapp/internal/directory"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	app    *App
	out    io.Writer
}

// NewRootCommand creates the root cobra command with global flags. The
// application is wired in PersistentPreRunE, after flag overrides have
// been applied to the configuration.
func NewRootCommand(cfg *config.Config, out io.Writer) *RootCommand {
	root := &RootCommand{
		config: cfg,
		out:    out,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A simple personal task tracker",
		Long: `todo is a command-line task tracker: log in, then create, list,
edit, complete and delete your tasks.

Tasks live in memory by default and are gone when the process exits.
Set --backend sqlite with a --db file path to keep them around during
development.

EXAMPLES:
  todo list                                        # Show all tasks
  todo add "Buy milk" "2%"                         # Add a task (requires credentials)
  todo edit 1 --title "Buy oat milk"               # Edit the first listed task
  todo done 1                                      # Toggle completion of the first task
  todo rm 2                                        # Delete the second listed task

CONFIGURATION:
  Flags override environment variables, which override defaults.

    TODO_MAIL                 Login mail (or --mail)
    TODO_PASSWORD             Login password (or --password)
    TODO_STORAGE_BACKEND      Task store backend: memory or sqlite (default: memory)
    TODO_STORAGE_DSN          SQLite DSN (default: :memory:)
    TODO_USERS_FILE           YAML seed file with users and tasks
    TODO_TIME_DISPLAY_FORMAT  Time display format (default: 2006-01-02 15:04)
    TODO_DEBUG                Enable debug output when non-empty`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the application's resources, if it was set up.
func (r *RootCommand) Close() error {
	if r.app == nil {
		return nil
	}
	return r.app.Close()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("mail", "", "Login mail (overrides TODO_MAIL)")
	flags.String("password", "", "Login password (overrides TODO_PASSWORD)")
	flags.String("backend", "", "Task store backend: memory or sqlite (overrides TODO_STORAGE_BACKEND)")
	flags.String("db", "", "SQLite DSN (overrides TODO_STORAGE_DSN)")
	flags.String("users", "", "YAML seed file (overrides TODO_USERS_FILE)")
	flags.String("time-format", "", "Time display format (overrides TODO_TIME_DISPLAY_FORMAT)")
}

// setup applies flag overrides and wires the application.
func (r *RootCommand) setup() error {
	flags := r.cmd.PersistentFlags()

	if backend, _ := flags.GetString("backend"); backend != "" {
		r.config.Storage.Backend = backend
	}
	if dsn, _ := flags.GetString("db"); dsn != "" {
		r.config.Storage.DSN = dsn
	}
	if seedFile, _ := flags.GetString("users"); seedFile != "" {
		r.config.Users.SeedFile = seedFile
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	seed, err := config.LoadConfiguredSeed(r.config)
	if err != nil {
		return err
	}

	taskStore, err := config.CreateTaskStore(r.config, seed.Tasks)
	if err != nil {
		return err
	}

	r.app = NewApp(r.config, taskStore, directory.New(seed.Users), r.out)
	return nil
}

// credentials resolves the login mail and password from flags, falling
// back to the environment.
func (r *RootCommand) credentials() (string, string) {
	flags := r.cmd.PersistentFlags()

	mail, _ := flags.GetString("mail")
	if mail == "" {
		mail = os.Getenv("TODO_MAIL")
	}
	password, _ := flags.GetString("password")
	if password == "" {
		password = os.Getenv("TODO_PASSWORD")
	}
	return mail, password
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List all tasks with their position, completion state, dates and owner.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.app).Execute(args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [title] [description]",
		Short: "Add a new task",
		Long: `Add a new task owned by the logged-in user.

Requires credentials via --mail/--password or TODO_MAIL/TODO_PASSWORD.

Examples:
  todo add "Buy milk" "2%"
  todo add "Report" "Quarterly numbers" --start 2026-09-01 --end 2026-09-05`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mail, password := r.credentials()
			startArg, _ := cmd.Flags().GetString("start")
			endArg, _ := cmd.Flags().GetString("end")
			return NewAddCommand(r.app).Execute(args, mail, password, startArg, endArg)
		},
	}
	addCmd.Flags().String("start", "", "Start date (YYYY-MM-DD or RFC3339, default: now)")
	addCmd.Flags().String("end", "", "End date (YYYY-MM-DD or RFC3339, default: none)")

	editCmd := &cobra.Command{
		Use:   "edit [position]",
		Short: "Edit the task at a list position",
		Long: `Edit the task at the given list position. Fields that are not
supplied keep their current values.

Examples:
  todo edit 1 --title "Buy oat milk"
  todo edit 2 --description "Updated notes" --end 2026-09-10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewEditCommand(r.app).Execute(args, editFieldsFromFlags(cmd))
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("start", "", "New start date (YYYY-MM-DD or RFC3339)")
	editCmd.Flags().String("end", "", "New end date (YYYY-MM-DD or RFC3339)")

	doneCmd := &cobra.Command{
		Use:   "done [position]",
		Short: "Toggle completion of the task at a list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDoneCommand(r.app).Execute(args)
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [position]",
		Short: "Delete the task at a list position",
		Long:  "Delete the task at the given list position. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r.app).Execute(args)
		},
	}

	r.cmd.AddCommand(
		listCmd,
		addCmd,
		editCmd,
		doneCmd,
		rmCmd,
	)
}

// editFieldsFromFlags collects the edit form input, keeping fields that
// were not supplied as nil so the editor prefills them.
func editFieldsFromFlags(cmd *cobra.Command) EditFields {
	fields := EditFields{}
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		fields.Title = &v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		fields.Description = &v
	}
	if cmd.Flags().Changed("start") {
		v, _ := cmd.Flags().GetString("start")
		fields.StartDate = &v
	}
	if cmd.Flags().Changed("end") {
		v, _ := cmd.Flags().GetString("end")
		fields.EndDate = &v
	}
	return fields
}
