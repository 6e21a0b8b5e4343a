package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"team-tracker/internal/api"
	"team-tracker/internal/config"
	"team-tracker/internal/logging"
)

// APIFactory opens the BusinessAPI once configuration is final. The
// returned closer is called after the command has run.
type APIFactory func(cfg *config.Config) (api.BusinessAPI, io.Closer, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	api     api.BusinessAPI
	factory APIFactory
	closer  io.Closer
	config  *config.Config
}

// NewRootCommand creates the root cobra command around an open BusinessAPI
func NewRootCommand(apiInstance api.BusinessAPI, cfg *config.Config) *RootCommand {
	return newRootCommand(apiInstance, nil, cfg)
}

// NewRootCommandWithFactory creates the root cobra command; the API is
// opened after flags have been applied, so --db-dir and friends take effect
func NewRootCommandWithFactory(factory APIFactory, cfg *config.Config) *RootCommand {
	return newRootCommand(nil, factory, cfg)
}

func newRootCommand(apiInstance api.BusinessAPI, factory APIFactory, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:     apiInstance,
		factory: factory,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "team",
		Short: "A command-line software team simulator",
		Long: `Team (team) keeps a roster of software team members, assigns them to
tasks and reports on what each of them did.

ROLES:
  frontend, backend, fullstack    Developers with role specific actions
  designer                        UI/UX designer
  tester                          QA tester
  developer                       Generic developer

LEVELS:
  Intern, Junior, Middle, Senior

EXAMPLES:
  team hire frontend Senior John Doe         # Hire a member
  team task Homepage 24-10-2024 31-10-2024   # Create a task
  team assign 1 1 2                          # Assign members 1 and 2 to task 1
  team report 1                              # Report on task 1
  team record 1 2 CreateDb                   # Store an action as member 2's status
  team export 1 format=csv > report.csv      # Export a report
  team demo                                  # Play the sample team

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TEAM_DB_DIR                          Database directory (default: ~/.team)
    TEAM_DB_FILENAME                     Database filename (default: team.db)
    TEAM_DB_QUERY_TIMEOUT                Query timeout (default: 10s)

  Display Configuration:
    TEAM_DISPLAY_DATE_FORMAT             Report date layout (default: January 2, 2006 at 3:04 PM)
    TEAM_DISPLAY_KEYWORDS                Role keywords to group by (default: Designer,Developer,Tester)
    TEAM_DISPLAY_COLOR                   Colored headings (default: false)

  Validation Configuration:
    TEAM_VALIDATION_NAME_MIN             Min name length (default: 1)
    TEAM_VALIDATION_NAME_MAX             Max name length (default: 100)

  Application Configuration:
    TEAM_APP_TIMEOUT                     Application timeout (default: 60s)
    TEAM_APP_VERBOSE                     Enable verbose output (default: false)
    TEAM_ENV                             testing uses an in-memory database

  Command Configuration:
    TEAM_EXPORT_DEFAULT_FORMAT           Default export format (default: csv)
    TEAM_SCENARIO_FILE                   Scenario played by demo`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.openAPI()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.Close()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Close releases whatever the factory opened
func (r *RootCommand) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *RootCommand) openAPI() error {
	if r.api != nil || r.factory == nil {
		return nil
	}

	apiInstance, closer, err := r.factory(r.config)
	if err != nil {
		return err
	}
	r.api = apiInstance
	r.closer = closer
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TEAM_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TEAM_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TEAM_DB_QUERY_TIMEOUT)")

	// Display configuration
	flags.String("date-format", "", "Report date layout (overrides TEAM_DISPLAY_DATE_FORMAT)")
	flags.StringSlice("keywords", nil, "Role keywords to group assignees by (overrides TEAM_DISPLAY_KEYWORDS)")
	flags.Bool("color", false, "Colored headings (overrides TEAM_DISPLAY_COLOR)")

	// Validation configuration
	flags.Int("name-min-length", 0, "Minimum name length (overrides TEAM_VALIDATION_NAME_MIN)")
	flags.Int("name-max-length", 0, "Maximum name length (overrides TEAM_VALIDATION_NAME_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TEAM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TEAM_APP_VERBOSE)")

	// Commands configuration
	flags.String("export-format", "", "Default export format (overrides TEAM_EXPORT_DEFAULT_FORMAT)")
	flags.String("scenario-file", "", "Scenario played by demo (overrides TEAM_SCENARIO_FILE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.handlerCommand("hire <kind> <level> <name...>", "Hire a team member",
			"Add a member to the roster. Kind is one of frontend, backend, fullstack, designer, tester, developer.",
			cobra.MinimumNArgs(3), func(app *App) Command { return NewHireCommand(app) }),
		r.handlerCommand("members", "List team members", "List the roster in hiring order.",
			cobra.NoArgs, func(app *App) Command { return NewMembersCommand(app) }),
		r.handlerCommand("introduce [member-id]", "Introduce members",
			"Print the greeting of one member, or of every member in hiring order.",
			cobra.MaximumNArgs(1), func(app *App) Command { return NewIntroduceCommand(app) }),
		r.handlerCommand("level <member-id> <level>", "Change a member's level",
			"Set the experience level to Intern, Junior, Middle or Senior.",
			cobra.ExactArgs(2), func(app *App) Command { return NewLevelCommand(app) }),
		r.handlerCommand("rename <member-id> <name...>", "Rename a member", "Change a member's name.",
			cobra.MinimumNArgs(2), func(app *App) Command { return NewRenameCommand(app) }),
		r.handlerCommand("act <member-id> [action]", "Perform or list role actions",
			"Without an action, list the member's actions. With one, print the phrase it produces.",
			cobra.RangeArgs(1, 2), func(app *App) Command { return NewActCommand(app) }),
		r.handlerCommand("dismiss <member-id>", "Dismiss a member",
			"Remove a member from the roster. Task entries keep the member's details.",
			cobra.ExactArgs(1), func(app *App) Command { return NewDismissCommand(app) }),

		r.handlerCommand("task <name> <start-date> <end-date>", "Create a task",
			"Create a task with no assignees. Dates are free text and are stored as typed.",
			cobra.ExactArgs(3), func(app *App) Command { return NewTaskCommand(app) }),
		r.handlerCommand("tasks", "List tasks", "List every task with its number of assignees.",
			cobra.NoArgs, func(app *App) Command { return NewTasksCommand(app) }),
		r.handlerCommand("assign <task-id> <member-id...>", "Assign members to a task",
			"Append each member's details to the task, in the order given.",
			cobra.MinimumNArgs(2), func(app *App) Command { return NewAssignCommand(app) }),
		r.handlerCommand("show <task-id>", "Show task details", "Print the task details block.",
			cobra.ExactArgs(1), func(app *App) Command { return NewShowCommand(app) }),
		r.handlerCommand("delete <task-id>", "Delete a task",
			"Delete a task together with its assignees and reports. This cannot be undone.",
			cobra.ExactArgs(1), func(app *App) Command { return NewDeleteCommand(app) }),

		r.handlerCommand("report <task-id>", "Create a report", "Create a report for a task and print it.",
			cobra.ExactArgs(1), func(app *App) Command { return NewReportCommand(app) }),
		r.handlerCommand("reports <task-id>", "List reports", "List the reports of a task, oldest first.",
			cobra.ExactArgs(1), func(app *App) Command { return NewReportsCommand(app) }),
		r.handlerCommand("view <report-id>", "Show report details", "Print the report details block.",
			cobra.ExactArgs(1), func(app *App) Command { return NewViewCommand(app) }),
		r.handlerCommand("status <report-id> <member-id> <text...>", "Set a member's status",
			"Set free-text status on every entry of the member in the report's task.",
			cobra.MinimumNArgs(3), func(app *App) Command { return NewStatusCommand(app) }),
		r.handlerCommand("record <report-id> <member-id> <action>", "Record an action",
			"Perform a role action and store its phrase as the member's status.",
			cobra.ExactArgs(3), func(app *App) Command { return NewRecordCommand(app) }),
		r.handlerCommand("export <report-id> [format=csv]", "Export a report",
			`Export a report with one row per assignee.

Supported formats:
  csv - Comma-separated values format

Example:
  team export 1 format=csv`,
			cobra.RangeArgs(1, 2), func(app *App) Command { return NewExportCommand(app) }),
		r.demoCommand(),
	)
}

// handlerCommand wraps a command handler in a cobra command that runs it
// under the application timeout
func (r *RootCommand) handlerCommand(use, short, long string, args cobra.PositionalArgs, newHandler func(app *App) Command) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return newHandler(r.newApp(cmd)).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) demoCommand() *cobra.Command {
	var options DemoOptions

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Play the sample team",
		Long: `Introduce a team, assign it to a task, record one action per member and
print the task and report details.

Examples:
  team demo                                # Play the built-in sample team
  team demo --write-scenario team.yaml     # Write the sample team as YAML
  team demo --scenario team.yaml --save    # Play a scenario file and store it`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDemoCommand(r.newApp(cmd), options).Execute(ctx, args)
		},
	}

	demoCmd.Flags().StringVar(&options.ScenarioFile, "scenario", "", "Scenario file to play instead of the sample team")
	demoCmd.Flags().BoolVar(&options.Save, "save", false, "Store the scenario's members, task and report")
	demoCmd.Flags().StringVar(&options.WriteScenario, "write-scenario", "", "Write the scenario as YAML and exit")
	return demoCmd
}

func (r *RootCommand) newApp(cmd *cobra.Command) *App {
	app := NewAppWithConfig(r.api, r.config)
	app.SetOutput(cmd.OutOrStdout())
	return app
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags updates the configuration with the flags that were set
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	overrides := r.overridesFromFlags()
	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	logging.SetEnabled(r.config.Application.Verbose)
	logging.Debugf("database: %s\n", r.config.GetDatabasePath())
	return nil
}

func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	// Database configuration
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}

	// Display configuration
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("keywords") {
		overrides.Keywords, _ = flags.GetStringSlice("keywords")
	}
	if flags.Changed("color") {
		v, _ := flags.GetBool("color")
		overrides.Color = &v
	}

	// Validation configuration
	if flags.Changed("name-min-length") {
		v, _ := flags.GetInt("name-min-length")
		overrides.NameMinLength = &v
	}
	if flags.Changed("name-max-length") {
		v, _ := flags.GetInt("name-max-length")
		overrides.NameMaxLength = &v
	}

	// Application configuration
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	// Commands configuration
	if flags.Changed("export-format") {
		v, _ := flags.GetString("export-format")
		overrides.ExportDefaultFormat = &v
	}
	if flags.Changed("scenario-file") {
		v, _ := flags.GetString("scenario-file")
		overrides.ScenarioFile = &v
	}

	return overrides
}
