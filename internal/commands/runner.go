package commands

// AppContext carries global options shared by all subcommands.
type AppContext struct {
	// ConfigPath is the path to the service's own configuration file.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool
}

// Runner is implemented by every subcommand.
type Runner interface {
	// Init parses command-specific flags and prepares the command.
	Init(args []string, ctx *AppContext) error

	// Run executes the command.
	Run() error

	// Name returns the subcommand name used for dispatch.
	Name() string
}
