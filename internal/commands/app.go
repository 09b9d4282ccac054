package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp builds the root command with every subcommand registered and the
// jump view as the default action. Lifecycle hooks are left to the caller.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "hop",
		Usage:     "Jump to any line by typing a few of its characters",
		UsageText: "hop [global options] [file] | hop [global options] command [command options]",
		Description: `Hop filters a document to the lines containing your query as an ordered
subsequence and puts the cursor on the best match near where you were.

Run 'hop <file>' (or pipe text into 'hop') to open the interactive jump view.
Selecting a match prints path:line:column; cancelling prints nothing.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("HOP_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty logs to stderr)",
				Sources:     cli.EnvVars("HOP_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("HOP_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewMatchCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)
	app.ArgsUsage = "[file]"

	// The jump view is the default action when no subcommand is provided
	app.Action = tuiCmd.Run

	return app
}
