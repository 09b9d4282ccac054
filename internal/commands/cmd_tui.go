package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hop/internal/core/jump"
	"github.com/colonyops/hop/internal/core/source"
	"github.com/colonyops/hop/internal/tui"
)

// ttyPath is opened for keyboard input when the document is read from stdin.
const ttyPath = "/dev/tty"

type TuiCmd struct {
	flags *Flags

	line   int
	column int
	top    int
	query  string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "line",
			Usage:       "cursor line before jumping (1-based)",
			Value:       1,
			Destination: &cmd.line,
		},
		&cli.IntFlag{
			Name:        "column",
			Usage:       "cursor column before jumping (1-based)",
			Value:       1,
			Destination: &cmd.column,
		},
		&cli.IntFlag{
			Name:        "top",
			Usage:       "first visible line (defaults to a few lines above --line)",
			Destination: &cmd.top,
		},
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "initial query",
			Destination: &cmd.query,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.ValidConfig()
	if err != nil {
		return err
	}

	if c.Args().Len() > 1 {
		return fmt.Errorf("expected at most one file, got %d", c.Args().Len())
	}

	doc, err := loadDocument(c.Args().First())
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}
	if doc.Path == source.StdinPath {
		tty, err := os.Open(ttyPath)
		if err != nil {
			return fmt.Errorf("open terminal for input: %w", err)
		}
		defer func() { _ = tty.Close() }()
		opts = append(opts, tea.WithInput(tty))
	}

	m, err := tui.New(tui.Options{
		Document: doc,
		Config:   cfg,
		Cursor:   jump.Cursor{Line: cmd.line, Column: max(cmd.column-1, 0)},
		Top:      cmd.top,
		Query:    cmd.query,
		Logger:   log.Logger,
	})
	if err != nil {
		return err
	}

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", finalModel)
	}

	res := final.Result()
	log.Debug().
		Bool("selected", res.Selected).
		Str("query", res.Query).
		Int("line", res.Cursor.Line).
		Int("column", res.Cursor.Column).
		Msg("jump session finished")

	if !res.Selected {
		return nil
	}

	_, err = fmt.Fprintln(c.Root().Writer, formatTarget(doc.Path, res.Cursor))
	return err
}

// loadDocument reads path, or stdin when path is empty.
func loadDocument(path string) (source.Document, error) {
	if path == "" || path == source.StdinPath {
		return source.Stdin()
	}
	return source.Open(path)
}

// formatTarget renders a cursor as path:line:column with a 1-based column.
func formatTarget(path string, c jump.Cursor) string {
	return fmt.Sprintf("%s:%d:%d", path, c.Line, c.Column+1)
}
