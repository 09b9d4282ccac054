package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hop/internal/core/jump"
	"github.com/colonyops/hop/internal/core/source"
	"github.com/colonyops/hop/internal/core/styles"
	"github.com/colonyops/hop/pkg/iojson"
	"github.com/colonyops/hop/pkg/logutils"
)

type MatchCmd struct {
	flags *Flags

	line    int
	jsonOut bool
	all     bool
	showLog bool
}

// NewMatchCmd creates a new match command.
func NewMatchCmd(flags *Flags) *MatchCmd {
	return &MatchCmd{flags: flags}
}

// Register adds the match command to the application.
func (cmd *MatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "match",
		Usage:     "Filter files with a query and print the jump target",
		UsageText: "hop match [options] <query> [files or globs...]",
		Description: `Runs a non-interactive jump session per file and prints the lines that
contain the query as an ordered subsequence, best match first per line.

Globs support ** (for example 'src/**/*.go'). Stdin is read when no files
are given. Exits 1 when nothing matched.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "line",
				Usage:       "cursor line used to break ties between equally scored lines",
				Value:       1,
				Destination: &cmd.line,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOut,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "list every match of every line with its score",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "log",
				Usage:       "print session diagnostics",
				Destination: &cmd.showLog,
			},
		},
		Action: cmd.run,
	})

	return app
}

// matchLine is a filtered line in command output.
type matchLine struct {
	Number  int          `json:"number"`
	Text    string       `json:"text"`
	Best    int          `json:"best"`
	Matches []jump.Match `json:"matches"`
}

// fileResult is the outcome of one session.
type fileResult struct {
	Path   string       `json:"path"`
	Query  string       `json:"query"`
	Target *jump.Cursor `json:"target,omitempty"`
	Lines  []matchLine  `json:"lines"`
	Log    []string     `json:"log,omitempty"`
}

// Location formats the jump target as path:line:column with a 1-based column.
func (r fileResult) Location() string {
	if r.Target == nil {
		return ""
	}
	return formatTarget(r.Path, *r.Target)
}

func (cmd *MatchCmd) run(_ context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.ValidConfig()
	if err != nil {
		return err
	}

	if c.Args().Len() < 1 {
		return errors.New("query is required")
	}

	query := c.Args().First()
	if cfg.ShouldNormalizeQuery() {
		query = strings.ToLower(query)
	}

	docs, err := cmd.documents(c.Args().Tail())
	if err != nil {
		if cmd.jsonOut {
			return cmd.jsonFailure(c, "load documents", map[string]any{"error": err.Error()})
		}
		return err
	}

	var sinks []jump.Sink
	if cmd.showLog && !cmd.jsonOut {
		sinks = append(sinks, jump.ZerologSink{Logger: logutils.Console(zerolog.DebugLevel, c.Root().ErrWriter)})
	}

	results := make([]fileResult, 0, len(docs))
	matched := false
	for _, doc := range docs {
		res, err := cmd.match(doc, query, sinks)
		if err != nil {
			return err
		}
		matched = matched || res.Target != nil
		results = append(results, res)
	}

	w := c.Root().Writer
	if cmd.jsonOut {
		if err := iojson.WriteWith(w, c.Root().ErrWriter, results); err != nil {
			return err
		}
	} else if err := cmd.printTable(w, results); err != nil {
		return err
	}

	if !matched {
		if cmd.jsonOut {
			return cmd.jsonFailure(c, "no matches", map[string]any{"query": query, "files": len(results)})
		}
		return cli.Exit("", 1)
	}
	return nil
}

// jsonFailure reports a failure as a JSON error on stderr and exits 1.
func (cmd *MatchCmd) jsonFailure(c *cli.Command, msg string, data map[string]any) error {
	if err := iojson.WriteError(c.Root().ErrWriter, msg, data); err != nil {
		return err
	}
	return cli.Exit("", 1)
}

func (cmd *MatchCmd) documents(patterns []string) ([]source.Document, error) {
	if len(patterns) == 0 {
		doc, err := source.Stdin()
		if err != nil {
			return nil, err
		}
		return []source.Document{doc}, nil
	}

	paths, err := source.Glob(patterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %s", strings.Join(patterns, " "))
	}

	docs := make([]source.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := source.Open(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// match runs a session over the whole document, every line treated as visible.
func (cmd *MatchCmd) match(doc source.Document, query string, sinks []jump.Sink) (fileResult, error) {
	opts := []jump.Option{
		jump.WithSink(jump.ZerologSink{Logger: log.With().Str("component", "match").Str("path", doc.Path).Logger()}),
	}
	for _, s := range sinks {
		opts = append(opts, jump.WithSink(s))
	}

	session, err := jump.NewSession(
		doc.Lines,
		doc.Numbers,
		jump.Cursor{Line: cmd.line},
		jump.Viewport{Top: 1, Height: doc.Len()},
		opts...,
	)
	if err != nil {
		return fileResult{}, fmt.Errorf("%s: %w", doc.Path, err)
	}
	session.ApplyFilter(query)

	res := fileResult{Path: doc.Path, Query: query, Lines: []matchLine{}}
	if session.HasResults() {
		target := session.Cursor()
		res.Target = &target
	}

	for _, fl := range session.Filtered() {
		ml := matchLine{Number: fl.Number, Text: fl.Raw, Best: fl.BestMatch(), Matches: fl.Matches}
		if !cmd.all {
			ml.Matches = []jump.Match{fl.Matches[ml.Best]}
			ml.Best = 0
		}
		res.Lines = append(res.Lines, ml)
	}

	if cmd.showLog {
		res.Log = session.Log()
	}
	return res, nil
}

func (cmd *MatchCmd) printTable(w io.Writer, results []fileResult) error {
	for i, res := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, styles.PathStyle.Render(res.Path))

		if res.Target == nil {
			_, _ = fmt.Fprintln(w, styles.DimTextStyle.Render(fmt.Sprintf("  no matches for %q", res.Query)))
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "  \tLINE\tCOL\tSCORE\tTEXT")
		for _, ml := range res.Lines {
			for j, m := range ml.Matches {
				marker := " "
				if ml.Number == res.Target.Line && m.Positions[0]-1 == res.Target.Column {
					marker = ">"
				}
				text := ml.Text
				if j > 0 {
					text = ""
				}
				_, _ = fmt.Fprintf(tw, "  %s\t%d\t%d\t%.2f\t%s\n", marker, ml.Number, m.Positions[0], m.Score, text)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render("jump: "+res.Location()))
	}
	return nil
}
