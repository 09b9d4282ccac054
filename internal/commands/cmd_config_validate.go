package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hop/internal/core/styles"
	"github.com/colonyops/hop/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "hop config validate [options]",
				Description: "Validates the configuration file, checking the theme, scrolloff and keybindings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return errors.New("config not loaded")
	}

	issues, err := collectIssues(cmd.flags.Config.ValidateFile(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Path   string            `json:"path"`
			Errors []validationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Path:   cmd.flags.ConfigPath,
			Errors: issues,
		}
		if err := iojson.WriteWith(w, c.Root().ErrWriter, out); err != nil {
			return err
		}
	} else {
		outputText(w, cmd.flags.ConfigPath, issues)
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// collectIssues flattens criterio field errors. Other errors are returned as is.
func collectIssues(err error) ([]validationIssue, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues, nil
}

func outputText(w io.Writer, path string, issues []validationIssue) {
	_, _ = fmt.Fprintln(w, styles.PathStyle.Render(path))
	for _, issue := range issues {
		_, _ = fmt.Fprintf(w, "  %s %s: %s\n", styles.StatusErrStyle.Render("✗"), issue.Field, issue.Message)
	}

	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render("Configuration is valid"))
		return
	}
	_, _ = fmt.Fprintln(w, styles.StatusErrStyle.Render(fmt.Sprintf("%d error(s) found", len(issues))))
}
