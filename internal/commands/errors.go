package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

// ReportError prints a command error to w and returns the process exit code.
// Exit errors carry their own code; an empty message prints nothing.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	code := 1
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(w, msg)
	}
	return code
}
