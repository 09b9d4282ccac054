// Package source loads documents for jump sessions from files and stdin.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/term"
)

// StdinPath is the display path used for documents read from stdin.
const StdinPath = "-"

// maxLineSize bounds a single line. Longer lines fail the read.
const maxLineSize = 4 * 1024 * 1024

// ErrStdinTerminal is returned when stdin is requested but attached to a
// terminal.
var ErrStdinTerminal = errors.New("stdin is a terminal")

// Document is a snapshot of document lines.
type Document struct {
	Path    string
	Lines   []string
	Numbers []int // 1-based original line numbers, parallel to Lines
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.Lines)
}

// Read reads all lines from r. A trailing carriage return is dropped from
// each line; everything else is kept verbatim.
func Read(r io.Reader, path string) (Document, error) {
	doc := Document{Path: path}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		doc.Lines = append(doc.Lines, strings.TrimSuffix(scanner.Text(), "\r"))
		doc.Numbers = append(doc.Numbers, len(doc.Lines))
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	return doc, nil
}

// Open reads the file at path.
func Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f, path)
}

// Stdin reads a document piped into the process.
func Stdin() (Document, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return Document{}, fmt.Errorf("no input provided: %w; pass a file or pipe input", ErrStdinTerminal)
	}
	return Read(os.Stdin, StdinPath)
}

// Glob expands patterns into a sorted, de-duplicated list of regular files.
// Patterns support doublestar syntax such as "**/*.go". A pattern without
// meta characters must name an existing file.
func Glob(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			return nil, fmt.Errorf("expand %q: %w", pattern, os.ErrNotExist)
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	slices.Sort(out)
	return out, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{\\")
}
