package tui

import (
	"fmt"
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/hop/internal/core/jump"
	"github.com/colonyops/hop/internal/core/styles"
)

const tabWidth = 4

// cellKind is the paint state of a single character.
type cellKind int

const (
	cellPlain cellKind = iota
	cellMatch
	cellCursor
)

// spansByLine groups highlights by 0-based line, keeping emission order.
func spansByLine(highlights []jump.Highlight) map[int][]jump.Highlight {
	out := make(map[int][]jump.Highlight)
	for _, h := range highlights {
		out[h.Line] = append(out[h.Line], h)
	}
	return out
}

// paintCells resolves highlights for a line of n characters. Later spans
// overwrite earlier ones, so cursor spans win over match spans.
func paintCells(n int, spans []jump.Highlight) []cellKind {
	cells := make([]cellKind, n)
	for _, h := range spans {
		kind := cellMatch
		if h.Kind == jump.CursorSpan {
			kind = cellCursor
		}
		for col := max(h.Start, 0); col < h.End && col < n; col++ {
			cells[col] = kind
		}
	}
	return cells
}

// renderText renders raw with tabs expanded, skipping the first left cells,
// painting the highlighted characters and truncating to width cells.
func renderText(raw string, spans []jump.Highlight, left, width int) string {
	if width <= 0 {
		return ""
	}

	runes := []rune(raw)
	cells := paintCells(len(runes), spans)

	var (
		b       strings.Builder
		segment strings.Builder
		current = cellPlain
	)
	flush := func() {
		if segment.Len() == 0 {
			return
		}
		b.WriteString(styleFor(current).Render(segment.String()))
		segment.Reset()
	}

	for i, r := range runes {
		if cells[i] != current {
			flush()
			current = cells[i]
		}
		if r == '\t' {
			segment.WriteString(strings.Repeat(" ", tabWidth))
			continue
		}
		segment.WriteRune(r)
	}
	flush()

	out := b.String()
	if left > 0 {
		out = ansi.TruncateLeft(out, left, "")
	}
	return ansi.Truncate(out, width, "…")
}

// cellOffset returns the display cell where character column col of raw
// starts, with tabs expanded as renderText does.
func cellOffset(raw string, col int) int {
	offset := 0
	for i, r := range []rune(raw) {
		if i >= col {
			break
		}
		if r == '\t' {
			offset += tabWidth
			continue
		}
		offset += ansi.StringWidth(string(r))
	}
	return offset
}

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellMatch:
		return styles.MatchStyle
	case cellCursor:
		return styles.CursorStyle
	default:
		return styles.TextStyle
	}
}

// gutterWidth is the width of the line number column for n lines.
func gutterWidth(n int) int {
	return len(strconv.Itoa(max(n, 1))) + 1
}

func renderGutter(number, width int, current bool) string {
	label := fmt.Sprintf("%*d ", width-1, number)
	if current {
		return styles.CursorLineNumber.Render(label)
	}
	return styles.LineNumberStyle.Render(label)
}

// scrollTop returns the top line number that keeps line visible with
// scrolloff lines of context, moving as little as possible from top.
func scrollTop(top, line, height, total, scrolloff int) int {
	if height <= 0 || total <= 0 {
		return 1
	}
	scrolloff = min(scrolloff, (height-1)/2)

	if line-scrolloff < top {
		top = line - scrolloff
	}
	if line+scrolloff > top+height-1 {
		top = line + scrolloff - height + 1
	}

	return clampTop(top, height, total)
}

func clampTop(top, height, total int) int {
	maxTop := max(total-height+1, 1)
	return max(1, min(top, maxTop))
}

// scrollLeft returns the horizontal cell offset that keeps the cell at
// column visible within width cells.
func scrollLeft(left, column, width int) int {
	if width <= 1 {
		return column
	}
	if column < left {
		return column
	}
	if column >= left+width-1 {
		return column - width + 2
	}
	return left
}
