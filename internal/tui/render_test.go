package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/hop/internal/core/jump"
	"github.com/colonyops/hop/pkg/tuitest"
)

func TestPaintCells_CursorWins(t *testing.T) {
	spans := []jump.Highlight{
		{Kind: jump.MatchSpan, Start: 0, End: 1},
		{Kind: jump.MatchSpan, Start: 2, End: 3},
		{Kind: jump.CursorSpan, Start: 0, End: 1},
		{Kind: jump.MatchSpan, Start: 9, End: 10},
	}

	got := paintCells(5, spans)
	assert.Equal(t, []cellKind{cellCursor, cellPlain, cellMatch, cellPlain, cellPlain}, got)
}

func TestSpansByLine(t *testing.T) {
	got := spansByLine([]jump.Highlight{
		{Kind: jump.MatchSpan, Line: 1, Start: 0, End: 1},
		{Kind: jump.MatchSpan, Line: 4, Start: 2, End: 3},
		{Kind: jump.CursorSpan, Line: 1, Start: 0, End: 1},
	})

	assert.Len(t, got, 2)
	assert.Len(t, got[1], 2)
	assert.Equal(t, jump.CursorSpan, got[1][1].Kind)
	assert.Len(t, got[4], 1)
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		left  int
		width int
		want  string
	}{
		{name: "plain", raw: "hello", width: 80, want: "hello"},
		{name: "tabs expand", raw: "a\tb", width: 80, want: "a    b"},
		{name: "left offset", raw: "abcdef", left: 2, width: 80, want: "cdef"},
		{name: "offset past end", raw: "abc", left: 10, width: 80, want: ""},
		{name: "offset counts expanded tabs", raw: "\t\tab", left: 8, width: 80, want: "ab"},
		{name: "offset inside a tab", raw: "\tab", left: 2, width: 80, want: "  ab"},
		{name: "zero width", raw: "abc", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderText(tt.raw, nil, tt.left, tt.width)
			assert.Equal(t, tt.want, tuitest.StripANSI(got))
		})
	}
}

func TestRenderText_Truncates(t *testing.T) {
	got := renderText("abcdefghij", nil, 0, 5)
	assert.LessOrEqual(t, ansi.StringWidth(got), 5)
	assert.Contains(t, ansi.Strip(got), "abc")
	assert.Contains(t, ansi.Strip(got), "…")
}

func TestRenderText_KeepsHighlightedText(t *testing.T) {
	spans := []jump.Highlight{
		{Kind: jump.MatchSpan, Start: 0, End: 1},
		{Kind: jump.CursorSpan, Start: 2, End: 3},
	}

	got := renderText("fbo", spans, 0, 80)
	assert.Equal(t, "fbo", ansi.Strip(got))
}

func TestCellOffset(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		col  int
		want int
	}{
		{name: "plain", raw: "abcdef", col: 3, want: 3},
		{name: "tabs expand", raw: "\t\tab", col: 3, want: 9},
		{name: "wide runes", raw: "日本x", col: 2, want: 4},
		{name: "past end", raw: "ab", col: 5, want: 2},
		{name: "start", raw: "\tab", col: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellOffset(tt.raw, tt.col))
		})
	}
}

func TestGutterWidth(t *testing.T) {
	assert.Equal(t, 2, gutterWidth(0))
	assert.Equal(t, 2, gutterWidth(9))
	assert.Equal(t, 3, gutterWidth(10))
	assert.Equal(t, 4, gutterWidth(100))
}

func TestRenderGutter(t *testing.T) {
	assert.Equal(t, " 7 ", ansi.Strip(renderGutter(7, 3, false)))
	assert.Equal(t, "12 ", ansi.Strip(renderGutter(12, 3, true)))
}

func TestScrollTop(t *testing.T) {
	tests := []struct {
		name                                  string
		top, line, height, total, scrolloff int
		want                                  int
	}{
		{name: "already visible", top: 1, line: 5, height: 10, total: 100, scrolloff: 3, want: 1},
		{name: "below viewport", top: 1, line: 80, height: 10, total: 100, scrolloff: 3, want: 74},
		{name: "above viewport", top: 50, line: 20, height: 10, total: 100, scrolloff: 3, want: 17},
		{name: "scrolloff near top", top: 10, line: 11, height: 10, total: 100, scrolloff: 3, want: 8},
		{name: "clamped at end", top: 1, line: 99, height: 10, total: 100, scrolloff: 3, want: 91},
		{name: "clamped at start", top: 5, line: 1, height: 10, total: 100, scrolloff: 3, want: 1},
		{name: "scrolloff capped by height", top: 1, line: 3, height: 3, total: 100, scrolloff: 5, want: 2},
		{name: "empty document", top: 4, line: 1, height: 10, total: 0, scrolloff: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scrollTop(tt.top, tt.line, tt.height, tt.total, tt.scrolloff))
		})
	}
}

func TestScrollLeft(t *testing.T) {
	assert.Equal(t, 0, scrollLeft(0, 10, 80))
	assert.Equal(t, 5, scrollLeft(20, 5, 80))
	assert.Equal(t, 22, scrollLeft(0, 100, 80))
	assert.Equal(t, 7, scrollLeft(0, 7, 1))
}
