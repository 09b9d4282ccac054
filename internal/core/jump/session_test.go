package jump

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func newTestSession(t *testing.T, raw []string, cursor Cursor, vp Viewport, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(raw, numbered(len(raw)), cursor, vp, opts...)
	require.NoError(t, err)
	return s
}

func TestNewSession_LengthMismatch(t *testing.T) {
	_, err := NewSession([]string{"a", "b"}, []int{1}, Cursor{Line: 1}, Viewport{Top: 1, Height: 10})
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "2 lines, 1 line numbers")
}

func TestSession_ContiguousLineWins(t *testing.T) {
	raw := []string{"foobar", "barfoo", "f_b_o", "fbo"}
	s := newTestSession(t, raw, Cursor{Line: 1}, Viewport{Top: 100, Height: 10})

	s.ApplyFilter("fbo")

	require.True(t, s.HasResults())
	got := s.Filtered()
	require.Len(t, got, 2)
	assert.Less(t, got[0].Matches[0].Score, 1.0)
	assert.InDelta(t, 1.0, got[1].Matches[0].Score, 1e-9)

	assert.Equal(t, Cursor{Line: 4, Column: 0}, s.Cursor())
}

func TestSession_EmptyQuery(t *testing.T) {
	raw := []string{"alpha", "beta"}
	origin := Cursor{Line: 2, Column: 3}
	s := newTestSession(t, raw, origin, Viewport{Top: 1, Height: 10})

	s.ApplyFilter("")

	frame := s.Draw()
	assert.False(t, s.HasResults())
	assert.Equal(t, raw, frame.Lines)
	assert.Equal(t, origin, frame.Cursor)
	assert.Empty(t, frame.Highlights)
}

func TestSession_NoMatches(t *testing.T) {
	raw := []string{"abc", "def"}
	origin := Cursor{Line: 1, Column: 1}
	s := newTestSession(t, raw, origin, Viewport{Top: 1, Height: 10})

	s.ApplyFilter("ab")
	require.True(t, s.HasResults())

	s.ApplyFilter("z")

	frame := s.Draw()
	assert.False(t, s.HasResults())
	assert.Empty(t, s.Filtered())
	assert.Equal(t, raw, frame.Lines)
	assert.Equal(t, origin, frame.Cursor)
	assert.Empty(t, frame.Highlights, "highlights from the previous query must not leak")

	_, _, err := s.Position()
	assert.ErrorIs(t, err, ErrNoMatches)
	assert.ErrorIs(t, s.LineUp(), ErrNoMatches)
	assert.ErrorIs(t, s.LineDown(), ErrNoMatches)
	assert.ErrorIs(t, s.MatchNext(), ErrNoMatches)
	assert.ErrorIs(t, s.MatchPrev(), ErrNoMatches)
}

func TestSession_Navigation(t *testing.T) {
	raw := []string{"alpha", "xyz", "beta", "gamma"}
	s := newTestSession(t, raw, Cursor{Line: 1}, Viewport{Top: 1, Height: 10})

	s.ApplyFilter("a")
	assert.Equal(t, Cursor{Line: 1, Column: 0}, s.Cursor())

	tests := []struct {
		name   string
		move   func() error
		cursor Cursor
	}{
		{name: "next match on same line", move: s.MatchNext, cursor: Cursor{Line: 1, Column: 4}},
		{name: "next match wraps to next line", move: s.MatchNext, cursor: Cursor{Line: 3, Column: 3}},
		{name: "line down", move: s.LineDown, cursor: Cursor{Line: 4, Column: 1}},
		{name: "line down clamps", move: s.LineDown, cursor: Cursor{Line: 4, Column: 1}},
		{name: "prev match lands on last match of previous line", move: s.MatchPrev, cursor: Cursor{Line: 3, Column: 3}},
		{name: "line up", move: s.LineUp, cursor: Cursor{Line: 1, Column: 0}},
	}

	for _, tt := range tests {
		require.NoError(t, tt.move(), tt.name)
		assert.Equal(t, tt.cursor, s.Cursor(), tt.name)

		var cursorSpans []Highlight
		for _, h := range s.Highlights() {
			if h.Kind == CursorSpan {
				cursorSpans = append(cursorSpans, h)
			}
		}
		require.Len(t, cursorSpans, 1, tt.name)
		assert.Equal(t, tt.cursor.Line-1, cursorSpans[0].Line, tt.name)
		assert.Equal(t, tt.cursor.Column, cursorSpans[0].Start, tt.name)
	}
}

func TestSession_DrawShowsUnmatchedLines(t *testing.T) {
	raw := []string{"alpha", "xyz", "gamma"}
	s := newTestSession(t, raw, Cursor{Line: 1}, Viewport{Top: 1, Height: 10})

	s.ApplyFilter("a")

	frame := s.Draw()
	assert.Equal(t, raw, frame.Lines)
	assert.Len(t, s.Filtered(), 2)
	assert.Equal(t, s.Cursor(), frame.Cursor)
	assert.Equal(t, s.Highlights(), frame.Highlights)
}

func TestSession_OriginalLineNumbers(t *testing.T) {
	s, err := NewSession([]string{"one", "two", "three"}, []int{5, 9, 20}, Cursor{Line: 9}, Viewport{Top: 100, Height: 1})
	require.NoError(t, err)

	s.ApplyFilter("t")

	assert.Equal(t, Cursor{Line: 9, Column: 0}, s.Cursor())
	require.NoError(t, s.LineDown())
	assert.Equal(t, Cursor{Line: 20, Column: 0}, s.Cursor())
	assert.Equal(t, 19, s.Highlights()[len(s.Highlights())-1].Line)
}

func TestSession_ViewportBias(t *testing.T) {
	raw := make([]string, 60)
	for i := range raw {
		raw[i] = "-"
	}
	raw[4] = "needle"
	raw[39] = "n e e d l e"

	s := newTestSession(t, raw, Cursor{Line: 1}, Viewport{Top: 1, Height: 10})
	s.ApplyFilter("needle")
	assert.Equal(t, 5, s.Cursor().Line)

	s.SetViewport(Viewport{Top: 35, Height: 10})
	s.ApplyFilter("needle")
	assert.Equal(t, 40, s.Cursor().Line)
}

func TestSession_ReapplyIsDeterministic(t *testing.T) {
	raw := []string{"abcabc", "a_b_c", "cab", "abc"}
	s := newTestSession(t, raw, Cursor{Line: 2}, Viewport{Top: 1, Height: 10})

	s.ApplyFilter("abc")
	first := s.Draw()
	require.NoError(t, s.MatchNext())

	s.ApplyFilter("abc")
	assert.Equal(t, first, s.Draw())
}

func TestSession_Position(t *testing.T) {
	raw := []string{"ab", "ab ab"}
	s := newTestSession(t, raw, Cursor{Line: 2}, Viewport{Top: 1, Height: 10})

	s.ApplyFilter("ab")
	fi, mi, err := s.Position()
	require.NoError(t, err)
	assert.Equal(t, 1, fi)
	assert.Equal(t, 0, mi)
	assert.Equal(t, "ab", s.Query())
	assert.Equal(t, Cursor{Line: 2}, s.Origin())
}

func TestSession_Diagnostics(t *testing.T) {
	var (
		rec Recorder
		buf bytes.Buffer
	)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := newTestSession(t, []string{"abc", "xyz"}, Cursor{Line: 1}, Viewport{Top: 1, Height: 5},
		WithSink(&rec),
		WithSink(ZerologSink{Logger: logger}),
	)
	s.ApplyFilter("ab")
	s.ApplyFilter("q")
	_ = s.LineDown()

	entries := s.Log()
	require.Len(t, entries, 4)
	assert.Contains(t, entries[0], "session started: 2 lines")
	assert.Contains(t, entries[1], `filter "ab": 1 of 2 lines matched`)
	assert.Contains(t, entries[2], `filter "q": no matches`)
	assert.Contains(t, entries[3], "line down refused")

	assert.Equal(t, entries, rec.Entries())
	assert.Contains(t, buf.String(), "session started")
	assert.Contains(t, buf.String(), `"level":"debug"`)

	entries[0] = "mutated"
	assert.NotEqual(t, "mutated", s.Log()[0])
}
