package jump

import (
	"fmt"
	"slices"
)

// Cursor is a position in the host document: a 1-based line number and a
// 0-based column.
type Cursor struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Frame is everything a renderer needs to draw the current state.
type Frame struct {
	Lines      []string    `json:"lines"`
	Highlights []Highlight `json:"highlights"`
	Cursor     Cursor      `json:"cursor"`
}

// Option configures a Session.
type Option func(*Session)

// WithSink adds a diagnostics sink. The session's own log is always kept.
func WithSink(s Sink) Option {
	return func(sess *Session) {
		sess.sinks = append(sess.sinks, s)
	}
}

// Session is one jump session over a snapshot of document lines.
type Session struct {
	lines    []Line
	cursor   Cursor
	viewport Viewport

	query      string
	filtered   []FilteredLine
	nav        Navigator
	highlights []Highlight

	log   Recorder
	sinks []Sink
}

// NewSession creates a session. numbers holds the original 1-based line
// number of each entry in lines; cursor and vp describe the host window
// when the session started.
func NewSession(lines []string, numbers []int, cursor Cursor, vp Viewport, opts ...Option) (*Session, error) {
	if len(lines) != len(numbers) {
		return nil, fmt.Errorf("new session: %d lines, %d line numbers: %w", len(lines), len(numbers), ErrLengthMismatch)
	}

	s := &Session{
		lines:    make([]Line, len(lines)),
		cursor:   cursor,
		viewport: vp,
	}
	for i, raw := range lines {
		s.lines[i] = NewLine(raw, numbers[i])
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logf("session started: %d lines, cursor %d:%d, viewport top %d height %d",
		len(lines), cursor.Line, cursor.Column, vp.Top, vp.Height)
	return s, nil
}

// SetViewport replaces the viewport used by the next ApplyFilter.
func (s *Session) SetViewport(vp Viewport) {
	s.viewport = vp
}

// ApplyFilter runs a full filter pass for query and reseeds the cursor on
// the best match. Applying the same query again recomputes the same state.
func (s *Session) ApplyFilter(query string) {
	s.query = query
	s.filtered = Filter(s.lines, query)
	s.nav = Navigator{}
	s.highlights = nil

	if len(s.filtered) == 0 {
		s.logf("filter %q: no matches", query)
		return
	}

	// filtered is non-empty, SelectInitial cannot fail.
	fi, mi, _ := SelectInitial(s.filtered, s.cursor.Line, s.viewport)
	s.nav = NewNavigator(s.filtered, fi, mi)
	s.refresh()

	s.logf("filter %q: %d of %d lines matched, cursor on line %d match %d",
		query, len(s.filtered), len(s.lines), s.filtered[fi].Number, mi)
}

// Query returns the most recently applied query.
func (s *Session) Query() string {
	return s.query
}

// HasResults reports whether the current query matched at least one line.
func (s *Session) HasResults() bool {
	return len(s.filtered) > 0
}

// Filtered returns the current filtered lines.
func (s *Session) Filtered() []FilteredLine {
	return slices.Clone(s.filtered)
}

// Position returns the selected filter index and match index. It returns
// ErrNoMatches when there are no filtered lines.
func (s *Session) Position() (int, int, error) {
	if s.nav.Empty() {
		return 0, 0, ErrNoMatches
	}
	fi, mi := s.nav.Position()
	return fi, mi, nil
}

// Cursor returns the jump target. Without results it is the cursor the
// session started with.
func (s *Session) Cursor() Cursor {
	if s.nav.Empty() {
		return s.cursor
	}
	fi, mi := s.nav.Position()
	l := s.filtered[fi]
	return Cursor{Line: l.Number, Column: l.Matches[mi].Positions[0] - 1}
}

// Origin returns the cursor the session started with.
func (s *Session) Origin() Cursor {
	return s.cursor
}

// Highlights returns the current highlight spans.
func (s *Session) Highlights() []Highlight {
	return slices.Clone(s.highlights)
}

// Draw returns the lines, highlights and cursor to render. Every original
// line is included whether or not it matched.
func (s *Session) Draw() Frame {
	lines := make([]string, len(s.lines))
	for i, l := range s.lines {
		lines[i] = l.Raw
	}

	return Frame{
		Lines:      lines,
		Highlights: s.Highlights(),
		Cursor:     s.Cursor(),
	}
}

// LineUp selects the first match of the previous filtered line.
func (s *Session) LineUp() error {
	return s.move("line up", s.nav.LineUp)
}

// LineDown selects the first match of the next filtered line.
func (s *Session) LineDown() error {
	return s.move("line down", s.nav.LineDown)
}

// MatchNext selects the next match.
func (s *Session) MatchNext() error {
	return s.move("match next", s.nav.MatchNext)
}

// MatchPrev selects the previous match.
func (s *Session) MatchPrev() error {
	return s.move("match prev", s.nav.MatchPrev)
}

// Log returns the session diagnostics in the order they were recorded.
func (s *Session) Log() []string {
	return s.log.Entries()
}

func (s *Session) move(name string, fn func() error) error {
	if err := fn(); err != nil {
		s.logf("%s refused: %v", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	s.refresh()

	fi, mi := s.nav.Position()
	s.logf("%s: filter index %d match %d", name, fi, mi)
	return nil
}

func (s *Session) refresh() {
	fi, mi := s.nav.Position()
	s.highlights = ComputeHighlights(s.filtered, fi, mi)
}

func (s *Session) logf(format string, args ...any) {
	s.log.Logf(format, args...)
	for _, sink := range s.sinks {
		sink.Logf(format, args...)
	}
}
