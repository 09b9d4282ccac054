// Package tui implements the interactive jump view on top of the jump engine.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/hop/internal/core/config"
	"github.com/colonyops/hop/internal/core/jump"
	"github.com/colonyops/hop/internal/core/source"
	"github.com/colonyops/hop/internal/core/styles"
)

// chromeHeight is the number of rows used by the status, prompt and help lines.
const chromeHeight = 3

// Options configures the jump view.
type Options struct {
	Document source.Document
	Config   *config.Config
	Cursor   jump.Cursor // cursor before the session, 1-based line, 0-based column
	Top      int         // first visible line; 0 places Cursor near the top
	Query    string      // initial query
	Logger   zerolog.Logger
}

// Result describes how the session ended.
type Result struct {
	Selected bool
	Cursor   jump.Cursor
	Query    string
}

// Model is the Bubble Tea model for the jump view.
type Model struct {
	cfg     *config.Config
	doc     source.Document
	session *jump.Session
	input   textinput.Model
	keys    KeyMap
	help    help.Model
	log     zerolog.Logger

	width       int
	height      int
	top         int // first rendered line number
	left        int // first rendered cell, tabs expanded
	originTop   int
	lastQuery   string
	status      string
	initialized bool
	quitting    bool
	result      Result
}

// New creates the jump view for a document.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	cursor := opts.Cursor
	if cursor.Line < 1 {
		cursor.Line = 1
	}

	top := opts.Top
	if top < 1 {
		top = max(cursor.Line-cfg.ScrollOff, 1)
	}

	logger := opts.Logger.With().Str("component", "tui").Logger()
	session, err := jump.NewSession(
		opts.Document.Lines,
		opts.Document.Numbers,
		cursor,
		jump.Viewport{Top: top, Height: 24 - chromeHeight},
		jump.WithSink(jump.ZerologSink{Logger: logger}),
	)
	if err != nil {
		return Model{}, fmt.Errorf("start session: %w", err)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to jump..."
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Focused.Prompt = styles.PromptStyle
	inputStyles.Cursor.Color = styles.CurrentPalette.Primary
	input.SetStyles(inputStyles)
	input.SetValue(opts.Query)
	input.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpDescStyle

	return Model{
		cfg:       cfg,
		doc:       opts.Document,
		session:   session,
		input:     input,
		keys:      NewKeyMap(cfg.Keybindings),
		help:      h,
		log:       logger,
		width:     80,
		height:    24,
		top:       top,
		originTop: top,
		result:    Result{Cursor: cursor},
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the outcome once the program has exited.
func (m Model) Result() Result {
	return m.result
}

// Session exposes the underlying engine session.
func (m Model) Session() *jump.Session {
	return m.session
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(m.width-4, 1))
		m.session.SetViewport(m.originViewport())

		// The first size message carries the real viewport, filter with it.
		if !m.initialized {
			m.initialized = true
			m.applyQuery()
		}
		m.follow()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.result = Result{Selected: false, Cursor: m.session.Origin(), Query: m.session.Query()}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		m.result = Result{Selected: true, Cursor: m.session.Cursor(), Query: m.session.Query()}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.LineUp):
		m.navigate(m.session.LineUp)
		return m, nil
	case key.Matches(msg, m.keys.LineDown):
		m.navigate(m.session.LineDown)
		return m, nil
	case key.Matches(msg, m.keys.MatchNext):
		m.navigate(m.session.MatchNext)
		return m, nil
	case key.Matches(msg, m.keys.MatchPrev):
		m.navigate(m.session.MatchPrev)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyQuery()
	m.follow()
	return m, cmd
}

// applyQuery filters with the current input unless it has not changed.
func (m *Model) applyQuery() {
	query := m.input.Value()
	if m.cfg.ShouldNormalizeQuery() {
		query = strings.ToLower(query)
	}
	if query == m.lastQuery && m.initialized {
		return
	}
	m.lastQuery = query
	m.status = ""

	m.session.ApplyFilter(query)

	if query == "" {
		m.top = m.originTop
	}
}

func (m *Model) navigate(fn func() error) {
	if err := fn(); err != nil {
		if errors.Is(err, jump.ErrNoMatches) {
			m.status = "no matches"
			return
		}
		m.log.Error().Err(err).Msg("navigation failed")
		m.status = err.Error()
		return
	}
	m.status = ""
	m.follow()
}

// follow scrolls so the jump target stays on screen.
func (m *Model) follow() {
	if !m.session.HasResults() {
		m.top = clampTop(m.top, m.bodyHeight(), m.doc.Len())
		m.left = 0
		return
	}

	c := m.session.Cursor()
	m.top = scrollTop(m.top, c.Line, m.bodyHeight(), m.doc.Len(), m.cfg.ScrollOff)
	m.left = scrollLeft(m.left, cellOffset(m.doc.Lines[c.Line-1], c.Column), m.textWidth())
}

// originViewport is the window the session started in, sized to the body.
// Best-match selection always uses it, wherever the view has scrolled since.
func (m Model) originViewport() jump.Viewport {
	return jump.Viewport{Top: m.originTop, Height: m.bodyHeight()}
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m Model) gutter() int {
	if !m.cfg.LineNumbers {
		return 0
	}
	return gutterWidth(m.doc.Len())
}

func (m Model) textWidth() int {
	return max(m.width-m.gutter(), 1)
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render returns the screen content.
func (m Model) Render() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderBody(),
		m.renderStatus(),
		m.input.View(),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

func (m Model) renderBody() string {
	frame := m.session.Draw()
	spans := spansByLine(frame.Highlights)
	height := m.bodyHeight()
	gutter := m.gutter()
	textWidth := m.textWidth()

	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		number := m.top + i
		idx := number - 1
		if idx < 0 || idx >= len(frame.Lines) {
			rows = append(rows, styles.DimTextStyle.Render("~"))
			continue
		}

		var row strings.Builder
		if gutter > 0 {
			row.WriteString(renderGutter(m.doc.Numbers[idx], gutter, m.session.HasResults() && frame.Cursor.Line == m.doc.Numbers[idx]))
		}
		row.WriteString(renderText(frame.Lines[idx], spans[m.doc.Numbers[idx]-1], m.left, textWidth))
		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	if m.status != "" {
		return styles.StatusErrStyle.Render(m.status)
	}

	query := m.session.Query()
	if query == "" {
		return styles.StatusStyle.Render(fmt.Sprintf("%s · %d lines", m.displayPath(), m.doc.Len()))
	}
	if !m.session.HasResults() {
		return styles.StatusErrStyle.Render(fmt.Sprintf("no matches for %q", query))
	}

	fi, mi, _ := m.session.Position()
	filtered := m.session.Filtered()
	c := m.session.Cursor()

	return styles.StatusStyle.Render(fmt.Sprintf("%s:%d:%d · line %d/%d · match %d/%d",
		m.displayPath(), c.Line, c.Column+1,
		fi+1, len(filtered),
		mi+1, len(filtered[fi].Matches),
	))
}

func (m Model) displayPath() string {
	if m.doc.Path == "" || m.doc.Path == source.StdinPath {
		return "stdin"
	}
	return m.doc.Path
}
