// Package tui is a terminal front-end for transcript search.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dgallion1/wordsearch/internal/prefs"
	"github.com/dgallion1/wordsearch/internal/search"
	"github.com/dgallion1/wordsearch/internal/state"
	"github.com/dgallion1/wordsearch/internal/transcript"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Source   *transcript.Source
	Prefs    prefs.Store // nil disables theme persistence
	PageSize int
	Log      *slog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(ctx context.Context, config Config) tea.Model {
	return newModel(ctx, config)
}

func newModel(ctx context.Context, config Config) *model {
	if config.Log == nil {
		config.Log = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "Search for a word or phrase"
	input.CharLimit = 120
	input.Width = 50
	input.Focus()

	theme := prefs.Light
	if config.Prefs != nil {
		t, err := prefs.LoadTheme(ctx, config.Prefs)
		if err != nil {
			config.Log.Warn("theme unavailable", "error", err)
		}
		theme = t
	}

	return &model{
		ctx:    ctx,
		config: config,
		input:  input,
		query:  state.New(config.PageSize),
		theme:  theme,
		styles: stylesFor(theme),
		width:  80,
	}
}

type model struct {
	ctx    context.Context
	config Config

	input textinput.Model
	query state.QueryState

	theme  prefs.Theme
	styles styles
	width  int

	infoMessage string
}

// searchDoneMsg carries a completed search tagged with its sequence token.
type searchDoneMsg struct {
	seq    uint64
	result search.Result
	err    error
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, min(60, msg.Width-4))
		return m, nil

	case searchDoneMsg:
		m.query = state.Update(m.query, state.SearchCompleted{Seq: msg.seq, Result: msg.result, Err: msg.err})
		m.infoMessage = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyCtrlN:
			m.query = state.Update(m.query, state.ShowMore{})
			return m, nil
		case tea.KeyCtrlT:
			m.toggleTheme()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.query = state.Update(m.query, state.TermChanged{Term: v})
		m.infoMessage = ""
	}
	return m, cmd
}

// submit starts a search for the current term. Blank terms are ignored.
func (m *model) submit() tea.Cmd {
	m.query = state.Update(m.query, state.SearchSubmitted{})
	if !m.query.Pending {
		return nil
	}
	m.infoMessage = fmt.Sprintf("Searching for %q…", m.query.Term)
	return searchCmd(m.ctx, m.config.Source, m.query.Seq, m.query.Term, m.config.Log)
}

func searchCmd(ctx context.Context, src *transcript.Source, seq uint64, term string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		t, err := src.Transcript(ctx)
		if err != nil {
			log.Warn("searching without transcript", "source", src.Name(), "error", err)
			return searchDoneMsg{seq: seq, err: err}
		}
		return searchDoneMsg{seq: seq, result: search.Run(t, term)}
	}
}

func (m *model) toggleTheme() {
	m.theme = m.theme.Toggled()
	m.styles = stylesFor(m.theme)
	if m.config.Prefs == nil {
		return
	}
	if err := prefs.SaveTheme(m.ctx, m.config.Prefs, m.theme); err != nil {
		m.config.Log.Warn("theme not saved", "error", err)
		m.infoMessage = "Theme could not be saved."
	}
}
