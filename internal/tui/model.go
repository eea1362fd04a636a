// Package tui provides the Bubble Tea timer interface.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuicube/internal/history"
	"github.com/verte-zerg/tuicube/internal/model"
	"github.com/verte-zerg/tuicube/internal/nav"
	"github.com/verte-zerg/tuicube/internal/scramble"
	"github.com/verte-zerg/tuicube/internal/store"
	"github.com/verte-zerg/tuicube/internal/timer"
)

type tickMsg time.Time

// Model implements the Bubble Tea timer UI. All state is owned by the
// program loop and changed only from Update.
type Model struct {
	config    model.Config
	store     *store.Store
	history   *history.History
	stopwatch *timer.Stopwatch
	nav       *nav.Navigator
	gen       *scramble.Generator
	scramble  string

	keys  keyMap
	help  help.Model
	times table.Model

	width  int
	height int
	errMsg string
}

// NewModel constructs a timer TUI model around a loaded history.
func NewModel(cfg model.Config, st *store.Store, h *history.History, sw *timer.Stopwatch, gen *scramble.Generator) *Model {
	m := &Model{
		config:    cfg,
		store:     st,
		history:   h,
		stopwatch: sw,
		nav:       nav.New(),
		gen:       gen,
		keys:      keys,
		help:      help.New(),
		times:     newTimesTable(),
	}
	m.newScramble()
	m.syncTimes()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncTimes()
		return m, nil
	case tickMsg:
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.config.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.toggleTimer()
	case key.Matches(msg, m.keys.Escape):
		m.nav.Escape()
	case key.Matches(msg, m.keys.Enter):
		m.nav.Enter()
	case key.Matches(msg, m.keys.Up):
		m.nav.Move(nav.Up, m.history.Len())
	case key.Matches(msg, m.keys.Down):
		m.nav.Move(nav.Down, m.history.Len())
	case key.Matches(msg, m.keys.Left):
		m.nav.Move(nav.Left, m.history.Len())
	case key.Matches(msg, m.keys.Right):
		m.nav.Move(nav.Right, m.history.Len())
	case key.Matches(msg, m.keys.Delete):
		if m.nav.Active() == nav.Times {
			m.deleteSelected()
		}
	case key.Matches(msg, m.keys.Rebuild):
		if m.nav.Active() == nav.Times {
			m.history.Rebuild()
		}
	case key.Matches(msg, m.keys.NewScramble):
		m.newScramble()
	default:
		return m, nil
	}
	m.syncTimes()
	return m, nil
}

func (m *Model) toggleTimer() {
	solve, done := m.stopwatch.Toggle()
	if !done {
		return
	}
	m.history.Insert(solve)
	m.nav.Sync(m.history.Len())
	m.save()
	m.newScramble()
}

func (m *Model) deleteSelected() {
	row, ok := m.nav.Cursor()
	if !ok {
		return
	}
	if !m.history.Delete(row) {
		return
	}
	m.nav.Sync(m.history.Len())
	m.save()
}

func (m *Model) save() {
	if err := m.store.Save(m.history); err != nil {
		m.errMsg = fmt.Sprintf("failed to save times: %v", err)
		logErrf("%s\n", m.errMsg)
		return
	}
	m.errMsg = ""
}

func (m *Model) newScramble() {
	m.scramble = m.gen.Generate(m.config.ScrambleLength)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
