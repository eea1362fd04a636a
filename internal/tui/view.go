package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/tuicube/internal/nav"
	"github.com/verte-zerg/tuicube/internal/scramble"
	"github.com/verte-zerg/tuicube/internal/stats"
)

const (
	leftColumnWidth = 40
	topRowHeight    = 5
	midRowHeight    = 10
	minBottomHeight = 5
	recentPlotSize  = 200
)

var (
	activeColor   = lipgloss.Color("10")
	selectedColor = lipgloss.Color("12")
	normalColor   = lipgloss.Color("7")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	runningStyle = lipgloss.NewStyle().Foreground(activeColor).Bold(true)
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	leftW, rightW := m.columnWidths()
	bottomH := m.height - topRowHeight - midRowHeight - 1
	if bottomH < minBottomHeight {
		bottomH = minBottomHeight
	}

	toolsW := leftW / 2
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(nav.Tools, toolsW, topRowHeight, m.toolsBody(toolsW-2)),
		m.panel(nav.Help, leftW-toolsW, topRowHeight, m.helpBody()),
		m.panel(nav.Scramble, rightW, topRowHeight, m.scrambleBody(rightW-2)),
	)
	mid := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(nav.Timer, leftW, midRowHeight, m.timerBody(leftW-2, midRowHeight-3)),
		m.panel(nav.Stats, rightW, midRowHeight, m.statsBody()),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(nav.Times, leftW, bottomH, m.times.View()),
		m.panel(nav.Main, rightW, bottomH, m.mainBody(rightW-2, bottomH-3)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, mid, bottom, m.renderFooter())
}

func (m *Model) columnWidths() (int, int) {
	leftW := leftColumnWidth
	if m.width < leftColumnWidth*2 {
		leftW = m.width / 2
	}
	return leftW, m.width - leftW
}

func (m *Model) panel(b nav.Block, width, height int, body string) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}
	lines := append([]string{titleStyle.Render(b.String())}, strings.Split(body, "\n")...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, line := range lines {
		lines[i] = truncateLine(line, innerW)
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(borderColor(m.nav.Style(b))).
		Width(innerW).
		Height(innerH)
	return style.Render(strings.Join(lines, "\n"))
}

func borderColor(class nav.StyleClass) lipgloss.Color {
	switch class {
	case nav.Active:
		return activeColor
	case nav.Selected:
		return selectedColor
	default:
		return normalColor
	}
}

func (m *Model) toolsBody(width int) string {
	path := truncateLine(m.store.Path(), width)
	return fmt.Sprintf("%s\n%d solves · tick %s", mutedStyle.Render(path), m.history.Len(), m.config.TickInterval)
}

func (m *Model) helpBody() string {
	return mutedStyle.Render("space: timer\nenter/esc: focus")
}

func (m *Model) scrambleBody(width int) string {
	return strings.Join(scramble.Wrap(m.scramble, width), "\n")
}

func (m *Model) timerBody(width, height int) string {
	text := idleStyle.Render(m.stopwatch.Text())
	if m.stopwatch.Running() {
		text = runningStyle.Render(m.stopwatch.Text())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func (m *Model) statsBody() string {
	return strings.Join(stats.SummaryLines(m.history.Summary()), "\n")
}

func (m *Model) mainBody(width, height int) string {
	if m.nav.Active() == nav.Help {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	times := m.history.Times()
	if len(times) > recentPlotSize {
		times = times[len(times)-recentPlotSize:]
	}
	if len(times) == 0 {
		return mutedStyle.Render("No solves yet. Press space to start.")
	}
	plot := stats.RenderPlot("", []stats.Series{
		{Name: "single", Values: times},
		{Name: "ao5", Values: stats.RollingAverages(times, stats.Ao5Window)},
	}, width, height-1, true)
	return strings.TrimRight(plot, "\n")
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Render(truncateLine(m.errMsg, m.width))
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func newTimesTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Time", Width: 9},
			{Title: "ao5", Width: 9},
			{Title: "ao12", Width: 9},
		}),
		table.WithHeight(minBottomHeight),
	)
}

// syncTimes refreshes the Times table rows, height, and cursor from the
// history and the navigator.
func (m *Model) syncTimes() {
	n := m.history.Len()
	rows := make([]table.Row, 0, n)
	for row := 0; row < n; row++ {
		s, _ := m.history.Row(row)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", n-row),
			fmt.Sprintf("%.3f", s.Time),
			stats.FormatSeconds(s.Ao5),
			stats.FormatSeconds(s.Ao12),
		})
	}
	m.times.SetRows(rows)
	if m.height > 0 {
		bottomH := m.height - topRowHeight - midRowHeight - 1
		if bottomH < minBottomHeight {
			bottomH = minBottomHeight
		}
		// Panel borders and title take three lines; the table height
		// includes its own header.
		m.times.SetHeight(maxInt(1, bottomH-3))
	}
	styles := timesTableStyles()
	if cursor, ok := m.nav.Cursor(); ok {
		m.times.SetCursor(cursor)
	} else {
		styles.Selected = styles.Cell
		m.times.SetCursor(0)
	}
	m.times.SetStyles(styles)
}

func timesTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(selectedColor).
		Bold(true)
	return styles
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
