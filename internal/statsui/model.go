// Package statsui provides the Bubble Tea stats browser.
package statsui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/tuicube/internal/history"
	"github.com/verte-zerg/tuicube/internal/model"
	"github.com/verte-zerg/tuicube/internal/stats"
)

const (
	tabOverview = iota
	tabSolves
)

const plotHeight = 10

// Averaging windows the browser cycles through with -/=.
var windows = []int{stats.Ao5Window, stats.Ao12Window, 50, stats.Ao100Window, stats.Ao1000Window}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats browser over a loaded history.
type Model struct {
	history *history.History
	cfg     model.StatsConfig

	tabs      []string
	activeTab int
	overview  viewport.Model
	solves    table.Model

	width  int
	height int

	filterMode  bool
	filterInput textinput.Model
	filterError string
}

// NewModel constructs a stats browser. A zero window falls back to ao5.
func NewModel(h *history.History, cfg model.StatsConfig) *Model {
	if cfg.Window <= 0 {
		cfg.Window = stats.Ao5Window
	}
	m := &Model{
		history:  h,
		cfg:      cfg,
		tabs:     []string{"Overview", "Solves"},
		overview: viewport.New(0, 0),
		solves:   newSolveTable(cfg.Window),
	}
	m.filterInput = newFilterInput("Last: ")
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.cfg.Window = nextWindow(m.cfg.Window)
			m.refresh()
			return m, nil
		case "-":
			m.cfg.Window = prevWindow(m.cfg.Window)
			m.refresh()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabSolves {
				m.solves.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabSolves {
				m.solves.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.activeTab == tabSolves {
			m.solves, cmd = m.solves.Update(msg)
		} else {
			m.overview, cmd = m.overview.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := maxInt(1, lipgloss.Height(activeNavStyle.Render("X")))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.filterMode && m.filterError != "" {
		footerHeight++
	}
	bodyHeight = maxInt(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.solves.SetWidth(m.width)
	m.solves.SetHeight(bodyHeight)
	promptWidth := lipgloss.Width(m.filterInput.Prompt)
	m.filterInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabSolves {
		m.solves.Focus()
	} else {
		m.solves.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("Settings: last=%s  window=ao%d", last, m.cfg.Window)
	return padLines(m.renderTabs(), m.width) + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		help := headerStyle.Render("enter: apply  esc: cancel")
		if m.filterError != "" {
			return help + "\n" + errorStyle.Render(m.filterError)
		}
		return help
	}
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Last: /  Quit: q")
}

func (m *Model) renderBody() string {
	if m.filterMode {
		lines := []string{"Show the last N solves (empty for all)", m.filterInput.View()}
		return strings.Join(lines, "\n")
	}
	if m.history.Len() == 0 {
		return "No solves found."
	}
	if m.activeTab == tabSolves {
		return tableMutedStyle.Render(m.solves.View())
	}
	return m.overview.View()
}

// refresh rebuilds the overview text and the solve table for the current
// window and range.
func (m *Model) refresh() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	times := m.history.Times()
	rolling := stats.RollingAverages(times, m.cfg.Window)
	m.overview.SetContent(renderOverview(m.history.Summary(), lastN(times, m.cfg.Last), lastN(rolling, m.cfg.Last), m.cfg.Window, width))

	m.solves.SetColumns(solveColumns(m.cfg.Window))
	m.solves.SetRows(buildSolveRows(m.history, rolling, m.cfg.Last))
	m.solves.SetStyles(solveTableStyles())
}

func renderOverview(sum model.Summary, times, rolling []float64, window, width int) string {
	if sum.Count == 0 {
		return "No solves found."
	}
	sections := []string{renderSummaryCards(sum, width), renderTrend(times, width)}
	title := fmt.Sprintf("Last %d solves", len(times))
	plot := stats.RenderPlot(title, []stats.Series{
		{Name: "single", Values: times},
		{Name: fmt.Sprintf("ao%d", window), Values: rolling},
	}, width, plotHeight, true)
	sections = append(sections, strings.TrimRight(plot, "\n"))
	return strings.Join(sections, "\n\n")
}

// renderTrend draws the most recent singles that fit on one line.
func renderTrend(times []float64, width int) string {
	const label = "Trend  "
	return cardTitleStyle.Render(label) + stats.Sparkline(lastN(times, maxInt(1, width-len(label))))
}

func renderSummaryCards(sum model.Summary, width int) string {
	cards := []string{
		metricCard("Solves", strconv.Itoa(sum.Count)),
		metricCard("Best", stats.FormatSeconds(sum.PBSingle)),
		metricCard("Mean", stats.FormatSeconds(sum.Mean)),
		metricCard("Best ao5", stats.FormatSeconds(sum.PBAo5)),
		metricCard("Best ao12", stats.FormatSeconds(sum.PBAo12)),
		metricCard("ao100", stats.FormatSeconds(sum.Ao100)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func newSolveTable(window int) table.Model {
	t := table.New(
		table.WithColumns(solveColumns(window)),
		table.WithHeight(1),
	)
	t.SetStyles(solveTableStyles())
	return t
}

func solveColumns(window int) []table.Column {
	return []table.Column{
		{Title: "#", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "ao5", Width: 9},
		{Title: "ao12", Width: 9},
		{Title: fmt.Sprintf("ao%d", window), Width: 9},
	}
}

// buildSolveRows lists solves newest first. The rolling column is computed
// over the full history so the window is not cut by the range limit.
func buildSolveRows(h *history.History, rolling []float64, last int) []table.Row {
	n := h.Len()
	count := n
	if last > 0 && last < n {
		count = last
	}
	rows := make([]table.Row, 0, count)
	for row := 0; row < count; row++ {
		s, _ := h.Row(row)
		rows = append(rows, table.Row{
			strconv.Itoa(n - row),
			fmt.Sprintf("%.3f", s.Time),
			stats.FormatSeconds(s.Ao5),
			stats.FormatSeconds(s.Ao12),
			formatRolling(rolling[n-row-1]),
		})
	}
	return rows
}

func formatRolling(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

func solveTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 7
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	if m.cfg.Last > 0 {
		m.filterInput.SetValue(strconv.Itoa(m.cfg.Last))
	} else {
		m.filterInput.SetValue("")
	}
	m.filterInput.CursorEnd()
	return m, m.filterInput.Focus()
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopFilter()
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.stopFilter()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) stopFilter() {
	m.filterMode = false
	m.filterError = ""
	m.filterInput.Blur()
}

func (m *Model) applyFilter() error {
	value := strings.TrimSpace(m.filterInput.Value())
	if value == "" {
		m.cfg.Last = 0
		return nil
	}
	last, err := strconv.Atoi(value)
	if err != nil || last < 0 {
		return fmt.Errorf("last must be a non-negative integer")
	}
	m.cfg.Last = last
	return nil
}

func nextWindow(n int) int {
	for _, w := range windows {
		if w > n {
			return w
		}
	}
	return windows[len(windows)-1]
}

func prevWindow(n int) int {
	for i := len(windows) - 1; i >= 0; i-- {
		if windows[i] < n {
			return windows[i]
		}
	}
	return windows[0]
}

func lastN(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = padLine(truncateLine(line, width), width)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
