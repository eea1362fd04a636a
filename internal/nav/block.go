// Package nav implements panel focus and list selection for the timer screen.
package nav

// Block identifies a focusable panel.
type Block int

// Panels. Home is the unfocused state and never appears in the layout.
const (
	Home Block = iota
	Tools
	Help
	Timer
	Times
	Scramble
	Stats
	Main
)

// String returns the panel title.
func (b Block) String() string {
	switch b {
	case Home:
		return "Home"
	case Tools:
		return "Tools"
	case Help:
		return "Help"
	case Timer:
		return "Timer"
	case Times:
		return "Times"
	case Scramble:
		return "Scramble"
	case Stats:
		return "Stats"
	case Main:
		return "Main"
	default:
		return "Unknown"
	}
}

// Pos is a cell of the layout grid.
type Pos struct {
	Row int
	Col int
}

// layout maps grid cells to panels. Rows may differ in length.
var layout = [...][]Block{
	{Tools, Help, Scramble},
	{Timer, Stats},
	{Times, Main},
}

// StartPos is the initial grid cursor position.
var StartPos = Pos{Row: 2, Col: 0}

// Rows returns the number of layout rows.
func Rows() int {
	return len(layout)
}

// Cols returns the number of cells in the given row, or 0 for an invalid row.
func Cols(row int) int {
	if row < 0 || row >= len(layout) {
		return 0
	}
	return len(layout[row])
}

// BlockAt returns the panel at p.
func BlockAt(p Pos) (Block, bool) {
	if p.Col < 0 || p.Col >= Cols(p.Row) {
		return Home, false
	}
	return layout[p.Row][p.Col], true
}

// Valid reports whether p addresses a layout cell.
func Valid(p Pos) bool {
	_, ok := BlockAt(p)
	return ok
}
