package nav

// Direction is a grid or list movement intent.
type Direction int

// Directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// StyleClass tells a renderer how to highlight a panel.
type StyleClass int

// Style classes.
const (
	Normal StyleClass = iota
	Selected
	Active
)

// Navigator tracks the grid cursor, the selected and active panels, and the
// selection cursor of the Times list. The list cursor indexes the
// most-recent-first view and is -1 when nothing is selected.
type Navigator struct {
	pos      Pos
	selected Block
	active   Block
	cursor   int
}

// New returns a navigator at StartPos with Home active.
func New() *Navigator {
	selected, _ := BlockAt(StartPos)
	return &Navigator{
		pos:      StartPos,
		selected: selected,
		active:   Home,
		cursor:   -1,
	}
}

// Pos returns the grid cursor position.
func (n *Navigator) Pos() Pos {
	return n.pos
}

// Selected returns the panel under the grid cursor.
func (n *Navigator) Selected() Block {
	return n.selected
}

// Active returns the focused panel.
func (n *Navigator) Active() Block {
	return n.active
}

// Cursor returns the list cursor, if set.
func (n *Navigator) Cursor() (int, bool) {
	if n.cursor < 0 {
		return 0, false
	}
	return n.cursor, true
}

// Move moves the grid cursor while Home is active. While Times is active,
// Up and Down move the list cursor over listLen rows instead. Any other
// active panel ignores movement.
func (n *Navigator) Move(dir Direction, listLen int) {
	switch n.active {
	case Home:
		if n.step(dir) {
			n.selected, _ = BlockAt(n.pos)
		}
	case Times:
		switch dir {
		case Up:
			n.Previous(listLen)
		case Down:
			n.Next(listLen)
		}
	}
}

func (n *Navigator) step(dir Direction) bool {
	next := n.pos
	switch dir {
	case Up:
		next.Row--
	case Down:
		next.Row++
	case Left:
		next.Col--
	case Right:
		next.Col++
	}
	if next.Row < 0 || next.Row >= Rows() || next.Col < 0 {
		return false
	}
	if cols := Cols(next.Row); next.Col >= cols {
		if next.Row == n.pos.Row {
			return false
		}
		next.Col = cols - 1
	}
	n.pos = next
	return true
}

// Enter focuses the selected panel.
func (n *Navigator) Enter() {
	n.active = n.selected
}

// Escape returns focus to Home.
func (n *Navigator) Escape() {
	if n.active != Home {
		n.active = Home
	}
}

// Next moves the list cursor down, wrapping to the first row.
func (n *Navigator) Next(listLen int) {
	if listLen <= 0 {
		return
	}
	switch {
	case n.cursor < 0:
		n.cursor = 0
	case n.cursor >= listLen-1:
		n.cursor = 0
	default:
		n.cursor++
	}
}

// Previous moves the list cursor up, wrapping to the last row.
func (n *Navigator) Previous(listLen int) {
	if listLen <= 0 {
		return
	}
	switch {
	case n.cursor < 0:
		n.cursor = 0
	case n.cursor == 0, n.cursor >= listLen:
		n.cursor = listLen - 1
	default:
		n.cursor--
	}
}

// Sync clamps the list cursor after the list length changed. An empty list
// clears it; a cursor past the end steps back to the last row.
func (n *Navigator) Sync(listLen int) {
	switch {
	case listLen <= 0:
		n.cursor = -1
	case n.cursor >= listLen:
		n.cursor = listLen - 1
	}
}

// Style returns how the given panel should be highlighted.
func (n *Navigator) Style(b Block) StyleClass {
	switch b {
	case n.active:
		return Active
	case n.selected:
		return Selected
	default:
		return Normal
	}
}
