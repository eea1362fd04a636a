package scramble

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks a scramble into lines no wider than width, splitting only
// between moves.
func Wrap(scramble string, width int) []string {
	moves := strings.Fields(scramble)
	if len(moves) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(moves, " ")}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, move := range moves {
		w := runewidth.StringWidth(move)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(move)
		lineWidth += w
	}
	return append(lines, line.String())
}
