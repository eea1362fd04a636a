package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/tuicube/internal/model"
)

const missingValue = "-"

// SummaryLines formats the aggregates as an aligned text table.
func SummaryLines(sum model.Summary) []string {
	headers := []string{"", "Current", "Best"}
	rows := [][]string{
		{"single", formatSeconds(sum.Last), formatSeconds(sum.PBSingle)},
		{"ao5", formatSeconds(sum.CurrentAo5), formatSeconds(sum.PBAo5)},
		{"ao12", formatSeconds(sum.CurrentAo12), formatSeconds(sum.PBAo12)},
		{"ao100", formatSeconds(sum.Ao100), ""},
		{"ao1000", formatSeconds(sum.Ao1000), ""},
		{"mean", formatSeconds(sum.Mean), ""},
	}
	return formatTable(headers, rows, map[int]bool{1: true, 2: true})
}

// RenderSummary prints the solve count and the summary table.
func RenderSummary(w io.Writer, sum model.Summary) error {
	if sum.Count == 0 {
		_, err := fmt.Fprintln(w, "No solves found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Solves: %d\n", sum.Count); err != nil {
		return err
	}
	for _, line := range SummaryLines(sum) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// FormatSeconds renders an optional duration in seconds with three decimals.
func FormatSeconds(v *float64) string {
	return formatSeconds(v)
}

func formatSeconds(v *float64) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%.3f", *v)
}
