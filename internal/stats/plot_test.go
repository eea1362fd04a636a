package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Recent solves", []Series{
		{Name: "single", Values: []float64{12, 10, 14, 9, 11}},
		{Name: "ao5", Values: []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN(), 11}},
	}, 12, 4, false)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Recent solves\n") {
		t.Fatalf("expected title first, got %q", out)
	}
	if !strings.Contains(out, "14.00") || !strings.Contains(out, "9.00") {
		t.Fatalf("expected axis labels with min/max, got %q", out)
	}
	if !strings.Contains(out, "single") || !strings.Contains(out, "ao5") {
		t.Fatalf("expected legend entries, got %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+4+1 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes")
	}
}

func TestRenderPlotSkipsEmptySeries(t *testing.T) {
	if out := RenderPlot("x", []Series{{Name: "a", Values: []float64{math.NaN()}}}, 10, 3, false); out != "" {
		t.Fatalf("expected empty plot, got %q", out)
	}
}

func TestPlotWidthFor(t *testing.T) {
	if got := PlotWidthFor(80, 5); got != 80-5-2 {
		t.Fatalf("expected 73, got %d", got)
	}
	if got := PlotWidthFor(0, 5); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
}

func TestValueToRowOrientation(t *testing.T) {
	if got := valueToRow(20, 10, 20, 8); got != 0 {
		t.Fatalf("expected slowest value on top row, got %d", got)
	}
	if got := valueToRow(10, 10, 20, 8); got != 7 {
		t.Fatalf("expected fastest value on bottom row, got %d", got)
	}
}
