package stats

import (
	"math"
	"testing"
)

func TestTrimmedMeanDropsOneMinAndOneMax(t *testing.T) {
	got, ok := TrimmedMean([]float64{8, 12, 9, 11, 10})
	if !ok {
		t.Fatalf("expected a defined mean")
	}
	if got != 10.0 {
		t.Fatalf("expected 10.0, got %v", got)
	}
}

func TestTrimmedMeanKeepsDuplicateExtremes(t *testing.T) {
	got, ok := TrimmedMean([]float64{5, 5, 5, 9, 9})
	if !ok {
		t.Fatalf("expected a defined mean")
	}
	want := (5.0 + 5.0 + 9.0) / 3.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTrimmedMeanMatchesSumFormula(t *testing.T) {
	samples := []float64{3.21, 7.5, 1.25, 9.75, 4.5, 4.5, 6.0, 2.0, 8.25, 5.5, 1.25, 9.75}
	got, ok := TrimmedMean(samples)
	if !ok {
		t.Fatalf("expected a defined mean")
	}
	var sum float64
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	want := (sum - lo - hi) / float64(len(samples)-2)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTrimmedMeanTooFewSamples(t *testing.T) {
	if _, ok := TrimmedMean([]float64{1, 2}); ok {
		t.Fatalf("expected undefined mean for two samples")
	}
	if _, ok := TrimmedMean(nil); ok {
		t.Fatalf("expected undefined mean for no samples")
	}
}

func TestTrimmedMeanDoesNotMutateInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	TrimmedMean(samples)
	if samples[0] != 3 || samples[1] != 1 || samples[2] != 2 {
		t.Fatalf("input reordered: %v", samples)
	}
}

func TestAverageOfUsesMostRecentWindow(t *testing.T) {
	recent := []float64{8, 12, 9, 11, 10, 100, 100}
	got, ok := AverageOf(recent, Ao5Window)
	if !ok || got != 10.0 {
		t.Fatalf("expected 10.0, got %v (ok=%v)", got, ok)
	}
	if _, ok := AverageOf(recent[:4], Ao5Window); ok {
		t.Fatalf("expected undefined average with four samples")
	}
}

func TestRollingAverages(t *testing.T) {
	out := RollingAverages([]float64{10, 11, 9, 12, 8, 20}, 5)
	for i := 0; i < 4; i++ {
		if !math.IsNaN(out[i]) {
			t.Fatalf("expected NaN at %d, got %v", i, out[i])
		}
	}
	if out[4] != 10.0 {
		t.Fatalf("expected 10.0 at 4, got %v", out[4])
	}
	if want := (9.0 + 12.0 + 11.0) / 3.0; math.Abs(out[5]-want) > 1e-12 {
		t.Fatalf("expected %v at 5, got %v", want, out[5])
	}
}

func TestMean(t *testing.T) {
	if _, ok := Mean(nil); ok {
		t.Fatalf("expected undefined mean for empty input")
	}
	if got, _ := Mean([]float64{1, 2, 3, 6}); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 9})
	if got != " @" {
		t.Fatalf("expected min/max glyphs, got %q", got)
	}
}
