// Package stats contains solve statistics and their text rendering.
package stats

import (
	"math"
	"sort"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// Window sizes for the rolling averages shown to the user.
const (
	Ao5Window    = 5
	Ao12Window   = 12
	Ao100Window  = 100
	Ao1000Window = 1000
)

// TrimmedMean sorts the samples, drops exactly one lowest and one highest
// value, and returns the mean of the rest. Duplicates of an extreme value
// beyond the dropped one are kept. It needs at least three samples.
func TrimmedMean(samples []float64) (float64, bool) {
	n := len(samples)
	if n < 3 {
		return 0, false
	}
	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)
	var sum float64
	for _, v := range sorted[1 : n-1] {
		sum += v
	}
	return sum / float64(n-2), true
}

// AverageOf returns the trimmed mean of the first n samples of a
// most-recent-first window. It is undefined until the window holds n samples.
func AverageOf(recentFirst []float64, n int) (float64, bool) {
	if n < 3 || len(recentFirst) < n {
		return 0, false
	}
	return TrimmedMean(recentFirst[:n])
}

// Mean returns the arithmetic mean of the values.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// RollingAverages computes the trimmed mean ending at every position of an
// oldest-first series. Positions with fewer than window samples get NaN.
func RollingAverages(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		out[i] = math.NaN()
		if i+1 < window {
			continue
		}
		if avg, ok := TrimmedMean(values[i+1-window : i+1]); ok {
			out[i] = avg
		}
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func minMax(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.IsInf(minVal, 1) {
		return 0, 0
	}
	return minVal, maxVal
}
