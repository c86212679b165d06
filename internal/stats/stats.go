// Package stats contains writing statistics calculations and reporting.
package stats

import (
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

const sparkChars = " .:-=+*#%@"

const terminalWidthBackup = 80

// GoalProgress returns the fraction of the goal reached, clamped to [0, 1].
// A non-positive goal reports full progress.
func GoalProgress(count, goal int) float64 {
	if goal <= 0 {
		return 1
	}
	p := float64(count) / float64(goal)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// WordsPerMinute computes the writing pace for a session.
func WordsPerMinute(words int, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return float64(words) / minutes
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
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

// ProgressBar renders a fixed-width bar for a [0, 1] fraction.
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(math.Round(fraction * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// TerminalWidth reports the stdout terminal width with an 80-column fallback.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
