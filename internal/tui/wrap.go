// Package tui provides the Bubble Tea writing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines no wider than width display cells,
// preferring word boundaries. Words wider than the limit are broken.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var current []rune
	lineWidth := 0
	flush := func() {
		lines = append(lines, string(current))
		current = current[:0]
		lineWidth = 0
	}
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			flush()
		}
		if wordWidth > width {
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if lineWidth > 0 && lineWidth+rw > width {
					flush()
				}
				current = append(current, r)
				lineWidth += rw
			}
			continue
		}
		if lineWidth > 0 {
			current = append(current, ' ')
			lineWidth++
		}
		current = append(current, []rune(word)...)
		lineWidth += wordWidth
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}
