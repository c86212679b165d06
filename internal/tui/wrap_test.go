package tui

import (
	"strings"
	"testing"
)

func TestWrapTextWordBoundaries(t *testing.T) {
	got := wrapText("the quick brown fox jumps", 10)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
	if strings.Contains(got, "qui\nck") {
		t.Fatalf("word was broken unnecessarily: %q", got)
	}
	joined := strings.ReplaceAll(got, "\n", " ")
	if joined != "the quick brown fox jumps" {
		t.Fatalf("content changed by wrapping: %q", joined)
	}
}

func TestWrapTextLongWord(t *testing.T) {
	got := wrapText("antidisestablishmentarianism", 8)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 8 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
	if strings.ReplaceAll(got, "\n", "") != "antidisestablishmentarianism" {
		t.Fatalf("characters lost while breaking: %q", got)
	}
}

func TestWrapTextPreservesBlankLines(t *testing.T) {
	got := wrapText("one\n\ntwo", 20)
	if got != "one\n\ntwo" {
		t.Fatalf("blank line not preserved: %q", got)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if got := wrapText("unchanged text", 0); got != "unchanged text" {
		t.Fatalf("zero width must be a no-op: %q", got)
	}
}
