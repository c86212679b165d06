package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPickFromGivenPrompts(t *testing.T) {
	g := NewSeeded(1)
	prompts := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := g.Pick(prompts)
		if p != "a" && p != "b" && p != "c" {
			t.Fatalf("picked prompt outside the list: %q", p)
		}
		seen[p] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected some variety over 50 picks, saw %v", seen)
	}
}

func TestPickFallsBackToDefaults(t *testing.T) {
	g := NewSeeded(1)
	p := g.Pick(nil)
	found := false
	for _, d := range Defaults {
		if p == d {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a default prompt, got %q", p)
	}
}

func TestLoadPrompts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.txt")
	content := "# mine\n\nfirst prompt\n  second prompt  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write prompts: %v", err)
	}
	prompts, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}
	if len(prompts) != 2 || prompts[0] != "first prompt" || prompts[1] != "second prompt" {
		t.Fatalf("unexpected prompts: %#v", prompts)
	}
}

func TestLoadPromptsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.txt")
	if err := os.WriteFile(path, []byte("\n# only comments\n"), 0o644); err != nil {
		t.Fatalf("write prompts: %v", err)
	}
	if _, err := LoadPrompts(path); err == nil {
		t.Fatalf("expected error for empty prompt file")
	}
}
