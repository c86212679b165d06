package stats

import "testing"

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name  string
		count int
		goal  int
		want  float64
	}{
		{"halfway", 250, 500, 0.5},
		{"over goal clamps", 700, 500, 1},
		{"zero goal is done", 10, 0, 1},
		{"negative count clamps", -5, 500, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GoalProgress(tc.count, tc.goal); got != tc.want {
				t.Fatalf("GoalProgress(%d, %d) = %v, want %v", tc.count, tc.goal, got, tc.want)
			}
		})
	}
}

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(300, 10); got != 30 {
		t.Fatalf("expected 30 wpm, got %v", got)
	}
	if got := WordsPerMinute(300, 0); got != 0 {
		t.Fatalf("expected 0 wpm for zero minutes, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 5, 10})
	if len(got) != 3 {
		t.Fatalf("expected 3 cells, got %q", got)
	}
	if got[0] != sparkChars[0] || got[2] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("expected min/max at the ends, got %q", got)
	}
	flat := Sparkline([]float64{4, 4, 4, 4})
	if len(flat) != 4 {
		t.Fatalf("expected 4 cells for flat series, got %q", flat)
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(0.5, 10); got != "[#####-----]" {
		t.Fatalf("unexpected bar: %q", got)
	}
	if got := ProgressBar(2, 4); got != "[####]" {
		t.Fatalf("over-full bar should clamp: %q", got)
	}
	if got := ProgressBar(0.5, 0); got != "" {
		t.Fatalf("zero width should be empty: %q", got)
	}
}
