package stats

import (
	"strings"
	"testing"

	"inkwell/internal/model"
)

func TestReportRender(t *testing.T) {
	report := Report{
		Analytics: model.WritingAnalytics{
			DailyWordCount:       300,
			WeeklyProgress:       [7]int{100, 0, 250, 300, 0, 0, 400},
			MonthlyGoals:         []model.MonthlyGoal{{Target: 10000, Achieved: 4200, Month: "2024-03"}},
			StreakDays:           5,
			AverageSessionLength: 24.5,
			MostProductiveHours:  []int{21, 9},
			TotalWordsWritten:    15200,
		},
		Stories: []model.Story{
			{ID: 1, Title: "Tidelands", Status: "drafting", Paragraphs: []model.Paragraph{{ID: 2}}},
			{ID: 3, Title: "", Status: "idea"},
		},
		WordCount: func(storyID int64) int {
			if storyID == 1 {
				return 1200
			}
			return 0
		},
	}

	var b strings.Builder
	if err := report.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"Total words written: 15200",
		"Words today: 300",
		"Streak: 5 days",
		"Avg session: 24.5 min",
		"Weekly progress (Mon-Sun)",
		"100 0 250 300 0 0 400",
		"Monthly goals",
		"2024-03",
		"Most productive hours: 09:00, 21:00",
		"Tidelands",
		"(untitled)",
		"1200",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReportRenderEmpty(t *testing.T) {
	var b strings.Builder
	if err := (Report{}).Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "No stories yet.") {
		t.Fatalf("expected empty-state line, got:\n%s", out)
	}
	if strings.Contains(out, "Monthly goals") {
		t.Fatalf("monthly goals section should be omitted when empty:\n%s", out)
	}
}

func TestFormatTableAlignment(t *testing.T) {
	lines := formatTable(
		[]string{"ID", "Title"},
		[][]string{{"1", "Short"}, {"42", "A longer title"}},
		map[int]bool{0: true},
	)
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], " 1") {
		t.Fatalf("expected right-aligned id column: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "42") {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
