package stats

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"inkwell/internal/model"
)

// Report bundles everything the stats command prints.
type Report struct {
	Analytics model.WritingAnalytics
	Stories   []model.Story
	// WordCount resolves a story's word count; the store provides it.
	WordCount func(storyID int64) int
	// BarWidth sizes goal progress bars; 0 means the default width.
	BarWidth int
}

const defaultBarWidth = 20

// Render writes the full analytics report.
func (r Report) Render(w io.Writer) error {
	if err := r.renderSummary(w); err != nil {
		return err
	}
	if err := r.renderWeekly(w); err != nil {
		return err
	}
	if err := r.renderMonthlyGoals(w); err != nil {
		return err
	}
	if err := r.renderProductiveHours(w); err != nil {
		return err
	}
	return r.renderStories(w)
}

func (r Report) renderSummary(w io.Writer) error {
	a := r.Analytics
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total words written: %d\n", a.TotalWordsWritten); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words today: %d\n", a.DailyWordCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Streak: %d days\n", a.StreakDays); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg session: %.1f min\n", a.AverageSessionLength); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func (r Report) renderWeekly(w io.Writer) error {
	values := make([]float64, len(r.Analytics.WeeklyProgress))
	for i, v := range r.Analytics.WeeklyProgress {
		values[i] = float64(v)
	}
	if _, err := fmt.Fprintln(w, "Weekly progress (Mon-Sun)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s  %s\n", Sparkline(values), weeklyCounts(r.Analytics.WeeklyProgress)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func weeklyCounts(progress [7]int) string {
	parts := make([]string, len(progress))
	for i, v := range progress {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func (r Report) renderMonthlyGoals(w io.Writer) error {
	goals := r.Analytics.MonthlyGoals
	if len(goals) == 0 {
		return nil
	}
	barWidth := r.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		bar := ProgressBar(GoalProgress(g.Achieved, g.Target), barWidth)
		rows = append(rows, []string{
			g.Month,
			strconv.Itoa(g.Achieved),
			strconv.Itoa(g.Target),
			bar,
		})
	}
	if _, err := fmt.Fprintln(w, "Monthly goals"); err != nil {
		return err
	}
	lines := formatTable(
		[]string{"Month", "Achieved", "Target", "Progress"},
		rows,
		map[int]bool{1: true, 2: true},
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func (r Report) renderProductiveHours(w io.Writer) error {
	hours := r.Analytics.MostProductiveHours
	if len(hours) == 0 {
		return nil
	}
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, h := range sorted {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	if _, err := fmt.Fprintf(w, "Most productive hours: %s\n", strings.Join(parts, ", ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func (r Report) renderStories(w io.Writer) error {
	if len(r.Stories) == 0 {
		_, err := fmt.Fprintln(w, "No stories yet.")
		return err
	}
	rows := make([][]string, 0, len(r.Stories))
	for _, story := range r.Stories {
		words := 0
		if r.WordCount != nil {
			words = r.WordCount(story.ID)
		}
		title := story.Title
		if title == "" {
			title = "(untitled)"
		}
		rows = append(rows, []string{
			strconv.FormatInt(story.ID, 10),
			title,
			story.Status,
			strconv.Itoa(len(story.Paragraphs)),
			strconv.Itoa(words),
		})
	}
	if _, err := fmt.Fprintln(w, "Stories"); err != nil {
		return err
	}
	lines := formatTable(
		[]string{"ID", "Title", "Status", "Paragraphs", "Words"},
		rows,
		map[int]bool{0: true, 3: true, 4: true},
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
