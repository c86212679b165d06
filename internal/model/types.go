// Package model defines shared data structures.
package model

import "time"

// DefaultSessionGoal is the word target used when none is given.
const DefaultSessionGoal = 500

// SampleStatus is the review state of a writing sample.
type SampleStatus string

// Writing sample review states.
const (
	SamplePending  SampleStatus = "pending"
	SampleApproved SampleStatus = "approved"
	SampleRejected SampleStatus = "rejected"
)

// Paragraph is an atomic unit of story content. Position in the story's
// paragraph slice is the narrative order; there is no explicit order field.
type Paragraph struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Story is a writable work composed of ordered paragraphs plus metadata.
type Story struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Genre       string      `json:"genre"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	CreatedDate string      `json:"createdDate"`
	Paragraphs  []Paragraph `json:"paragraphs"`
}

// StoryUpdate carries optional field changes for a story. Nil fields are
// left untouched.
type StoryUpdate struct {
	Title       *string
	Genre       *string
	Description *string
	Status      *string
}

// User is the single optional current-user record.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WritingSample is a submission keyed by (user, story) with a review status.
type WritingSample struct {
	UserID      int64        `json:"userId"`
	StoryID     int64        `json:"storyId"`
	Content     string       `json:"content"`
	Status      SampleStatus `json:"status"`
	SubmittedAt string       `json:"submittedAt"`
}

// WritingSession tracks the active writing interval. It is never persisted,
// so it keeps real time.Time values.
type WritingSession struct {
	StoryID     int64
	StartTime   time.Time
	EndTime     *time.Time
	WordCount   int
	WordsAdded  int
	SessionGoal int
	Notes       string
}

// MonthlyGoal is a per-month word target and what was achieved against it.
type MonthlyGoal struct {
	Target   int    `json:"target"`
	Achieved int    `json:"achieved"`
	Month    string `json:"month"`
}

// WritingAnalytics aggregates writing activity. All counters are
// non-decreasing except DailyWordCount, which is also settable, and
// StreakDays, which can be reset.
type WritingAnalytics struct {
	DailyWordCount       int           `json:"dailyWordCount"`
	WeeklyProgress       [7]int        `json:"weeklyProgress"`
	MonthlyGoals         []MonthlyGoal `json:"monthlyGoals"`
	StreakDays           int           `json:"streakDays"`
	AverageSessionLength float64       `json:"averageSessionLength"`
	MostProductiveHours  []int         `json:"mostProductiveHours"`
	TotalWordsWritten    int           `json:"totalWordsWritten"`
}

// Preferences holds user-facing settings.
type Preferences struct {
	AutoSave      bool `json:"autoSave"`
	SessionGoal   int  `json:"sessionGoal"`
	ShowWordCount bool `json:"showWordCount"`
	DarkMode      bool `json:"darkMode"`
}

// PreferencesUpdate carries optional preference changes. Nil fields are
// left untouched.
type PreferencesUpdate struct {
	AutoSave      *bool
	SessionGoal   *int
	ShowWordCount *bool
	DarkMode      *bool
}

// DefaultPreferences returns the out-of-the-box preference values.
func DefaultPreferences() Preferences {
	return Preferences{
		AutoSave:      true,
		SessionGoal:   DefaultSessionGoal,
		ShowWordCount: true,
		DarkMode:      false,
	}
}

// NewAnalytics returns zeroed analytics.
func NewAnalytics() WritingAnalytics {
	return WritingAnalytics{}
}
