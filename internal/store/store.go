// Package store owns all story, session, analytics, and preference state
// and persists a subset of it to durable local storage after every mutation.
package store

import (
	"fmt"
	"regexp"
	"time"

	"inkwell/internal/model"
)

// wordSplit mirrors splitting content on runs of whitespace. Splitting an
// empty string yields one empty token, so an empty paragraph counts as one
// word; callers rely on that exact behavior.
var wordSplit = regexp.MustCompile(`\s+`)

// Store is the single owner of application state. It is not safe for
// concurrent use; the app drives it from one goroutine.
//
// Every mutating operation persists the {stories, user, analytics,
// preferences} subset through the Persister. Persistence is best-effort:
// on write failure the in-memory change stands and the error is returned
// as a warning, never rolled back.
type Store struct {
	persister Persister
	now       func() time.Time
	nextID    int64

	stories        []model.Story
	currentStoryID int64
	user           *model.User
	samples        []model.WritingSample
	session        *model.WritingSession
	analytics      model.WritingAnalytics
	preferences    model.Preferences
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithDefaultPreferences seeds preferences for a first run. Ignored when a
// persisted record already carries preferences.
func WithDefaultPreferences(prefs model.Preferences) Option {
	return func(s *Store) {
		s.preferences = prefs
	}
}

// New hydrates a store from the persister. Stories, user, analytics, and
// preferences come from the persisted record when one exists; writing
// samples, the active session, and the current story always start empty.
// A failed read counts as no usable state: the store starts from the
// default empty state rather than refusing to construct.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:   p,
		now:         time.Now,
		nextID:      1,
		stories:     []model.Story{},
		preferences: model.DefaultPreferences(),
	}
	for _, opt := range opts {
		opt(s)
	}

	st, err := p.Load()
	if err != nil {
		st = nil
	}
	if st != nil {
		if st.Stories != nil {
			s.stories = st.Stories
		}
		s.user = st.User
		s.analytics = st.Analytics
		s.preferences = st.Preferences
	}
	s.seedNextID()
	return s
}

// seedNextID moves the id counter above every id in the hydrated state.
func (s *Store) seedNextID() {
	for _, story := range s.stories {
		if story.ID >= s.nextID {
			s.nextID = story.ID + 1
		}
		for _, p := range story.Paragraphs {
			if p.ID >= s.nextID {
				s.nextID = p.ID + 1
			}
		}
	}
}

func (s *Store) newID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) persist() error {
	st := persistedState{
		Stories:     s.stories,
		User:        s.user,
		Analytics:   s.analytics,
		Preferences: s.preferences,
	}
	if err := s.persister.Save(st); err != nil {
		return fmt.Errorf("state kept in memory only: %w", err)
	}
	return nil
}

func (s *Store) findStory(id int64) *model.Story {
	for i := range s.stories {
		if s.stories[i].ID == id {
			return &s.stories[i]
		}
	}
	return nil
}

func cloneStory(story model.Story) model.Story {
	out := story
	out.Paragraphs = make([]model.Paragraph, len(story.Paragraphs))
	copy(out.Paragraphs, story.Paragraphs)
	return out
}

// CreateStory adds a new story, stamps its creation date, and makes it the
// current story.
func (s *Store) CreateStory(data model.Story) (model.Story, error) {
	story := data
	story.ID = s.newID()
	story.CreatedDate = s.now().Format(time.RFC3339)
	story.Paragraphs = []model.Paragraph{}
	s.stories = append(s.stories, story)
	s.currentStoryID = story.ID
	return cloneStory(story), s.persist()
}

// UpdateStory merges the given fields into the matching story. An unknown
// id is a no-op but still triggers a persistence write.
func (s *Store) UpdateStory(id int64, upd model.StoryUpdate) error {
	if story := s.findStory(id); story != nil {
		if upd.Title != nil {
			story.Title = *upd.Title
		}
		if upd.Genre != nil {
			story.Genre = *upd.Genre
		}
		if upd.Description != nil {
			story.Description = *upd.Description
		}
		if upd.Status != nil {
			story.Status = *upd.Status
		}
	}
	return s.persist()
}

// DeleteStory removes the story, clears the current story if it was the
// target, and cascades deletion of writing samples referencing it.
func (s *Store) DeleteStory(id int64) error {
	kept := s.stories[:0]
	for _, story := range s.stories {
		if story.ID != id {
			kept = append(kept, story)
		}
	}
	s.stories = kept
	if s.currentStoryID == id {
		s.currentStoryID = 0
	}
	keptSamples := s.samples[:0]
	for _, sample := range s.samples {
		if sample.StoryID != id {
			keptSamples = append(keptSamples, sample)
		}
	}
	s.samples = keptSamples
	return s.persist()
}

// SetCurrentStory records the given story as current, or clears the
// current story when nil. Membership in the store is not validated; the
// derived lookup yields nil until a story with that id exists.
func (s *Store) SetCurrentStory(story *model.Story) error {
	if story == nil {
		s.currentStoryID = 0
	} else {
		s.currentStoryID = story.ID
	}
	return s.persist()
}

// CurrentStory returns the current story, derived by lookup so it can
// never drift from the stories collection. Nil when unset or deleted.
func (s *Store) CurrentStory() *model.Story {
	if s.currentStoryID == 0 {
		return nil
	}
	story := s.findStory(s.currentStoryID)
	if story == nil {
		return nil
	}
	out := cloneStory(*story)
	return &out
}

// LoadUserStories replaces the whole stories collection. The current-story
// id is left untouched.
func (s *Store) LoadUserStories(stories []model.Story) error {
	s.stories = make([]model.Story, len(stories))
	for i, story := range stories {
		s.stories[i] = cloneStory(story)
	}
	s.seedNextID()
	return s.persist()
}

// Stories returns a copy of the stories in insertion order.
func (s *Store) Stories() []model.Story {
	out := make([]model.Story, len(s.stories))
	for i, story := range s.stories {
		out[i] = cloneStory(story)
	}
	return out
}

// Story returns a copy of the story with the given id.
func (s *Store) Story(id int64) (model.Story, bool) {
	story := s.findStory(id)
	if story == nil {
		return model.Story{}, false
	}
	return cloneStory(*story), true
}

// AddParagraph appends a timestamped paragraph to the story. Unknown story
// ids are a no-op.
func (s *Store) AddParagraph(storyID int64, content string) error {
	if story := s.findStory(storyID); story != nil {
		story.Paragraphs = append(story.Paragraphs, model.Paragraph{
			ID:        s.newID(),
			Content:   content,
			Timestamp: s.now().Format(time.RFC3339),
		})
	}
	return s.persist()
}

// UpdateParagraph replaces the content of the matching paragraph. Unknown
// story or paragraph ids are a no-op.
func (s *Store) UpdateParagraph(storyID, paragraphID int64, content string) error {
	if story := s.findStory(storyID); story != nil {
		for i := range story.Paragraphs {
			if story.Paragraphs[i].ID == paragraphID {
				story.Paragraphs[i].Content = content
			}
		}
	}
	return s.persist()
}

// DeleteParagraph removes the matching paragraph. Unknown story or
// paragraph ids are a no-op.
func (s *Store) DeleteParagraph(storyID, paragraphID int64) error {
	if story := s.findStory(storyID); story != nil {
		kept := story.Paragraphs[:0]
		for _, p := range story.Paragraphs {
			if p.ID != paragraphID {
				kept = append(kept, p)
			}
		}
		story.Paragraphs = kept
	}
	return s.persist()
}

// SetUser replaces the current user record, or clears it when nil.
func (s *Store) SetUser(u *model.User) error {
	if u == nil {
		s.user = nil
	} else {
		cp := *u
		s.user = &cp
	}
	return s.persist()
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *model.User {
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// StartWritingSession begins a fresh session for the story, silently
// replacing any session already in progress. A non-positive goal falls
// back to the default word target.
func (s *Store) StartWritingSession(storyID int64, goalWords int) error {
	if goalWords <= 0 {
		goalWords = model.DefaultSessionGoal
	}
	s.session = &model.WritingSession{
		StoryID:     storyID,
		StartTime:   s.now(),
		SessionGoal: goalWords,
	}
	return s.persist()
}

// EndWritingSession folds the session into analytics and clears it. With
// no active session this is a no-op.
//
// The session-length average is the two-point mean of the previous average
// and this session's length, an observed simplification kept on purpose.
func (s *Store) EndWritingSession(wordsAdded int, notes string) error {
	if s.session == nil {
		return nil
	}
	minutes := s.now().Sub(s.session.StartTime).Minutes()
	s.analytics.DailyWordCount += wordsAdded
	s.analytics.TotalWordsWritten += wordsAdded
	s.analytics.AverageSessionLength = (s.analytics.AverageSessionLength + minutes) / 2
	s.session = nil
	return s.persist()
}

// UpdateSessionProgress records the absolute word count for the active
// session; the words-added delta is relative to the previous call, not to
// the session start. No-op without an active session.
func (s *Store) UpdateSessionProgress(wordCount int) error {
	if s.session == nil {
		return nil
	}
	s.session.WordsAdded = wordCount - s.session.WordCount
	s.session.WordCount = wordCount
	return s.persist()
}

// Session returns a copy of the active session, or nil.
func (s *Store) Session() *model.WritingSession {
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// SubmitWritingSample appends a pending sample stamped with the current
// time.
func (s *Store) SubmitWritingSample(userID, storyID int64, content string) error {
	s.samples = append(s.samples, model.WritingSample{
		UserID:      userID,
		StoryID:     storyID,
		Content:     content,
		Status:      model.SamplePending,
		SubmittedAt: s.now().Format(time.RFC3339),
	})
	return s.persist()
}

// UpdateWritingSampleStatus sets the status on every sample matching the
// (user, story) pair. No match is a no-op.
func (s *Store) UpdateWritingSampleStatus(userID, storyID int64, status model.SampleStatus) error {
	for i := range s.samples {
		if s.samples[i].UserID == userID && s.samples[i].StoryID == storyID {
			s.samples[i].Status = status
		}
	}
	return s.persist()
}

// Samples returns a copy of all writing samples.
func (s *Store) Samples() []model.WritingSample {
	out := make([]model.WritingSample, len(s.samples))
	copy(out, s.samples)
	return out
}

// UpdateDailyWordCount sets the daily count to an absolute value and adds
// the same value to the total-words accumulator. The additive side effect
// is part of the contract.
func (s *Store) UpdateDailyWordCount(words int) error {
	s.analytics.DailyWordCount = words
	s.analytics.TotalWordsWritten += words
	return s.persist()
}

// IncrementStreak bumps the day streak by one.
func (s *Store) IncrementStreak() error {
	s.analytics.StreakDays++
	return s.persist()
}

// ResetStreak zeroes the day streak.
func (s *Store) ResetStreak() error {
	s.analytics.StreakDays = 0
	return s.persist()
}

// Analytics returns a copy of the analytics.
func (s *Store) Analytics() model.WritingAnalytics {
	out := s.analytics
	out.MonthlyGoals = append([]model.MonthlyGoal(nil), s.analytics.MonthlyGoals...)
	out.MostProductiveHours = append([]int(nil), s.analytics.MostProductiveHours...)
	return out
}

// UpdatePreferences merges the given fields into preferences.
func (s *Store) UpdatePreferences(upd model.PreferencesUpdate) error {
	if upd.AutoSave != nil {
		s.preferences.AutoSave = *upd.AutoSave
	}
	if upd.SessionGoal != nil {
		s.preferences.SessionGoal = *upd.SessionGoal
	}
	if upd.ShowWordCount != nil {
		s.preferences.ShowWordCount = *upd.ShowWordCount
	}
	if upd.DarkMode != nil {
		s.preferences.DarkMode = *upd.DarkMode
	}
	return s.persist()
}

// Preferences returns the current preferences.
func (s *Store) Preferences() model.Preferences {
	return s.preferences
}

// StoryWordCount sums whitespace-delimited tokens over all paragraphs of
// the story. Unknown ids count as 0. An empty paragraph contributes 1; see
// wordSplit.
func (s *Store) StoryWordCount(storyID int64) int {
	story := s.findStory(storyID)
	if story == nil {
		return 0
	}
	total := 0
	for _, p := range story.Paragraphs {
		total += len(wordSplit.Split(p.Content, -1))
	}
	return total
}

// ClearAll resets every field to its default and clears durable storage.
func (s *Store) ClearAll() error {
	s.stories = []model.Story{}
	s.currentStoryID = 0
	s.user = nil
	s.samples = nil
	s.session = nil
	s.analytics = model.NewAnalytics()
	s.preferences = model.DefaultPreferences()
	s.nextID = 1
	if err := s.persister.Clear(); err != nil {
		return fmt.Errorf("state cleared in memory only: %w", err)
	}
	return nil
}
