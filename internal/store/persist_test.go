package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"inkwell/internal/model"
)

func openTestSQLite(t *testing.T, dir string) *SQLite {
	t.Helper()
	p, err := OpenSQLite(filepath.Join(dir, "inkwell.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = p.Close()
	})
	return p
}

func TestSQLiteLoadMissing(t *testing.T) {
	p := openTestSQLite(t, t.TempDir())
	st, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st != nil {
		t.Fatalf("expected nil state for empty database, got %+v", st)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	current := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	p := openTestSQLite(t, dir)
	st := New(p, WithClock(clock))

	story, err := st.CreateStory(model.Story{Title: "Roundtrip", Genre: "sci-fi"})
	if err != nil {
		t.Fatalf("create story: %v", err)
	}
	if err := st.AddParagraph(story.ID, "it was a dark and stormy night"); err != nil {
		t.Fatalf("add paragraph: %v", err)
	}
	if err := st.SetUser(&model.User{ID: 3, Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("set user: %v", err)
	}
	if err := st.UpdateDailyWordCount(420); err != nil {
		t.Fatalf("update daily: %v", err)
	}
	goal := 800
	if err := st.UpdatePreferences(model.PreferencesUpdate{SessionGoal: &goal}); err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	// Excluded from persistence on purpose.
	if err := st.SubmitWritingSample(3, story.ID, "sample"); err != nil {
		t.Fatalf("submit sample: %v", err)
	}
	if err := st.StartWritingSession(story.ID, 800); err != nil {
		t.Fatalf("start session: %v", err)
	}

	p2 := openTestSQLite(t, dir)
	st2 := New(p2, WithClock(clock))

	if !reflect.DeepEqual(st.Stories(), st2.Stories()) {
		t.Fatalf("stories did not round-trip:\n%+v\n%+v", st.Stories(), st2.Stories())
	}
	if !reflect.DeepEqual(st.User(), st2.User()) {
		t.Fatalf("user did not round-trip: %+v vs %+v", st.User(), st2.User())
	}
	if !reflect.DeepEqual(st.Analytics(), st2.Analytics()) {
		t.Fatalf("analytics did not round-trip: %+v vs %+v", st.Analytics(), st2.Analytics())
	}
	if !reflect.DeepEqual(st.Preferences(), st2.Preferences()) {
		t.Fatalf("preferences did not round-trip: %+v vs %+v", st.Preferences(), st2.Preferences())
	}
	if st2.Session() != nil {
		t.Fatalf("session must not persist")
	}
	if len(st2.Samples()) != 0 {
		t.Fatalf("samples must not persist")
	}
	if st2.CurrentStory() != nil {
		t.Fatalf("current story must not persist")
	}
}

func TestSQLiteClear(t *testing.T) {
	dir := t.TempDir()
	p := openTestSQLite(t, dir)
	if err := p.Save(persistedState{Preferences: model.DefaultPreferences()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	st, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st != nil {
		t.Fatalf("expected nil state after clear, got %+v", st)
	}
}

func TestSQLiteUnknownSchemaVersionFallsBack(t *testing.T) {
	p := openTestSQLite(t, t.TempDir())
	if err := p.Save(persistedState{Preferences: model.DefaultPreferences()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := p.db.Exec(`UPDATE app_state SET schema_version = ? WHERE ns = ?`, schemaVersion+1, stateNamespace); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	st, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st != nil {
		t.Fatalf("newer schema version must fall back to defaults, got %+v", st)
	}
}

func TestSQLiteReadErrorFallsBackToDefaults(t *testing.T) {
	p := openTestSQLite(t, t.TempDir())
	if _, err := p.db.Exec(`DROP TABLE app_state`); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	st := New(p)
	if len(st.Stories()) != 0 {
		t.Fatalf("expected empty stories, got %+v", st.Stories())
	}
	if st.User() != nil {
		t.Fatalf("expected nil user, got %+v", st.User())
	}
	if !reflect.DeepEqual(st.Analytics(), model.NewAnalytics()) {
		t.Fatalf("expected zeroed analytics, got %+v", st.Analytics())
	}
	if !reflect.DeepEqual(st.Preferences(), model.DefaultPreferences()) {
		t.Fatalf("expected default preferences, got %+v", st.Preferences())
	}
}

func TestSQLiteCorruptPayloadFallsBack(t *testing.T) {
	p := openTestSQLite(t, t.TempDir())
	if err := p.Save(persistedState{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := p.db.Exec(`UPDATE app_state SET payload = 'not json' WHERE ns = ?`, stateNamespace); err != nil {
		t.Fatalf("corrupt payload: %v", err)
	}
	st, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st != nil {
		t.Fatalf("corrupt payload must fall back to defaults, got %+v", st)
	}
}
