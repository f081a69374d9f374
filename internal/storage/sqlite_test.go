package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := openTestStore(t)

	id, err := store.CreateSession(Session{
		GameID:   "pacman",
		MapID:    "classic",
		Seed:     42,
		TickRate: 60,
		Config:   "lives: 3\n",
	})
	if err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected UUID id, got %q", id)
	}

	sess, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if sess.Outcome != OutcomeRecording || sess.Difficulty != "normal" || sess.Seed != 42 {
		t.Errorf("unexpected session: %+v", sess)
	}

	err = store.FinishSession(id, Result{Score: 1230, Level: 2, Ticks: 900, Outcome: OutcomeGameOver})
	if err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}

	sess, err = store.SessionByID(id[:8])
	if err != nil {
		t.Fatalf("SessionByID(prefix) failed: %v", err)
	}
	if sess.Score != 1230 || sess.Level != 2 || sess.Ticks != 900 || sess.Outcome != OutcomeGameOver {
		t.Errorf("result not stored: %+v", sess)
	}
	if sess.Config != "lives: 3\n" {
		t.Errorf("Config = %q", sess.Config)
	}
}

func TestInputsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	id, err := store.CreateSession(Session{GameID: "pacman", MapID: "classic", TickRate: 60})
	if err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}

	first := []InputRecord{
		{Tick: 3, Actions: []string{"left"}},
		{Tick: 10, Actions: []string{"up", "pause"}},
	}
	second := []InputRecord{{Tick: 7, Actions: []string{"down"}}}

	if err := store.AppendInputs(id, first); err != nil {
		t.Fatalf("AppendInputs() failed: %v", err)
	}
	if err := store.AppendInputs(id, second); err != nil {
		t.Fatalf("AppendInputs() failed: %v", err)
	}
	if err := store.AppendInputs(id, nil); err != nil {
		t.Fatalf("AppendInputs(nil) failed: %v", err)
	}

	got, err := store.Inputs(id)
	if err != nil {
		t.Fatalf("Inputs() failed: %v", err)
	}
	want := []InputRecord{first[0], second[0], first[1]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Inputs() = %+v, want %+v", got, want)
	}
}

func TestSessionNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SessionByID("does-not-exist")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() should be true")
	}

	err = store.FinishSession("does-not-exist", Result{Outcome: OutcomeQuit})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAmbiguousPrefix(t *testing.T) {
	store := openTestStore(t)
	for _, id := range []string{"abc-1", "abc-2"} {
		if _, err := store.CreateSession(Session{ID: id, GameID: "pacman", MapID: "classic"}); err != nil {
			t.Fatalf("CreateSession() failed: %v", err)
		}
	}

	_, err := store.SessionByID("abc")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguous prefix error, got %v", err)
	}

	sess, err := store.SessionByID("abc-2")
	if err != nil || sess.ID != "abc-2" {
		t.Errorf("exact match failed: %v %+v", err, sess)
	}
}

func TestRecentAndDelete(t *testing.T) {
	store := openTestStore(t)
	for _, id := range []string{"s1", "s2", "s3"} {
		if _, err := store.CreateSession(Session{ID: id, GameID: "pacman", MapID: "classic"}); err != nil {
			t.Fatalf("CreateSession() failed: %v", err)
		}
	}
	if err := store.AppendInputs("s2", []InputRecord{{Tick: 1, Actions: []string{"up"}}}); err != nil {
		t.Fatalf("AppendInputs() failed: %v", err)
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "s3" || recent[1].ID != "s2" {
		t.Errorf("RecentSessions() = %+v", recent)
	}

	if err := store.DeleteSession("s2"); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	inputs, err := store.Inputs("s2")
	if err != nil {
		t.Fatalf("Inputs() failed: %v", err)
	}
	if len(inputs) != 0 {
		t.Errorf("inputs not deleted: %+v", inputs)
	}
	if err := store.DeleteSession("s2"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second delete: expected ErrSessionNotFound, got %v", err)
	}

	recent, _ = store.RecentSessions(0)
	if len(recent) != 2 {
		t.Errorf("expected 2 sessions after delete, got %d", len(recent))
	}
}
