package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	tables := []string{"sessions", "events", "settings"}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q should exist after migrations: %v", table, err)
		}
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	sess := &Session{ID: uuid.New().String()}
	if err := repo.Create(sess); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sess.StartedAt.IsZero() {
		t.Error("Create should fill StartedAt")
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("ID = %q, want %q", got.ID, sess.ID)
	}
	if got.EndedAt != nil {
		t.Error("new session should not have EndedAt set")
	}
}

func TestSessionRepository_End(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	sess := &Session{ID: uuid.New().String()}
	if err := repo.Create(sess); err != nil {
		t.Fatal(err)
	}

	ended := time.Now().Add(time.Minute)
	if err := repo.End(sess.ID, ended, 120, 7); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.EndedAt == nil {
		t.Fatal("EndedAt should be set after End")
	}
	if got.Frames != 120 || got.Events != 7 {
		t.Errorf("counters = %d/%d, want 120/7", got.Frames, got.Events)
	}
}

func TestSessionRepository_EndUnknownSession(t *testing.T) {
	s := newTestStore(t)

	err := s.Sessions().End("missing", time.Now(), 0, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("End() error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	base := time.Now()
	for i := 0; i < 3; i++ {
		sess := &Session{
			ID:        uuid.New().String(),
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(sess); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := repo.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("List() returned %d sessions, want 3", len(sessions))
	}
	// Newest first.
	if sessions[0].StartedAt.Before(sessions[1].StartedAt) {
		t.Error("sessions should be ordered newest first")
	}
}

func TestEventRepository_RecordAndList(t *testing.T) {
	s := newTestStore(t)

	sess := &Session{ID: uuid.New().String()}
	if err := s.Sessions().Create(sess); err != nil {
		t.Fatal(err)
	}

	events := s.Events()
	at := time.Now()
	ev := engine.Event{
		Type:     engine.EventClickDown,
		Position: engine.ScreenPoint{X: 100, Y: 200},
		At:       at,
	}
	if err := events.Record(sess.ID, ev); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := events.ListBySession(sess.ID)
	if err != nil {
		t.Fatalf("ListBySession() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].Type != string(engine.EventClickDown) {
		t.Errorf("type = %q, want click_down", got[0].Type)
	}
	if got[0].X != 100 || got[0].Y != 200 {
		t.Errorf("position = (%d,%d), want (100,200)", got[0].X, got[0].Y)
	}
}

func TestEventRepository_RecordBatch(t *testing.T) {
	s := newTestStore(t)

	sess := &Session{ID: uuid.New().String()}
	if err := s.Sessions().Create(sess); err != nil {
		t.Fatal(err)
	}

	at := time.Now()
	batch := []engine.Event{
		{Type: engine.EventDragStart, Position: engine.ScreenPoint{X: 10, Y: 10}, At: at},
		{Type: engine.EventDragMove, Position: engine.ScreenPoint{X: 20, Y: 20}, At: at.Add(time.Millisecond)},
	}
	if err := s.Events().RecordBatch(sess.ID, batch); err != nil {
		t.Fatalf("RecordBatch() error = %v", err)
	}

	n, err := s.Events().CountBySession(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}

	got, err := s.Events().ListBySession(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Type != string(engine.EventDragStart) || got[1].Type != string(engine.EventDragMove) {
		t.Error("events should come back in chronological order")
	}
}

func TestSessionDelete_CascadesEvents(t *testing.T) {
	s := newTestStore(t)

	sess := &Session{ID: uuid.New().String()}
	if err := s.Sessions().Create(sess); err != nil {
		t.Fatal(err)
	}
	ev := engine.Event{Type: engine.EventMove, Position: engine.ScreenPoint{X: 1, Y: 2}, At: time.Now()}
	if err := s.Events().Record(sess.ID, ev); err != nil {
		t.Fatal(err)
	}

	if err := s.Sessions().Delete(sess.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	n, err := s.Events().CountBySession(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("events after cascade delete = %d, want 0", n)
	}
}

func TestSettingsRepository(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if _, err := repo.Get("pinch_close"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := repo.Set("pinch_close", "0.05"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set("pinch_close", "0.06"); err != nil {
		t.Fatalf("Set() upsert error = %v", err)
	}

	v, err := repo.Get("pinch_close")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "0.06" {
		t.Errorf("value = %q, want 0.06 (latest write)", v)
	}

	if err := repo.Set("dead_zone", "0.1"); err != nil {
		t.Fatal(err)
	}
	all, err := repo.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("All() returned %d entries, want 2", len(all))
	}

	if err := repo.Delete("pinch_close"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get("pinch_close"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}
