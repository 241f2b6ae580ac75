package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
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

func TestNewSessionSummary(t *testing.T) {
	stats := core.SessionStats{
		Frames:            120,
		Elapsed:           2.5,
		BricksDestroyed:   9,
		Flips:             2,
		RainbowToggles:    1,
		Bounces:           14,
		WallBounces:       3,
		PortalTransitions: 1,
	}
	sum := NewSessionSummary("pongora", 7, 2, stats)

	if sum.Duration != 2500*time.Millisecond {
		t.Errorf("Duration = %v, expected 2.5s", sum.Duration)
	}
	if sum.BricksDestroyed != 9 || sum.Flips != 2 || sum.Bounces != 14 {
		t.Errorf("counters not copied: %+v", sum)
	}
	if sum.GameID != "pongora" || sum.Seed != 7 || sum.Score != 2 || sum.Frames != 120 {
		t.Errorf("identity fields not copied: %+v", sum)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionSummary{
		{GameID: "pongora", Seed: 1, Duration: time.Second, BricksDestroyed: 4, Score: 1},
		{GameID: "pongora_extended", Seed: 2, Duration: 3 * time.Second, PortalTransitions: 2},
		{GameID: "pongora", Seed: 3, Duration: 2 * time.Second, BricksDestroyed: 12, Flips: 1, Score: 3},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("pongora", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentSessions() returned %d sessions, expected 2", len(got))
	}
	if got[0].Seed != 3 || got[1].Seed != 1 {
		t.Errorf("sessions should be newest first, got seeds %d, %d", got[0].Seed, got[1].Seed)
	}
	if got[0].Duration != 2*time.Second {
		t.Errorf("Duration = %v, expected 2s", got[0].Duration)
	}
	if got[0].BricksDestroyed != 12 || got[0].Flips != 1 || got[0].Score != 3 {
		t.Errorf("counters not round-tripped: %+v", got[0])
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("RecentSessions(\"\") returned %d sessions, expected 3", len(all))
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveSession(SessionSummary{GameID: "pongora", Seed: int64(i)}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 15}, // Default limit of 20
		{-1, 15},
	}
	for _, tc := range tests {
		got, err := store.RecentSessions("pongora", tc.limit)
		if err != nil {
			t.Fatalf("RecentSessions(%d) failed: %v", tc.limit, err)
		}
		if len(got) != tc.expected {
			t.Errorf("RecentSessions(%d) returned %d, expected %d", tc.limit, len(got), tc.expected)
		}
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(SessionSummary{}); err == nil {
		t.Error("SaveSession() with no game id should fail")
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals("pongora")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Totals() on empty store = %+v, expected zeros", empty)
	}

	store.SaveSession(SessionSummary{GameID: "pongora", Duration: time.Second, BricksDestroyed: 8, Flips: 1, Score: 2})
	store.SaveSession(SessionSummary{GameID: "pongora", Duration: 4 * time.Second, BricksDestroyed: 20, Flips: 3, Score: 5})
	store.SaveSession(SessionSummary{GameID: "pongora_extended", Score: 99})

	got, err := store.Totals("pongora")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if got.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", got.Sessions)
	}
	if got.BestScore != 5 {
		t.Errorf("BestScore = %d, expected 5", got.BestScore)
	}
	if got.BricksDestroyed != 28 || got.Flips != 4 {
		t.Errorf("sums = %d bricks, %d flips, expected 28, 4", got.BricksDestroyed, got.Flips)
	}
	if got.PlayTime != 5*time.Second {
		t.Errorf("PlayTime = %v, expected 5s", got.PlayTime)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionSummary{GameID: "pongora"})
	store.SaveSession(SessionSummary{GameID: "pongora_extended"})

	if err := store.ClearSessions("pongora"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	got, _ := store.RecentSessions("pongora", 10)
	if len(got) != 0 {
		t.Errorf("expected no pongora sessions after clear, got %d", len(got))
	}
	other, _ := store.RecentSessions("pongora_extended", 10)
	if len(other) != 1 {
		t.Errorf("other game should keep its sessions, got %d", len(other))
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time value", now, now},
		{"sqlite string", "2024-05-01 12:30:00", now},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.expected) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}
