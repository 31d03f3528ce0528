package achievements

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/streakquest/streakquest/internal/models"
	"github.com/streakquest/streakquest/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "streakquest.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func TestAllSeedsDefaultCatalog(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, time.Now)

	all, err := svc.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("catalog size = %d, want 5", len(all))
	}
	for _, a := range all {
		if a.Unlocked {
			t.Errorf("achievement %s seeded as unlocked", a.ID)
		}
	}

	// The seed must be persisted, not recreated on every call.
	stored, err := store.GetAchievements()
	if err != nil {
		t.Fatalf("GetAchievements: %v", err)
	}
	if len(stored) != 5 {
		t.Errorf("persisted catalog size = %d, want 5", len(stored))
	}
}

func TestUnlockIsMonotonic(t *testing.T) {
	store := newTestStore(t)
	first := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	clock := first
	svc := NewService(store, func() time.Time { return clock })

	a, err := svc.Unlock("first-habit")
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if !a.Unlocked {
		t.Fatal("achievement not unlocked")
	}
	firstStamp := a.UnlockedAt
	if firstStamp == "" {
		t.Fatal("unlockedAt not set")
	}

	// A later unlock of the same achievement must not touch the timestamp.
	clock = first.Add(48 * time.Hour)
	again, err := svc.Unlock("first-habit")
	if err != nil {
		t.Fatalf("second Unlock: %v", err)
	}
	if again.UnlockedAt != firstStamp {
		t.Errorf("unlockedAt changed on re-unlock: %q -> %q", firstStamp, again.UnlockedAt)
	}
}

func TestUnlockUnknownID(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, time.Now)

	_, err := svc.Unlock("does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEvaluateRuleTable(t *testing.T) {
	habitsWithStreak := func(n, streak int) []models.Habit {
		habits := make([]models.Habit, n)
		for i := range habits {
			habits[i] = models.Habit{ID: string(rune('a' + i))}
		}
		if n > 0 {
			habits[0].Streak = streak
		}
		return habits
	}

	tests := []struct {
		name   string
		habits []models.Habit
		want   map[string]bool
	}{
		{
			name:   "no habits unlocks nothing",
			habits: nil,
			want:   map[string]bool{},
		},
		{
			name:   "one habit",
			habits: habitsWithStreak(1, 0),
			want:   map[string]bool{"first-habit": true},
		},
		{
			name:   "five habits",
			habits: habitsWithStreak(5, 0),
			want:   map[string]bool{"first-habit": true, "five-habits": true},
		},
		{
			name:   "week streak",
			habits: habitsWithStreak(1, 7),
			want:   map[string]bool{"first-habit": true, "first-week": true},
		},
		{
			name:   "month streak implies week",
			habits: habitsWithStreak(1, 30),
			want:   map[string]bool{"first-habit": true, "first-week": true, "first-month": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			svc := NewService(store, time.Now)

			unlocked, err := svc.Evaluate(tt.habits)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			got := make(map[string]bool)
			for _, a := range unlocked {
				got[a.ID] = true
			}
			if len(got) != len(tt.want) {
				t.Errorf("unlocked = %v, want %v", got, tt.want)
			}
			for id := range tt.want {
				if !got[id] {
					t.Errorf("expected %s to unlock", id)
				}
			}
			if got["perfect-week"] {
				t.Error("perfect-week must never auto-unlock")
			}
		})
	}
}

func TestEvaluateReturnsOnlyNewUnlocks(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, time.Now)

	habits := []models.Habit{{ID: "a", Streak: 7}}

	first, err := svc.Evaluate(habits)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected unlocks on first pass")
	}

	second, err := svc.Evaluate(habits)
	if err != nil {
		t.Fatalf("second Evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second pass unlocked %d achievements, want 0", len(second))
	}
}
