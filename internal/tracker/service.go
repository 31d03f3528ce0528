// Package tracker wires the habit repository, achievement evaluator, and
// statistics aggregator together behind the call contract the presentation
// layer consumes. Every mutation re-evaluates achievements and recomputes
// the derived stats record wholesale.
package tracker

import (
	"time"

	"github.com/streakquest/streakquest/internal/achievements"
	"github.com/streakquest/streakquest/internal/habit"
	"github.com/streakquest/streakquest/internal/models"
	"github.com/streakquest/streakquest/internal/stats"
	"github.com/streakquest/streakquest/internal/storage"
)

type Service struct {
	store        storage.Provider
	habits       *habit.Repository
	achievements *achievements.Service
	now          func() time.Time
}

func New(store storage.Provider, now func() time.Time) *Service {
	return &Service{
		store:        store,
		habits:       habit.NewRepository(store, now),
		achievements: achievements.NewService(store, now),
		now:          now,
	}
}

// ListHabits returns the habit collection with the daily progress reset
// applied.
func (s *Service) ListHabits() ([]models.Habit, error) {
	return s.habits.List()
}

// GetHabit returns a single habit by id.
func (s *Service) GetHabit(id string) (models.Habit, error) {
	return s.habits.Get(id)
}

// CreateHabit adds a new habit and returns it along with any achievements
// the creation unlocked.
func (s *Service) CreateHabit(in habit.CreateInput) (models.Habit, []models.Achievement, error) {
	h, err := s.habits.Create(in)
	if err != nil {
		return models.Habit{}, nil, err
	}
	unlocked, err := s.refresh()
	if err != nil {
		return models.Habit{}, nil, err
	}
	return h, unlocked, nil
}

// UpdateHabit merges a partial update into the stored habit.
func (s *Service) UpdateHabit(in habit.UpdateInput) (models.Habit, error) {
	h, err := s.habits.Update(in)
	if err != nil {
		return models.Habit{}, err
	}
	if _, err := s.refresh(); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

// DeleteHabit removes a habit by id, reporting false when it was absent.
func (s *Service) DeleteHabit(id string) (bool, error) {
	deleted, err := s.habits.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		if _, err := s.refresh(); err != nil {
			return false, err
		}
	}
	return deleted, nil
}

// CompleteHabit records one completion event. The bool reports whether this
// event first brought today to full completion; the returned achievements
// were newly unlocked by it.
func (s *Service) CompleteHabit(id string) (models.Habit, bool, []models.Achievement, error) {
	h, completed, err := s.habits.Complete(id)
	if err != nil {
		return models.Habit{}, false, nil, err
	}
	unlocked, err := s.refresh()
	if err != nil {
		return models.Habit{}, false, nil, err
	}
	return h, completed, unlocked, nil
}

// Stats recomputes the derived stats record from the current collections,
// persists it, and returns it.
func (s *Service) Stats() (models.UserStats, error) {
	habits, err := s.habits.List()
	if err != nil {
		return models.UserStats{}, err
	}
	all, err := s.achievements.All()
	if err != nil {
		return models.UserStats{}, err
	}

	derived := stats.Compute(habits, all, s.now())
	if err := s.store.SaveStats(derived); err != nil {
		return models.UserStats{}, err
	}
	return derived, nil
}

// Achievements returns the achievement collection, seeded on first use.
func (s *Service) Achievements() ([]models.Achievement, error) {
	return s.achievements.All()
}

// UnlockAchievement unlocks a single achievement by id. It is idempotent.
func (s *Service) UnlockAchievement(id string) (models.Achievement, error) {
	a, err := s.achievements.Unlock(id)
	if err != nil {
		return models.Achievement{}, err
	}
	if _, err := s.Stats(); err != nil {
		return models.Achievement{}, err
	}
	return a, nil
}

// Settings returns the persisted user preferences.
func (s *Service) Settings() (models.Settings, error) {
	return s.store.GetSettings()
}

// SaveSettings persists the user preferences.
func (s *Service) SaveSettings(settings models.Settings) error {
	return s.store.SaveSettings(settings)
}

// refresh re-evaluates achievements against the current habit collection and
// recomputes the stats record, returning any newly unlocked achievements.
func (s *Service) refresh() ([]models.Achievement, error) {
	habits, err := s.habits.List()
	if err != nil {
		return nil, err
	}
	unlocked, err := s.achievements.Evaluate(habits)
	if err != nil {
		return nil, err
	}
	if _, err := s.Stats(); err != nil {
		return nil, err
	}
	return unlocked, nil
}
