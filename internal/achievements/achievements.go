// Package achievements maintains the one-shot badge catalog and the rule
// table that unlocks badges from habit counts and streaks.
package achievements

import (
	"errors"
	"fmt"
	"time"

	"github.com/streakquest/streakquest/internal/models"
	"github.com/streakquest/streakquest/internal/storage"
)

// ErrNotFound is returned when no achievement has the requested id.
var ErrNotFound = errors.New("achievement not found")

// DefaultCatalog returns the static achievement set seeded on first use.
// The perfect-week entry is descriptive only; nothing auto-evaluates it yet.
func DefaultCatalog() []models.Achievement {
	return []models.Achievement{
		{
			ID:          "first-habit",
			Name:        "First Step",
			Description: "Create your first habit",
			Icon:        "trophy",
			Category:    "beginner",
			Color:       "primary",
		},
		{
			ID:          "first-week",
			Name:        "Week One",
			Description: "Complete a habit for 7 consecutive days",
			Icon:        "flame",
			Category:    "streak",
			Color:       "primary",
		},
		{
			ID:          "first-month",
			Name:        "Habit Master",
			Description: "Complete a habit for 30 consecutive days",
			Icon:        "star",
			Category:    "streak",
			Color:       "accent",
		},
		{
			ID:          "five-habits",
			Name:        "Overachiever",
			Description: "Create 5 different habits",
			Icon:        "sparkles",
			Category:    "quantity",
			Color:       "secondary",
		},
		{
			ID:          "perfect-week",
			Name:        "Perfect Week",
			Description: "Complete all habits for an entire week",
			Icon:        "target",
			Category:    "completion",
			Color:       "accent",
		},
	}
}

// Service evaluates and unlocks achievements against the persisted catalog.
type Service struct {
	store storage.Provider
	now   func() time.Time
}

func NewService(store storage.Provider, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// All returns the achievement collection, seeding the default catalog when
// the stored collection is empty or absent.
func (s *Service) All() ([]models.Achievement, error) {
	achievements, err := s.store.GetAchievements()
	if err != nil {
		return nil, err
	}
	if len(achievements) == 0 {
		achievements = DefaultCatalog()
		if err := s.store.SaveAchievements(achievements); err != nil {
			return nil, err
		}
	}
	return achievements, nil
}

// Unlock marks the achievement with the given id as unlocked. Unlocking is
// monotonic and idempotent: an already-unlocked achievement is returned
// unchanged and its unlock timestamp is never overwritten.
func (s *Service) Unlock(id string) (models.Achievement, error) {
	achievements, err := s.All()
	if err != nil {
		return models.Achievement{}, err
	}

	i := -1
	for j := range achievements {
		if achievements[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return models.Achievement{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if achievements[i].Unlocked {
		return achievements[i], nil
	}

	achievements[i].Unlocked = true
	achievements[i].UnlockedAt = s.now().Format(time.RFC3339)

	if err := s.store.SaveAchievements(achievements); err != nil {
		return models.Achievement{}, err
	}

	return achievements[i], nil
}

// Evaluate applies the unlock rule table to the habit collection and returns
// the achievements newly unlocked by this pass. Already-unlocked entries are
// left untouched.
func (s *Service) Evaluate(habits []models.Habit) ([]models.Achievement, error) {
	due := map[string]bool{
		"first-habit": len(habits) >= 1,
		"five-habits": len(habits) >= 5,
	}
	for i := range habits {
		if habits[i].Streak >= 7 {
			due["first-week"] = true
		}
		if habits[i].Streak >= 30 {
			due["first-month"] = true
		}
	}

	achievements, err := s.All()
	if err != nil {
		return nil, err
	}

	var unlocked []models.Achievement
	for i := range achievements {
		if !due[achievements[i].ID] || achievements[i].Unlocked {
			continue
		}
		achievements[i].Unlocked = true
		achievements[i].UnlockedAt = s.now().Format(time.RFC3339)
		unlocked = append(unlocked, achievements[i])
	}

	if len(unlocked) > 0 {
		if err := s.store.SaveAchievements(achievements); err != nil {
			return nil, err
		}
	}

	return unlocked, nil
}
