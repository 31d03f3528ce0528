package storage

import "github.com/streakquest/streakquest/internal/models"

// Provider is the persistence boundary for the tracker. Every record lives
// under a well-known key; missing or malformed records degrade to empty
// defaults rather than surfacing errors to callers.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Achievements
	GetAchievements() ([]models.Achievement, error)
	SaveAchievements([]models.Achievement) error

	// User stats
	GetStats() (models.UserStats, error)
	SaveStats(models.UserStats) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}
