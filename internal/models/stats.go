package models

// UserStats is fully derived from the habit and achievement collections and
// recomputed wholesale; it is never patched field by field.
type UserStats struct {
	TotalCompletions     int `json:"total_completions"`
	LongestStreak        int `json:"longest_streak"`
	CurrentStreak        int `json:"current_streak"`
	WeeklyCompletionRate int `json:"weekly_completion_rate"`
	TotalHabits          int `json:"total_habits"`
	AchievementsUnlocked int `json:"achievements_unlocked"`
}
