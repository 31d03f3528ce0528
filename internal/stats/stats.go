// Package stats derives cross-habit metrics by replaying completion history
// against each habit's scheduled weekdays. Compute is pure; persisting the
// result is the caller's concern.
package stats

import (
	"math"
	"time"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/models"
)

// Compute recomputes the full UserStats record from the habit and
// achievement collections as of now. "Today" is the local calendar date of
// now.
func Compute(habits []models.Habit, achievements []models.Achievement, now time.Time) models.UserStats {
	return models.UserStats{
		TotalCompletions:     totalCompletions(habits),
		LongestStreak:        longestStreak(habits),
		CurrentStreak:        currentStreak(habits, now),
		WeeklyCompletionRate: weeklyCompletionRate(habits, now),
		TotalHabits:          len(habits),
		AchievementsUnlocked: unlockedCount(achievements),
	}
}

// totalCompletions sums raw per-day counts across all habits and dates.
func totalCompletions(habits []models.Habit) int {
	total := 0
	for i := range habits {
		for _, count := range habits[i].CompletionHistory {
			total += count
		}
	}
	return total
}

// longestStreak is the maximum current habit streak. There is no separate
// best-ever field; a broken streak's historical maximum is not retained.
func longestStreak(habits []models.Habit) int {
	longest := 0
	for i := range habits {
		if habits[i].Streak > longest {
			longest = habits[i].Streak
		}
	}
	return longest
}

// currentStreak counts consecutive days, walking backward from today, on
// which every scheduled habit reached its daily target. Days with nothing
// scheduled are skipped without affecting the count. Today gets a grace
// period: an incomplete today does not end the walk, since the day is not
// over.
func currentStreak(habits []models.Habit, now time.Time) int {
	if len(habits) == 0 {
		return 0
	}

	today := now.Format(constants.DateFormat)
	streak := 0
	check := now

	for i := 0; i < constants.CurrentStreakLookbackDays; i++ {
		date := check.Format(constants.DateFormat)

		scheduled := 0
		completed := 0
		for j := range habits {
			if !habits[j].ScheduledOn(check) {
				continue
			}
			scheduled++
			if habits[j].FullyCompletedOn(date) {
				completed++
			}
		}

		if scheduled > 0 {
			if completed == scheduled {
				streak++
			} else if date != today {
				break
			}
		}

		check = check.AddDate(0, 0, -1)
	}

	return streak
}

// weeklyCompletionRate is the percentage of scheduled habit-days in the
// trailing seven days (today and six prior) that reached full completion,
// rounded to the nearest integer. Zero scheduled habit-days yields zero.
func weeklyCompletionRate(habits []models.Habit, now time.Time) int {
	scheduled := 0
	completed := 0

	start := now.AddDate(0, 0, -(constants.WeeklyRateWindowDays - 1))
	for d := 0; d < constants.WeeklyRateWindowDays; d++ {
		day := start.AddDate(0, 0, d)
		date := day.Format(constants.DateFormat)
		for i := range habits {
			if !habits[i].ScheduledOn(day) {
				continue
			}
			scheduled++
			if habits[i].FullyCompletedOn(date) {
				completed++
			}
		}
	}

	if scheduled == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(scheduled) * 100))
}

func unlockedCount(achievements []models.Achievement) int {
	count := 0
	for i := range achievements {
		if achievements[i].Unlocked {
			count++
		}
	}
	return count
}
