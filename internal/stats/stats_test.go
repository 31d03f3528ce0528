package stats

import (
	"testing"
	"time"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/models"
)

var allDays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func dateOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// everyDayHabit builds a habit scheduled daily with the given dates fully
// completed.
func everyDayHabit(id string, target int, completedOn ...string) models.Habit {
	history := make(map[string]int)
	for _, date := range completedOn {
		history[date] = target
	}
	return models.Habit{
		ID:                id,
		Name:              id,
		Frequency:         allDays,
		DailyTarget:       target,
		Goal:              10,
		CompletionHistory: history,
	}
}

func TestComputeEmptyCollections(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	got := Compute(nil, nil, now)

	want := models.UserStats{}
	if got != want {
		t.Errorf("Compute() = %+v, want zero stats", got)
	}
}

func TestTotalCompletionsSumsRawCounts(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	habits := []models.Habit{
		{ID: "a", Frequency: allDays, DailyTarget: 3, CompletionHistory: map[string]int{
			"2025-06-16": 3,
			"2025-06-17": 2,
		}},
		{ID: "b", Frequency: allDays, DailyTarget: 1, CompletionHistory: map[string]int{
			"2025-06-17": 1,
		}},
	}

	got := Compute(habits, nil, now)
	if got.TotalCompletions != 6 {
		t.Errorf("totalCompletions = %d, want 6 (raw counts, not day indicators)", got.TotalCompletions)
	}
}

func TestLongestStreakIsMaxHabitStreak(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	habits := []models.Habit{
		{ID: "a", Frequency: allDays, Streak: 3},
		{ID: "b", Frequency: allDays, Streak: 9},
		{ID: "c", Frequency: allDays, Streak: 1},
	}

	got := Compute(habits, nil, now)
	if got.LongestStreak != 9 {
		t.Errorf("longestStreak = %d, want 9", got.LongestStreak)
	}
}

func TestCurrentStreakTodayGracePeriod(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	yesterday := dateOf(now.AddDate(0, 0, -1))
	twoDaysAgo := dateOf(now.AddDate(0, 0, -2))

	// Completed yesterday and the day before, nothing today. Today must not
	// break the walk, and also must not count.
	habits := []models.Habit{everyDayHabit("a", 1, yesterday, twoDaysAgo)}

	got := Compute(habits, nil, now)
	if got.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want 2 (incomplete today is grace, not a break)", got.CurrentStreak)
	}
}

func TestCurrentStreakCountsToday(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	habits := []models.Habit{everyDayHabit("a", 1,
		dateOf(now), dateOf(now.AddDate(0, 0, -1)), dateOf(now.AddDate(0, 0, -2)))}

	got := Compute(habits, nil, now)
	if got.CurrentStreak != 3 {
		t.Errorf("currentStreak = %d, want 3", got.CurrentStreak)
	}
}

func TestCurrentStreakSkipsUnscheduledDays(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	today := dateOf(now)
	lastWeek := dateOf(now.AddDate(0, 0, -7))

	// Scheduled only on today's weekday; the six intervening days have no
	// scheduled habits and must be walked through without breaking.
	habit := models.Habit{
		ID:          "a",
		Frequency:   []string{models.WeekdayName(now.Weekday())},
		DailyTarget: 1,
		CompletionHistory: map[string]int{
			today:    1,
			lastWeek: 1,
		},
	}

	got := Compute([]models.Habit{habit}, nil, now)
	if got.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want 2 (unscheduled days skipped)", got.CurrentStreak)
	}
}

func TestCurrentStreakBreaksOnMissedPastDay(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	habits := []models.Habit{everyDayHabit("a", 1,
		dateOf(now), dateOf(now.AddDate(0, 0, -1)),
		// -2 missing
		dateOf(now.AddDate(0, 0, -3)))}

	got := Compute(habits, nil, now)
	if got.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want 2 (missed past day ends the walk)", got.CurrentStreak)
	}
}

func TestCurrentStreakRequiresAllScheduledHabits(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	yesterday := dateOf(now.AddDate(0, 0, -1))

	habits := []models.Habit{
		everyDayHabit("a", 1, yesterday),
		everyDayHabit("b", 1), // never completed
	}

	got := Compute(habits, nil, now)
	if got.CurrentStreak != 0 {
		t.Errorf("currentStreak = %d, want 0 (all scheduled habits must complete)", got.CurrentStreak)
	}
}

func TestWeeklyCompletionRate(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		habits []models.Habit
		want   int
	}{
		{
			name:   "no habits means no scheduled days",
			habits: nil,
			want:   0,
		},
		{
			name: "zero scheduled days avoids division by zero",
			habits: []models.Habit{
				{ID: "a", Frequency: nil, DailyTarget: 1},
			},
			want: 0,
		},
		{
			name: "three of seven days",
			habits: []models.Habit{everyDayHabit("a", 1,
				dateOf(now), dateOf(now.AddDate(0, 0, -1)), dateOf(now.AddDate(0, 0, -2)))},
			want: 43, // round(3/7 * 100)
		},
		{
			name: "all seven days",
			habits: []models.Habit{everyDayHabit("a", 1,
				dateOf(now), dateOf(now.AddDate(0, 0, -1)), dateOf(now.AddDate(0, 0, -2)),
				dateOf(now.AddDate(0, 0, -3)), dateOf(now.AddDate(0, 0, -4)),
				dateOf(now.AddDate(0, 0, -5)), dateOf(now.AddDate(0, 0, -6)))},
			want: 100,
		},
		{
			name: "partial completion does not count",
			habits: []models.Habit{
				{ID: "a", Frequency: allDays, DailyTarget: 2, CompletionHistory: map[string]int{
					dateOf(now): 1, // below target
				}},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.habits, nil, now)
			if got.WeeklyCompletionRate != tt.want {
				t.Errorf("weeklyCompletionRate = %d, want %d", got.WeeklyCompletionRate, tt.want)
			}
		})
	}
}

func TestAchievementsUnlockedCount(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	achievements := []models.Achievement{
		{ID: "a", Unlocked: true},
		{ID: "b"},
		{ID: "c", Unlocked: true},
	}

	got := Compute(nil, achievements, now)
	if got.AchievementsUnlocked != 2 {
		t.Errorf("achievementsUnlocked = %d, want 2", got.AchievementsUnlocked)
	}
}
