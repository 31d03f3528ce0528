package cli

import (
	"fmt"
	"strings"

	"github.com/streakquest/streakquest/internal/models"
	"github.com/streakquest/streakquest/internal/storage"
	"github.com/streakquest/streakquest/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Service
}

// resolveHabit finds a habit by id or, failing that, by exact name.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	habits, err := ctx.Tracker.ListHabits()
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if h.Name == ref {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// formatFrequency renders a weekday set as short names, or "every day".
func formatFrequency(frequency []string) string {
	if len(frequency) == 7 {
		return "every day"
	}
	short := make([]string, 0, len(frequency))
	for _, day := range frequency {
		if len(day) > 3 {
			day = day[:3]
		}
		short = append(short, day)
	}
	return strings.Join(short, ",")
}

// announceUnlocked prints a celebration line per newly unlocked achievement.
func announceUnlocked(unlocked []models.Achievement) {
	for _, a := range unlocked {
		fmt.Printf("%s\n", unlockedStyle.Render(fmt.Sprintf("Achievement unlocked: %s (%s)", a.Name, a.Description)))
	}
}
