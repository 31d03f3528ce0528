package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := ctx.Tracker.Stats()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Your stats"))
	fmt.Printf("Habits tracked:        %d\n", stats.TotalHabits)
	fmt.Printf("Total completions:     %d\n", stats.TotalCompletions)
	fmt.Printf("Current streak:        %s\n", streakStyle.Render(fmt.Sprintf("%d days", stats.CurrentStreak)))
	fmt.Printf("Longest streak:        %d days\n", stats.LongestStreak)
	fmt.Printf("Weekly completion:     %d%%\n", stats.WeeklyCompletionRate)
	fmt.Printf("Achievements unlocked: %d\n", stats.AchievementsUnlocked)
	return nil
}
