package cli

import (
	"errors"
	"fmt"

	"github.com/streakquest/streakquest/internal/achievements"
)

type AchievementsCmd struct {
	List   AchievementListCmd   `cmd:"" help:"List achievements." default:"1"`
	Unlock AchievementUnlockCmd `cmd:"" help:"Unlock an achievement by id."`
}

type AchievementListCmd struct{}

func (c *AchievementListCmd) Run(ctx *Context) error {
	all, err := ctx.Tracker.Achievements()
	if err != nil {
		return err
	}

	for _, a := range all {
		if a.Unlocked {
			fmt.Printf("%s %s: %s\n", unlockedStyle.Render("[x]"), a.Name, a.Description)
			fmt.Printf("    %s\n", mutedStyle.Render("unlocked "+a.UnlockedAt))
		} else {
			fmt.Println(lockedStyle.Render(fmt.Sprintf("[ ] %s: %s", a.Name, a.Description)))
		}
	}
	return nil
}

type AchievementUnlockCmd struct {
	ID string `arg:"" help:"Achievement id (e.g. first-habit)."`
}

func (c *AchievementUnlockCmd) Run(ctx *Context) error {
	a, err := ctx.Tracker.UnlockAchievement(c.ID)
	if err != nil {
		if errors.Is(err, achievements.ErrNotFound) {
			return fmt.Errorf("achievement %q not found", c.ID)
		}
		return err
	}

	fmt.Println(unlockedStyle.Render(fmt.Sprintf("Achievement unlocked: %s (%s)", a.Name, a.Description)))
	return nil
}
