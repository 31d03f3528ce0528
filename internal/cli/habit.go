package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/habit"
	"github.com/streakquest/streakquest/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Done   HabitDoneCmd   `cmd:"" help:"Record a completion for today."`
}

type HabitAddCmd struct {
	Name     string `arg:"" optional:"" help:"Habit name."`
	Category string `help:"Habit category." default:"general"`
	Days     string `help:"Comma-separated weekdays the habit is scheduled on (e.g. mon,wed,fri)." default:""`
	Target   int    `help:"Completions required per day." default:"1"`
	Goal     int    `help:"Cumulative progress goal." default:"1"`
	Reminder string `help:"Optional reminder time (HH:MM)." default:""`
	Icon     string `help:"Optional icon name." default:""`
	Unit     string `help:"Optional unit of measurement (e.g. minutes, pages)." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	in := habit.CreateInput{
		Name:         c.Name,
		Category:     c.Category,
		ReminderTime: c.Reminder,
		Icon:         c.Icon,
		Unit:         c.Unit,
		Goal:         c.Goal,
		DailyTarget:  c.Target,
	}
	if c.Days != "" {
		frequency, err := validation.ParseFrequencyList(c.Days)
		if err != nil {
			return err
		}
		in.Frequency = frequency
	}

	// No name on the command line means interactive entry.
	if strings.TrimSpace(c.Name) == "" {
		if err := runAddForm(&in); err != nil {
			return err
		}
	}
	if len(in.Frequency) == 0 {
		return fmt.Errorf("habit must be scheduled on at least one weekday (use --days)")
	}

	h, unlocked, err := ctx.Tracker.CreateHabit(in)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", h.Name, formatFrequency(h.Frequency))
	announceUnlocked(unlocked)
	return nil
}

func runAddForm(in *habit.CreateInput) error {
	target := strconv.Itoa(in.DailyTarget)
	goal := strconv.Itoa(in.Goal)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&in.Name).
				Validate(validation.ValidateName),
			huh.NewInput().
				Title("Category").
				Value(&in.Category),
			huh.NewMultiSelect[string]().
				Title("Scheduled Days").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Tuesday", "tuesday"),
					huh.NewOption("Wednesday", "wednesday"),
					huh.NewOption("Thursday", "thursday"),
					huh.NewOption("Friday", "friday"),
					huh.NewOption("Saturday", "saturday"),
					huh.NewOption("Sunday", "sunday"),
				).
				Value(&in.Frequency).
				Validate(func(days []string) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
			huh.NewInput().
				Title("Times per day").
				Value(&target).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil || i < 1 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Progress goal").
				Value(&goal).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil || i < 1 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	in.DailyTarget, _ = strconv.Atoi(target)
	in.Goal, _ = strconv.Atoi(goal)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Tracker.ListHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'streakquest habit add'.")
		return nil
	}

	for _, h := range habits {
		line := fmt.Sprintf("%s  %s", titleStyle.Render(h.Name), mutedStyle.Render(formatFrequency(h.Frequency)))
		if h.Streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("%d day streak", h.Streak))
		}
		fmt.Println(line)
		fmt.Printf("  %s\n", mutedStyle.Render(fmt.Sprintf("id: %s  category: %s  target: %d/day  progress: %d/%d",
			h.ID, h.Category, h.Target(), h.Progress, h.Goal)))
	}

	return nil
}

type HabitEditCmd struct {
	Ref      string  `arg:"" help:"Habit id or name."`
	Name     *string `help:"New habit name."`
	Category *string `help:"New category."`
	Days     *string `help:"New comma-separated weekday schedule."`
	Target   *int    `help:"New daily completion target."`
	Goal     *int    `help:"New cumulative progress goal."`
	Reminder *string `help:"New reminder time (HH:MM), empty to clear."`
	Icon     *string `help:"New icon name."`
	Unit     *string `help:"New unit of measurement."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Ref)
	if err != nil {
		return err
	}

	in := habit.UpdateInput{
		ID:           h.ID,
		Name:         c.Name,
		Category:     c.Category,
		ReminderTime: c.Reminder,
		Icon:         c.Icon,
		Unit:         c.Unit,
		Goal:         c.Goal,
		DailyTarget:  c.Target,
	}
	if c.Days != nil {
		frequency, err := validation.ParseFrequencyList(*c.Days)
		if err != nil {
			return err
		}
		in.Frequency = frequency
	}

	updated, err := ctx.Tracker.UpdateHabit(in)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", updated.Name)
	return nil
}

type HabitDeleteCmd struct {
	Ref string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Ref)
	if err != nil {
		return err
	}

	deleted, err := ctx.Tracker.DeleteHabit(h.ID)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Printf("Habit %q was already gone.\n", c.Ref)
		return nil
	}

	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

type HabitDoneCmd struct {
	Ref string `arg:"" help:"Habit id or name."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Ref)
	if err != nil {
		return err
	}

	updated, completed, unlocked, err := ctx.Tracker.CompleteHabit(h.ID)
	if err != nil {
		if errors.Is(err, habit.ErrNotFound) {
			return fmt.Errorf("habit %q not found", c.Ref)
		}
		return err
	}

	today := time.Now().Format(constants.DateFormat)
	target := updated.Target()
	switch {
	case completed:
		fmt.Println(successStyle.Render(fmt.Sprintf("%s fully completed for today!", updated.Name)))
		if updated.Streak > 1 {
			fmt.Println(streakStyle.Render(fmt.Sprintf("Streak: %d days", updated.Streak)))
		}
	default:
		done := updated.CompletionsOn(today)
		if done >= target {
			fmt.Println(mutedStyle.Render("Already completed all repetitions for today."))
		} else {
			fmt.Printf("Progress: %d/%d repetitions today\n", done, target)
		}
	}
	announceUnlocked(unlocked)
	return nil
}
