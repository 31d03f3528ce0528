package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/models"
)

var dayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseFrequency normalizes a list of weekday names (full names or three
// letter abbreviations, any case) into the canonical lowercase full names
// stored on a habit. Duplicates collapse; order follows the week starting
// Sunday.
func ParseFrequency(days []string) ([]string, error) {
	seen := make(map[time.Weekday]bool)
	for _, day := range days {
		name := strings.TrimSpace(strings.ToLower(day))
		if name == "" {
			continue
		}
		wd, ok := dayNames[name]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", day)
		}
		seen[wd] = true
	}

	var frequency []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if seen[wd] {
			frequency = append(frequency, models.WeekdayName(wd))
		}
	}
	return frequency, nil
}

// ParseFrequencyList splits a comma separated weekday list and normalizes it.
func ParseFrequencyList(s string) ([]string, error) {
	return ParseFrequency(strings.Split(s, ","))
}

// ValidateName checks that a habit name is non-empty.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// ValidateDailyTarget checks a daily repetition target. Zero is allowed and
// means "use the default".
func ValidateDailyTarget(n int) error {
	if n < 0 {
		return fmt.Errorf("daily target must be a positive number")
	}
	return nil
}

// ValidateGoal checks a cumulative progress goal. Zero is allowed and means
// "use the default".
func ValidateGoal(n int) error {
	if n < 0 {
		return fmt.Errorf("goal must be a positive number")
	}
	return nil
}

// ValidateReminderTime checks an optional HH:MM reminder time.
func ValidateReminderTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", s)
	}
	return nil
}
