package models

import (
	"strings"
	"time"

	"github.com/streakquest/streakquest/internal/constants"
)

// Habit is a recurring activity tracked per calendar day. CompletionHistory
// maps YYYY-MM-DD date strings to that day's completion count, which never
// exceeds DailyTarget.
type Habit struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	Frequency         []string       `json:"frequency"` // lowercase weekday names
	ReminderTime      string         `json:"reminder_time,omitempty"`
	Color             string         `json:"color,omitempty"`
	Icon              string         `json:"icon,omitempty"`
	Unit              string         `json:"unit,omitempty"`
	Goal              int            `json:"goal"`
	DailyTarget       int            `json:"daily_target"`
	Streak            int            `json:"streak"`
	Progress          int            `json:"progress"`
	LastCompleted     string         `json:"last_completed,omitempty"` // YYYY-MM-DD
	CompletionHistory map[string]int `json:"completion_history"`
}

// WeekdayName returns the lowercase weekday name used in Frequency sets.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// Target returns the daily completion target, treating unset or invalid
// values as 1.
func (h *Habit) Target() int {
	if h.DailyTarget < 1 {
		return constants.DefaultDailyTarget
	}
	return h.DailyTarget
}

// ScheduledOn reports whether the habit is scheduled on the given day's
// weekday.
func (h *Habit) ScheduledOn(day time.Time) bool {
	name := WeekdayName(day.Weekday())
	for _, d := range h.Frequency {
		if d == name {
			return true
		}
	}
	return false
}

// CompletionsOn returns the completion count recorded for the given date.
func (h *Habit) CompletionsOn(date string) int {
	return h.CompletionHistory[date]
}

// FullyCompletedOn reports whether the habit reached its daily target on the
// given date.
func (h *Habit) FullyCompletedOn(date string) bool {
	return h.CompletionHistory[date] >= h.Target()
}
