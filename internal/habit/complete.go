package habit

import (
	"time"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/models"
)

// applyCompletion records one completion event for the habit at the local
// calendar date of now. The per-day counter is clamped at the daily target;
// events past the target are silently ignored. It returns true only for the
// event that first brings the day to full completion, which is also the only
// event that touches the streak, last-completed date, and progress counter.
func applyCompletion(h *models.Habit, now time.Time) bool {
	today := now.Format(constants.DateFormat)
	target := h.Target()

	if h.CompletionHistory == nil {
		h.CompletionHistory = make(map[string]int)
	}

	before := h.CompletionHistory[today]
	if before >= target {
		// Already fully completed today; extra events are no-ops.
		return false
	}

	after := before + 1
	if after > target {
		after = target
	}
	h.CompletionHistory[today] = after

	if after < target {
		return false
	}

	// Calendar subtraction keeps "yesterday" consistent with how today was
	// derived, including across DST transitions.
	yesterday := now.AddDate(0, 0, -1).Format(constants.DateFormat)

	switch {
	case h.LastCompleted == "" || h.LastCompleted == yesterday:
		h.Streak++
	case h.LastCompleted != today:
		h.Streak = 1
	}

	h.LastCompleted = today
	if h.Progress < h.Goal {
		h.Progress++
	}

	return true
}

// resetDailyProgress zeroes the times-today counter for habits that were not
// completed on the current date. Completion history and streaks are left
// untouched. Reports whether anything changed.
func resetDailyProgress(habits []models.Habit, today string) bool {
	changed := false
	for i := range habits {
		if habits[i].LastCompleted == today {
			continue
		}
		if habits[i].Progress > 0 {
			habits[i].Progress = 0
			changed = true
		}
	}
	return changed
}
