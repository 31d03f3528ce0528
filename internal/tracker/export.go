package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/models"
)

// Snapshot is the exported document: every persisted collection plus the
// theme preference, in a human-readable form suitable for download. There is
// no import path.
type Snapshot struct {
	ExportedAt   string               `json:"exported_at"`
	Theme        string               `json:"theme"`
	Habits       []models.Habit       `json:"habits"`
	Achievements []models.Achievement `json:"achievements"`
	Stats        models.UserStats     `json:"stats"`
}

// Export writes a snapshot of all tracked state to w as indented JSON.
func (s *Service) Export(w io.Writer) error {
	habits, err := s.ListHabits()
	if err != nil {
		return err
	}
	achievements, err := s.Achievements()
	if err != nil {
		return err
	}
	derived, err := s.Stats()
	if err != nil {
		return err
	}
	settings, err := s.Settings()
	if err != nil {
		return err
	}

	snapshot := Snapshot{
		ExportedAt:   s.now().Format(time.RFC3339),
		Theme:        settings.Theme,
		Habits:       habits,
		Achievements: achievements,
		Stats:        derived,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// ExportFilename returns the default snapshot filename for the given day.
func ExportFilename(now time.Time) string {
	return constants.ExportFilePrefix + now.Format(constants.DateFormat) + constants.ExportFileSuffix
}
