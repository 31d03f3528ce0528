package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/logger"
	"github.com/streakquest/streakquest/internal/models"
)

type document struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

// JSONStore persists all records as keyed blobs inside a single JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		// A corrupt document is treated as absent: every record falls back
		// to its empty default and the next save rewrites the file.
		logger.Warn("Discarding malformed storage document", "path", s.path, "error", err)
		s.doc = &document{Version: 1}
	}

	if s.doc.Records == nil {
		s.doc.Records = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// loadRecord decodes the record stored under key into v. It reports false
// when the key is absent or its value is malformed; malformed values are
// logged and dropped, never propagated.
func (s *JSONStore) loadRecord(key string, v interface{}) bool {
	raw, ok := s.doc.Records[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logger.Warn("Discarding malformed record", "key", key, "error", err)
		delete(s.doc.Records, key)
		return false
	}
	return true
}

func (s *JSONStore) saveRecord(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}
	s.doc.Records[key] = raw
	return s.save()
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var habits []models.Habit
	if !s.loadRecord(constants.HabitsKey, &habits) {
		return []models.Habit{}, nil
	}
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.HabitsKey, habits)
}

func (s *JSONStore) GetAchievements() ([]models.Achievement, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var achievements []models.Achievement
	if !s.loadRecord(constants.AchievementsKey, &achievements) {
		return []models.Achievement{}, nil
	}
	return achievements, nil
}

func (s *JSONStore) SaveAchievements(achievements []models.Achievement) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.AchievementsKey, achievements)
}

func (s *JSONStore) GetStats() (models.UserStats, error) {
	if s.doc == nil {
		return models.UserStats{}, fmt.Errorf("storage not loaded")
	}
	var stats models.UserStats
	s.loadRecord(constants.UserStatsKey, &stats)
	return stats, nil
}

func (s *JSONStore) SaveStats(stats models.UserStats) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.UserStatsKey, stats)
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	var settings models.Settings
	if !s.loadRecord(constants.SettingsKey, &settings) {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.SettingsKey, settings)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
