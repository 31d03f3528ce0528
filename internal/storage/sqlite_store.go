package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/logger"
	"github.com/streakquest/streakquest/internal/models"
)

// SQLiteStore persists records as JSON values in a key/value table. It is
// the default provider; the schema is a single table so there is no
// migration runner.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// loadRecord decodes the record stored under key into v. It reports false
// when the key is absent or its value is malformed; malformed values are
// logged and dropped, never propagated.
func (s *SQLiteStore) loadRecord(key string, v interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Warn("Discarding malformed record", "key", key, "error", err)
		if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
			return false, fmt.Errorf("failed to drop malformed record %q: %w", key, err)
		}
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) saveRecord(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var habits []models.Habit
	ok, err := s.loadRecord(constants.HabitsKey, &habits)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Habit{}, nil
	}
	return habits, nil
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.HabitsKey, habits)
}

func (s *SQLiteStore) GetAchievements() ([]models.Achievement, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var achievements []models.Achievement
	ok, err := s.loadRecord(constants.AchievementsKey, &achievements)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Achievement{}, nil
	}
	return achievements, nil
}

func (s *SQLiteStore) SaveAchievements(achievements []models.Achievement) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.AchievementsKey, achievements)
}

func (s *SQLiteStore) GetStats() (models.UserStats, error) {
	if s.db == nil {
		return models.UserStats{}, fmt.Errorf("storage not loaded")
	}
	var stats models.UserStats
	if _, err := s.loadRecord(constants.UserStatsKey, &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStats(stats models.UserStats) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.UserStatsKey, stats)
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	var settings models.Settings
	ok, err := s.loadRecord(constants.SettingsKey, &settings)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.saveRecord(constants.SettingsKey, settings)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
