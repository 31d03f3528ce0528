package models

import "github.com/streakquest/streakquest/internal/constants"

// Settings holds user preferences that live alongside the tracked data.
type Settings struct {
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationTime     string `json:"notification_time,omitempty"` // HH:MM
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:                constants.DefaultTheme,
		NotificationsEnabled: true,
		NotificationTime:     "08:00",
	}
}
