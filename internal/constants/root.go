package constants

const (
	AppName           = "streakquest"
	DefaultConfigPath = "~/.config/streakquest/streakquest.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used for reminder times (HH:MM)
	TimeFormat = "15:04"

	// Storage record keys
	HabitsKey       = "habits"
	AchievementsKey = "achievements"
	UserStatsKey    = "user_stats"
	SettingsKey     = "settings"

	// Export constants
	ExportFilePrefix = "streakquest-backup-"
	ExportFileSuffix = ".json"

	// DefaultDailyTarget is the number of completions required per day when
	// a habit does not specify one.
	DefaultDailyTarget = 1

	// DefaultGoal is the cumulative progress goal when unset.
	DefaultGoal = 1

	// CurrentStreakLookbackDays bounds the backward walk when deriving the
	// global current streak.
	CurrentStreakLookbackDays = 30

	// WeeklyRateWindowDays is the trailing window for the weekly completion rate.
	WeeklyRateWindowDays = 7

	// DefaultTheme is the initial theme preference.
	DefaultTheme = "blue"
)
