package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/streakquest/streakquest/internal/cli"
	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/errors"
	"github.com/streakquest/streakquest/internal/logger"
	"github.com/streakquest/streakquest/internal/storage"
	"github.com/streakquest/streakquest/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON store; anything else uses SQLite." type:"path" default:"~/.config/streakquest/streakquest.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize streakquest storage."`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits and daily completions."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show derived statistics."`
	Achievements cli.AchievementsCmd `cmd:"" help:"View and unlock achievements."`
	Export       cli.ExportCmd       `cmd:"" help:"Export all data to a JSON snapshot."`
	Settings     cli.SettingsCmd     `cmd:"" help:"Manage preferences."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first habit tracker with streaks, stats, and achievements"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store, time.Now),
	}

	// Init handles its own storage bootstrap; everything else needs a
	// loaded store.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
