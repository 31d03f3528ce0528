package cli

import (
	"fmt"
	"strings"
)

type SettingsCmd struct {
	Theme ThemeCmd `cmd:"" help:"Show or set the theme preference."`
}

var themes = []string{"blue", "green", "purple", "orange"}

type ThemeCmd struct {
	Value string `arg:"" optional:"" help:"Theme to set (blue, green, purple, orange)."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	settings, err := ctx.Tracker.Settings()
	if err != nil {
		return err
	}

	if c.Value == "" {
		fmt.Printf("Theme: %s\n", settings.Theme)
		return nil
	}

	value := strings.ToLower(c.Value)
	valid := false
	for _, t := range themes {
		if t == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid theme %q (expected one of: %s)", c.Value, strings.Join(themes, ", "))
	}

	settings.Theme = value
	if err := ctx.Tracker.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Theme set to %s\n", value)
	return nil
}
