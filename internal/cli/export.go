package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/streakquest/streakquest/internal/tracker"
)

type ExportCmd struct {
	Output string `help:"Output file path (default: streakquest-backup-YYYY-MM-DD.json)." short:"o" default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	path := c.Output
	if path == "" {
		path = tracker.ExportFilename(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := ctx.Tracker.Export(f); err != nil {
		return err
	}

	fmt.Printf("Exported data to %s\n", path)
	return nil
}
