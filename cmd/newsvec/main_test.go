package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	app := &cli.App{
		Name: "newsvec",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
			},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			err := app.Run([]string{"newsvec", "--log-level", level})
			require.NoError(t, err, "level %q", level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := app.Run([]string{"newsvec", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("configures the default logger", func(t *testing.T) {
		require.NoError(t, app.Run([]string{"newsvec", "--log-level", "error"}))

		assert.False(t, slog.Default().Enabled(nil, slog.LevelWarn))
		assert.True(t, slog.Default().Enabled(nil, slog.LevelError))
	})
}

func TestScrapeCommandFlags(t *testing.T) {
	t.Run("sources config must exist", func(t *testing.T) {
		app := &cli.App{
			Name: "newsvec",
			Commands: []*cli.Command{
				{
					Name:   "scrape",
					Action: scrapeCommand,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "db", Required: true},
						&cli.StringFlag{Name: "sources", Required: true},
					},
				},
			},
		}

		err := app.Run([]string{"newsvec", "scrape",
			"--db", t.TempDir(),
			"--sources", "/nonexistent/sources.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source config")
	})
}
