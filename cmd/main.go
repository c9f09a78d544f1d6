package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/desertthunder/vibecheck/internal/tasks"
	"github.com/desertthunder/vibecheck/internal/vibe"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	clientLogger := shared.WithLogger(logger, "component", "catalogue")
	recsLogger := shared.WithLogger(logger, "component", "recs")

	client := innertube.NewClient(config.Provider.ProxyURL, clientLogger)
	client.SetRetryOpts(shared.RetryOptsFromConfig(config.Retry))
	if config.Provider.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(config.Provider.TimeoutSeconds) * time.Second)
	}

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Client:   client,
		Analyzer: vibe.NewEngine(vibe.DefaultConfig()),
		Recs:     tasks.NewEngine(client, 5, recsLogger),
		Logger:   logger,
	})

	if err := runner.attachCache(); err != nil {
		logger.Warn("cache unavailable", "error", err)
	}

	app := &cli.Command{
		Name:    "vibecheck",
		Usage:   "Analyze the vibe cohesion of music playlists",
		Version: "0.3.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				// Child loggers hold their own level, so lower each one.
				for _, l := range []*log.Logger{logger, clientLogger, recsLogger} {
					shared.SetLogLevel(l, log.DebugLevel)
				}
			}
			return ctx, nil
		},
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
