package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter config file and initializes the cache database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", configPath)

	if err := r.attachCache(); err != nil {
		return err
	}
	if r.cache != nil {
		r.logger.Info("cache database initialized", "path", r.config.Cache.Path)
	}

	r.writePlain("Setup complete. Edit %s to point at your provider proxy.\n", configPath)
	return nil
}

// CachePurge deletes expired fetch cache rows.
func (r *Runner) CachePurge(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("%w: no cache database configured", shared.ErrMissingConfig)
	}

	purged, err := r.cache.Purge()
	if err != nil {
		return err
	}

	r.writePlain("Purged %d expired entries.\n", purged)
	return nil
}
