package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/limiter"
	"github.com/desertthunder/vibecheck/internal/server"
	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/desertthunder/vibecheck/internal/tasks"
	"github.com/desertthunder/vibecheck/internal/ui"
	"github.com/urfave/cli/v3"
)

// Serve runs the analysis API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if port := cmd.Int("port"); port > 0 {
		r.config.Server.Port = port
	}

	var store limiter.Store = limiter.NewMemoryStore()
	if cmd.Bool("persist-limits") {
		if r.db == nil {
			return fmt.Errorf("%w: persistent rate limits need a cache database path in config", shared.ErrMissingConfig)
		}
		sqlStore, err := limiter.NewSQLStore(r.db)
		if err != nil {
			return fmt.Errorf("failed to initialize rate limit store: %w", err)
		}
		store = sqlStore
	}

	lim := limiter.New(store, r.logger)

	serveCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go lim.Sweep(serveCtx, time.Minute)

	router := server.NewAPIRouter(r.client, r.analyzer, r.recs, lim, r.config.Limits, r.logger)
	httpServer := &http.Server{
		Addr:    server.Addr(r.config.Server),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("listening at %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-serveCtx.Done():
	}

	r.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	return nil
}

// TUI launches the interactive playlist browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	input := cmd.StringArg("playlist")
	if input == "" {
		return fmt.Errorf("%w: playlist ID or URL is required", shared.ErrMissingArgument)
	}

	playlistID, ok := innertube.ParsePlaylistID(input)
	if !ok {
		return fmt.Errorf("%w: %q is not a playlist ID or URL", shared.ErrInvalidArgument, input)
	}

	// Redirect logs to a file to avoid interfering with TUI rendering
	logFile, err := os.OpenFile("vibecheck-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	fileLogger := shared.NewLogger(logFile)
	r.SetLogger(fileLogger)

	client := innertube.NewClient(r.config.Provider.ProxyURL, fileLogger)
	client.SetRetryOpts(shared.RetryOptsFromConfig(r.config.Retry))
	if r.cache != nil {
		client.UseCache(r.cache)
	}
	recs := tasks.NewEngine(client, 5, fileLogger)

	model := ui.NewModel(ctx, client, r.analyzer, recs, playlistID)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
