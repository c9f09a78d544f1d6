package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/repositories"
	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/desertthunder/vibecheck/internal/tasks"
	"github.com/desertthunder/vibecheck/internal/vibe"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	client   *innertube.Client
	analyzer *vibe.Engine
	recs     *tasks.Engine
	cache    *repositories.Cache
	db       *sql.DB
	logger   *log.Logger
	output   io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Client   *innertube.Client
	Analyzer *vibe.Engine
	Recs     *tasks.Engine
	Logger   *log.Logger
	Output   io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		opts.Client = innertube.NewClient(opts.Config.Provider.ProxyURL, opts.Logger)
	}
	if opts.Analyzer == nil {
		opts.Analyzer = vibe.NewEngine(vibe.DefaultConfig())
	}
	if opts.Recs == nil {
		opts.Recs = tasks.NewEngine(opts.Client, 5, opts.Logger)
	}

	return &Runner{
		config:   opts.Config,
		client:   opts.Client,
		analyzer: opts.Analyzer,
		recs:     opts.Recs,
		logger:   opts.Logger,
		output:   opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, analyzeCommand, recommendCommand, artistCommand, serveCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// attachCache opens the configured cache database and wires it into the
// provider client. Missing configuration is not an error; the client simply
// runs uncached.
func (r *Runner) attachCache() error {
	if r.cache != nil || r.config.Cache.Path == "" {
		return nil
	}

	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Cache.MaxOpenConns, r.config.Cache.MaxIdleConns)

	ttl := time.Duration(r.config.Cache.TTLSeconds) * time.Second
	cache, err := repositories.NewCache(db, ttl, r.logger)
	if err != nil {
		return err
	}

	r.db = db
	r.cache = cache
	r.client.UseCache(cache)
	return nil
}

// SetLogger swaps the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
