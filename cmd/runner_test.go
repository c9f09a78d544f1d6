package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/desertthunder/vibecheck/internal/innertube"
	"github.com/desertthunder/vibecheck/internal/shared"
	"github.com/desertthunder/vibecheck/internal/tasks"
	tu "github.com/desertthunder/vibecheck/internal/testing"
	"github.com/desertthunder/vibecheck/internal/vibe"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			client := innertube.NewClient("", logger)
			analyzer := vibe.NewEngine(vibe.DefaultConfig())
			recs := tasks.NewEngine(&tu.MockCatalogue{}, 0, logger)

			runner := NewRunner(RunnerOpts{
				Config:   config,
				Client:   client,
				Analyzer: analyzer,
				Recs:     recs,
				Logger:   logger,
				Output:   output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.client != client {
				t.Error("expected client to be set")
			}
			if runner.analyzer != analyzer {
				t.Error("expected analyzer to be set")
			}
			if runner.recs != recs {
				t.Error("expected recommendation engine to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil dependencies uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config")
			}
			if runner.client == nil {
				t.Error("expected default client")
			}
			if runner.analyzer == nil {
				t.Error("expected default analyzer")
			}
			if runner.recs == nil {
				t.Error("expected default recommendation engine")
			}
			if runner.logger == nil {
				t.Error("expected default logger")
			}
			if runner.output == nil {
				t.Error("expected default output")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact output", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := strings.TrimSpace(output.String())
			if got != `{"key":"value"}` {
				t.Errorf("unexpected output %q", got)
			}
		})

		t.Run("pretty output", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(output.String(), "\n  ") {
				t.Errorf("expected indented output, got %q", output.String())
			}

			var decoded map[string]string
			if err := json.Unmarshal(output.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if decoded["key"] != "value" {
				t.Errorf("unexpected decoded payload %v", decoded)
			}
		})

		t.Run("write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
				t.Error("expected error from failing writer")
			}
		})

		t.Run("newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("found %d tracks\n", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.String() != "found 3 tracks\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("attachCache", func(t *testing.T) {
		t.Run("without a configured path is a no-op", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Cache.Path = ""
			runner := NewRunner(RunnerOpts{Config: config})

			if err := runner.attachCache(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runner.cache != nil {
				t.Error("expected no cache to be attached")
			}
		})

		t.Run("opens and wires the database", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Cache.Path = ":memory:"
			config.Cache.MaxOpenConns = 1
			runner := NewRunner(RunnerOpts{Config: config})

			if err := runner.attachCache(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runner.cache == nil {
				t.Error("expected cache to be attached")
			}
			if runner.db == nil {
				t.Fatal("expected database handle to be kept")
			}
			if got := runner.db.Stats().MaxOpenConnections; got != 1 {
				t.Errorf("expected pool limit of 1 applied, got %d", got)
			}
		})
	})
}
