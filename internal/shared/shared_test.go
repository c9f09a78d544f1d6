package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestWithLogger(t *testing.T) {
	output := &bytes.Buffer{}
	logger := NewLogger(output)

	child := WithLogger(logger, "component", "catalogue")
	child.Info("fetching playlist")

	if !strings.Contains(output.String(), "component=catalogue") {
		t.Errorf("expected component field in child log entry, got %q", output.String())
	}

	output.Reset()
	logger.Info("plain entry")

	if strings.Contains(output.String(), "component=catalogue") {
		t.Errorf("parent logger should not carry the child's fields, got %q", output.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	output := &bytes.Buffer{}
	logger := NewLogger(output)

	logger.Debug("hidden by default")
	if output.Len() != 0 {
		t.Errorf("expected debug to be suppressed at the default level, got %q", output.String())
	}

	SetLogLevel(logger, log.DebugLevel)
	logger.Debug("now visible")
	if !strings.Contains(output.String(), "now visible") {
		t.Errorf("expected debug entry after lowering the level, got %q", output.String())
	}

	output.Reset()
	SetLogLevel(logger, log.ErrorLevel)
	logger.Info("suppressed")
	if output.Len() != 0 {
		t.Errorf("expected info to be suppressed at error level, got %q", output.String())
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if len(id) != 36 {
		t.Errorf("expected a 36-character uuid, got %q", id)
	}
	if GenerateID() == id {
		t.Error("expected unique ids across calls")
	}
}
