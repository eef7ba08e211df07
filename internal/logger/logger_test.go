package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	defer reset()

	buf := new(bytes.Buffer)
	SetOutput(buf)

	Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("expected no output when verbose is off, got %q", buf.String())
	}

	SetVerbose(true)
	Debug("shown %d", 2)
	if got := buf.String(); got != "[DEBUG] shown 2\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSection(t *testing.T) {
	defer reset()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Section("Ingestion")
	if got := buf.String(); got != "\n=== Ingestion ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestIsVerbose(t *testing.T) {
	defer reset()

	if IsVerbose() {
		t.Error("verbose should default to off")
	}
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose on")
	}
}
