package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogDirectory(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Info("journal opened")
	Warn("skipped record", "key", "journal_2024-01-01")
}

func TestSessionIDTagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	id := SessionID()
	if len(id) != 8 {
		t.Fatalf("expected 8 character session id, got %q", id)
	}

	Info("first")
	Warn("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, id) {
			t.Errorf("log line missing session id %s: %q", id, line)
		}
	}
}

func TestDebugLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "normal mode drops debug", debug: false, wantDebug: false},
		{name: "debug mode keeps debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Init(Config{Debug: tt.debug, Output: &buf}); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			Debug("series read", "day", 3)
			if got := strings.Contains(buf.String(), "series read"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// Must not panic
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
