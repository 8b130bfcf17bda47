package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	logFile := setupLogging("")
	if logFile != nil {
		t.Error("Expected nil log file for empty path")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "pac-squad.log")
	logFile := setupLogging(path)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	log.Println("Test log message")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("log file content = %q", data)
	}
}

func TestDefaultScoresPath(t *testing.T) {
	if p := defaultScoresPath(); !strings.HasSuffix(p, ".json") {
		t.Errorf("scores path = %q", p)
	}
}

func TestRunClosesLogOnSettingsError(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "pac-squad.log")

	oldConfig, oldLog := *configFlag, *logFlag
	defer func() { *configFlag, *logFlag = oldConfig, oldLog }()
	*configFlag = filepath.Join(dir, "missing.yaml")
	*logFlag = logPath

	if code := run(); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	if w := log.Writer(); w != os.Stderr {
		t.Errorf("log output left at %v after run", w)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "settings:") || !strings.Contains(string(data), "missing.yaml") {
		t.Errorf("log file content = %q", data)
	}
}
