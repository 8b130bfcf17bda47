package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogging points the standard logger at path, an empty path discards logs
// The terminal owns stdout while the game runs
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// closeLogging closes f and returns the standard logger to stderr
func closeLogging(f *os.File) {
	log.SetOutput(os.Stderr)
	f.Close()
}

// defaultScoresPath returns the per-user leaderboard file
func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pac-squad-scores.json"
	}
	return filepath.Join(dir, "pac-squad", "scores.json")
}
