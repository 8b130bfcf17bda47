package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.DotRespawn != 15*time.Second || cfg.PelletRespawn != 30*time.Second || cfg.PowerDuration != 10*time.Second {
		t.Errorf("unexpected timer defaults: %+v", cfg)
	}
	if cfg.FrightenedFactor != 0.6 || cfg.ChaseRandomness != 0.2 {
		t.Errorf("unexpected steering defaults: %v %v", cfg.FrightenedFactor, cfg.ChaseRandomness)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
player_speed: 240
power_duration: 6s
max_enemies: 3
seed: 42
layout: maps/tiny.txt
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.PlayerSpeed != 240 || cfg.PowerDuration != 6*time.Second || cfg.MaxEnemies != 3 || cfg.Seed != 42 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Layout != "maps/tiny.txt" {
		t.Errorf("layout = %q", cfg.Layout)
	}
	if cfg.EnemySpeed != 160 {
		t.Errorf("untouched field changed: %v", cfg.EnemySpeed)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg.Tile != Default().Tile {
		t.Error("empty document changed defaults")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "turbo: true"},
		{"negative speed", "enemy_speed: -1"},
		{"factor above one", "frightened_factor: 1.5"},
		{"threshold too wide", "center_threshold: 30"},
		{"zero enemies", "max_enemies: 0"},
		{"bad duration", "dot_respawn: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("expected error for %q", tt.doc)
			}
		})
	}

	if _, err := Parse([]byte("max_enemies: 0")); !errors.Is(err, ErrInvalid) {
		t.Errorf("range error should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pac.yaml")
	if err := os.WriteFile(path, []byte("dot_score: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DotScore != 25 {
		t.Errorf("DotScore = %d", cfg.DotScore)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGeometry(t *testing.T) {
	g := Default().Geometry(19, 21)
	if g.Cols != 19 || g.Rows != 21 || g.Tile != 45 || g.Threshold != 6 {
		t.Errorf("Geometry = %+v", g)
	}
}
