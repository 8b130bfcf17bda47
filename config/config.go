package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pac-squad/parameter"
	"github.com/lixenwraith/pac-squad/physics"
)

// Config holds every gameplay tunable, defaults come from parameter
type Config struct {
	// Geometry
	Tile            float64 `yaml:"tile"`
	OffsetX         float64 `yaml:"offset_x"`
	OffsetY         float64 `yaml:"offset_y"`
	CenterThreshold float64 `yaml:"center_threshold"`

	// Actors
	PlayerSpeed      float64 `yaml:"player_speed"`
	EnemySpeed       float64 `yaml:"enemy_speed"`
	FrightenedFactor float64 `yaml:"frightened_factor"`
	ChaseRandomness  float64 `yaml:"chase_randomness"`
	CollectRadius    float64 `yaml:"collect_radius"`
	EnemyRadius      float64 `yaml:"enemy_radius"`

	// Scoring
	DotScore        int `yaml:"dot_score"`
	PelletScore     int `yaml:"pellet_score"`
	EnemyEatenScore int `yaml:"enemy_eaten_score"`

	// Timers
	DotRespawn         time.Duration `yaml:"dot_respawn"`
	PelletRespawn      time.Duration `yaml:"pellet_respawn"`
	PowerDuration      time.Duration `yaml:"power_duration"`
	EnemySpawnInterval time.Duration `yaml:"enemy_spawn_interval"`
	MaxEnemies         int           `yaml:"max_enemies"`

	// Leaderboard
	LeaderboardKey  string `yaml:"leaderboard_key"`
	LeaderboardSize int    `yaml:"leaderboard_size"`

	// Frame loop
	TickInterval time.Duration `yaml:"tick_interval"`
	MaxFrameStep time.Duration `yaml:"max_frame_step"`

	// Layout is an optional path to a text maze, empty uses the stock maze
	Layout string `yaml:"layout"`

	// Seed fixes enemy randomness, zero seeds from the clock
	Seed int64 `yaml:"seed"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Tile:            parameter.TileSize,
		OffsetX:         parameter.MazeOffsetX,
		OffsetY:         parameter.MazeOffsetY,
		CenterThreshold: parameter.CenterThreshold,

		PlayerSpeed:      parameter.PlayerSpeed,
		EnemySpeed:       parameter.EnemySpeed,
		FrightenedFactor: parameter.FrightenedSpeedFactor,
		ChaseRandomness:  parameter.ChaseRandomness,
		CollectRadius:    parameter.CollectRadius,
		EnemyRadius:      parameter.EnemyRadius,

		DotScore:        parameter.DotScore,
		PelletScore:     parameter.PelletScore,
		EnemyEatenScore: parameter.EnemyEatenScore,

		DotRespawn:         parameter.DotRespawnDelay,
		PelletRespawn:      parameter.PelletRespawnDelay,
		PowerDuration:      parameter.PowerDuration,
		EnemySpawnInterval: parameter.EnemySpawnInterval,
		MaxEnemies:         parameter.MaxEnemies,

		LeaderboardKey:  parameter.LeaderboardKey,
		LeaderboardSize: parameter.LeaderboardSize,

		TickInterval: parameter.TickInterval,
		MaxFrameStep: parameter.MaxFrameStep,
	}
}

// Load reads YAML overrides from path on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides to the defaults, unknown keys are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the simulation depends on
func (c *Config) Validate() error {
	switch {
	case c.Tile <= 0:
		return fmt.Errorf("%w: tile must be positive", ErrInvalid)
	case c.CenterThreshold <= 0 || c.CenterThreshold >= c.Tile/2:
		return fmt.Errorf("%w: center_threshold must be in (0, tile/2)", ErrInvalid)
	case c.PlayerSpeed <= 0 || c.EnemySpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case c.FrightenedFactor <= 0 || c.FrightenedFactor > 1:
		return fmt.Errorf("%w: frightened_factor must be in (0, 1]", ErrInvalid)
	case c.ChaseRandomness < 0 || c.ChaseRandomness > 1:
		return fmt.Errorf("%w: chase_randomness must be in [0, 1]", ErrInvalid)
	case c.CollectRadius <= 0 || c.EnemyRadius <= 0:
		return fmt.Errorf("%w: overlap radii must be positive", ErrInvalid)
	case c.DotRespawn <= 0 || c.PelletRespawn <= 0 || c.PowerDuration <= 0 || c.EnemySpawnInterval <= 0:
		return fmt.Errorf("%w: timer durations must be positive", ErrInvalid)
	case c.MaxEnemies < 1:
		return fmt.Errorf("%w: max_enemies must be at least 1", ErrInvalid)
	case c.LeaderboardKey == "" || c.LeaderboardSize < 1:
		return fmt.Errorf("%w: leaderboard key and size required", ErrInvalid)
	case c.TickInterval <= 0 || c.MaxFrameStep < c.TickInterval:
		return fmt.Errorf("%w: tick_interval must be positive and not exceed max_frame_step", ErrInvalid)
	}
	return nil
}

// Geometry returns the pixel mapping for a cols x rows maze
func (c *Config) Geometry(cols, rows int) physics.Geometry {
	return physics.Geometry{
		Tile:      c.Tile,
		OffsetX:   c.OffsetX,
		OffsetY:   c.OffsetY,
		Threshold: c.CenterThreshold,
		Cols:      cols,
		Rows:      rows,
	}
}
