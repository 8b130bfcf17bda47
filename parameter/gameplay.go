package parameter

import (
	"time"
)

// Scoring
const (
	// DotScore is awarded for each dot collected
	DotScore = 10

	// PelletScore is awarded for each power pellet collected
	PelletScore = 50

	// EnemyEatenScore is awarded for catching a frightened enemy
	EnemyEatenScore = 200
)

// Collectible respawn
const (
	// DotRespawnDelay is how long a collected dot stays gone
	DotRespawnDelay = 15 * time.Second

	// PelletRespawnDelay is how long a collected power pellet stays gone
	PelletRespawnDelay = 30 * time.Second
)

// Frightened mode
const (
	// PowerDuration is the frightened countdown, restarted (not stacked) by each pellet
	PowerDuration = 10 * time.Second

	// FrightenedSpeedFactor scales enemy base speed while frightened
	FrightenedSpeedFactor = 0.6
)

// Enemy spawning
const (
	// EnemySpawnInterval is the period of the recurring enemy spawn timer
	EnemySpawnInterval = 2 * time.Minute

	// MaxEnemies caps live enemies; the spawn timer is a no-op at the cap
	MaxEnemies = 6

	// ChaseRandomness is the chance a chasing enemy ignores the distance heuristic
	ChaseRandomness = 0.2
)

// Leaderboard
const (
	// LeaderboardKey is the key-value store key holding the JSON score list
	LeaderboardKey = "pac_squad_scores"

	// LeaderboardSize is the number of entries kept
	LeaderboardSize = 5
)
