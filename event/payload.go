package event

import (
	"time"

	"github.com/lixenwraith/pac-squad/maze"
)

// GameEvent is one state change emitted by the simulation for host consumers
type GameEvent struct {
	Type    EventType
	At      time.Duration // session virtual time
	Payload any
}

// SessionPayload identifies a session
type SessionPayload struct {
	ID string
}

// CollectPayload describes a collectible change
type CollectPayload struct {
	Cell  maze.Point
	Kind  maze.Cell
	Score int // total after the pickup, zero for restores
}

// ModePayload carries the enemy mode after a switch
type ModePayload struct {
	Frightened bool
}

// EnemyPayload identifies an enemy
type EnemyPayload struct {
	ID    int
	Score int
}

// RankedScore is one leaderboard row as shown after a game
type RankedScore struct {
	Score   int
	Date    time.Time
	Current bool
}

// GameOverPayload carries the final result
type GameOverPayload struct {
	ID          string
	Score       int
	Leaderboard []RankedScore
	SaveErr     error
}
