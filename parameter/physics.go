package parameter

import "time"

// Maze geometry in pixel space
const (
	// TileSize is the edge of one grid cell in pixels
	TileSize = 45.0

	// GridWidth and GridHeight are the default maze dimensions in cells
	GridWidth  = 19
	GridHeight = 21

	// MazeOffsetX and MazeOffsetY place the maze origin in pixel space
	MazeOffsetX = 532.5
	MazeOffsetY = 130.0

	// CenterThreshold is the per-axis distance within which an actor counts as centered
	CenterThreshold = 6.0
)

// Actor speeds in pixels per second
const (
	PlayerSpeed = 200.0
	EnemySpeed  = 160.0
)

// Overlap radii in pixels
const (
	// CollectRadius is the player-to-collectible center distance that counts as a pickup
	CollectRadius = TileSize / 2

	// EnemyRadius is the player-to-enemy center distance that counts as contact
	EnemyRadius = TileSize * 0.8
)

// Frame loop
const (
	// TickInterval is the fixed simulation step (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MaxFrameStep caps dt fed to motion so a stall cannot tunnel through walls
	MaxFrameStep = 50 * time.Millisecond
)
