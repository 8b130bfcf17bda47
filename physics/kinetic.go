package physics

import (
	"github.com/lixenwraith/pac-squad/maze"
)

// Body is the simulation-owned motion state of one actor, in pixels and pixels per second
type Body struct {
	X, Y  float64
	Dir   maze.Direction
	Speed float64
}

// Velocity returns the single axis-aligned velocity for the current heading, zero when stopped
func (b *Body) Velocity() (vx, vy float64) {
	switch b.Dir {
	case maze.Left:
		return -b.Speed, 0
	case maze.Right:
		return b.Speed, 0
	case maze.Up:
		return 0, -b.Speed
	case maze.Down:
		return 0, b.Speed
	default:
		return 0, 0
	}
}

// Cell returns the grid cell the body occupies
func (b *Body) Cell(g Geometry) maze.Point {
	return g.CellOf(b.X, b.Y)
}

// SnapTo places the body exactly on the center of cell p
func (b *Body) SnapTo(g Geometry, p maze.Point) {
	b.X, b.Y = g.CenterOf(p)
}

// Integrate advances position by velocity over dt seconds
func (b *Body) Integrate(dt float64) {
	vx, vy := b.Velocity()
	b.X += vx * dt
	b.Y += vy * dt
}
