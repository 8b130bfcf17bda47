package physics

import (
	"math"

	"github.com/lixenwraith/pac-squad/maze"
)

// Geometry maps between pixel space and grid cells
type Geometry struct {
	Tile      float64
	OffsetX   float64
	OffsetY   float64
	Threshold float64 // per-axis centering tolerance in pixels
	Cols      int
	Rows      int
}

// MazeWidth returns the grid width in pixels
func (g Geometry) MazeWidth() float64 {
	return float64(g.Cols) * g.Tile
}

// MazeHeight returns the grid height in pixels
func (g Geometry) MazeHeight() float64 {
	return float64(g.Rows) * g.Tile
}

// CellOf returns the cell containing pixel position (x, y)
// Positions outside the maze map to cells outside the grid bounds
func (g Geometry) CellOf(x, y float64) maze.Point {
	return maze.Point{
		X: int(math.Floor((x - g.OffsetX) / g.Tile)),
		Y: int(math.Floor((y - g.OffsetY) / g.Tile)),
	}
}

// CenterOf returns the pixel center of cell p
func (g Geometry) CenterOf(p maze.Point) (x, y float64) {
	x = float64(p.X)*g.Tile + g.Tile/2 + g.OffsetX
	y = float64(p.Y)*g.Tile + g.Tile/2 + g.OffsetY
	return x, y
}

// Centered returns the cell of (x, y) and whether the position is within threshold of its center on both axes
func (g Geometry) Centered(x, y float64) (maze.Point, bool) {
	cell := g.CellOf(x, y)
	cx, cy := g.CenterOf(cell)
	return cell, math.Abs(x-cx) < g.Threshold && math.Abs(y-cy) < g.Threshold
}

// Wrap relocates a position that left the maze by more than half a tile to the opposite edge
// Each axis is handled independently, the orthogonal coordinate is unchanged
func (g Geometry) Wrap(x, y float64) (float64, float64, bool) {
	half := g.Tile / 2
	wrapped := false

	minX, maxX := g.OffsetX-half, g.OffsetX+g.MazeWidth()+half
	if x < minX {
		x = maxX
		wrapped = true
	} else if x > maxX {
		x = minX
		wrapped = true
	}

	minY, maxY := g.OffsetY-half, g.OffsetY+g.MazeHeight()+half
	if y < minY {
		y = maxY
		wrapped = true
	} else if y > maxY {
		y = minY
		wrapped = true
	}

	return x, y, wrapped
}
