package maze

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty         = errors.New("layout has no rows")
	ErrRagged        = errors.New("layout rows differ in width")
	ErrNoPlayerSpawn = errors.New("layout has no player spawn")
	ErrNoEnemySpawn  = errors.New("layout has no enemy spawn")
	ErrSpawnBlocked  = errors.New("spawn cell has no exit")
	ErrWrapRange     = errors.New("wrap index out of range")
	ErrUnreachable   = errors.New("collectible unreachable from player spawn")
)

// Validate checks the layout invariants a Grid relies on:
// rectangular, spawns inside and open with at least one exit,
// wrap indices in range, every collectible reachable from the player spawn
func Validate(l *Layout) error {
	if l == nil || len(l.Cells) == 0 {
		return ErrEmpty
	}
	width := len(l.Cells[0])
	if width == 0 {
		return ErrEmpty
	}
	for y, row := range l.Cells {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, len(row), width)
		}
	}
	height := len(l.Cells)

	for _, r := range l.WrapRows {
		if r >= height {
			return fmt.Errorf("%w: row %d", ErrWrapRange, r)
		}
	}
	for _, c := range l.WrapCols {
		if c >= width {
			return fmt.Errorf("%w: column %d", ErrWrapRange, c)
		}
	}

	// Validation runs on a grid view without re-validating
	g := &Grid{
		width:    width,
		height:   height,
		cells:    l.Cells,
		wrapRows: make(map[int]struct{}),
		wrapCols: make(map[int]struct{}),
	}
	for _, r := range l.WrapRows {
		g.wrapRows[r] = struct{}{}
	}
	for _, c := range l.WrapCols {
		g.wrapCols[c] = struct{}{}
	}

	if !openCell(g, l.PlayerSpawn) {
		return ErrNoPlayerSpawn
	}
	if !openCell(g, l.EnemySpawn) {
		return ErrNoEnemySpawn
	}
	if len(g.Exits(l.PlayerSpawn.X, l.PlayerSpawn.Y)) == 0 {
		return fmt.Errorf("%w: player at (%d,%d)", ErrSpawnBlocked, l.PlayerSpawn.X, l.PlayerSpawn.Y)
	}
	if len(g.Exits(l.EnemySpawn.X, l.EnemySpawn.Y)) == 0 {
		return fmt.Errorf("%w: enemy at (%d,%d)", ErrSpawnBlocked, l.EnemySpawn.X, l.EnemySpawn.Y)
	}

	reachable := g.Reachable(l.PlayerSpawn)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if l.Cells[y][x].Collectible() && !reachable[y][x] {
				return fmt.Errorf("%w: (%d,%d)", ErrUnreachable, x, y)
			}
		}
	}
	return nil
}

func openCell(g *Grid, p Point) bool {
	return g.InBounds(p.X, p.Y) && g.cells[p.Y][p.X] != Wall
}

// Reachable floods from start through enterable moves, following wrap edges
func (g *Grid) Reachable(start Point) [][]bool {
	seen := make([][]bool, g.height)
	for i := range seen {
		seen[i] = make([]bool, g.width)
	}
	if !g.InBounds(start.X, start.Y) {
		return seen
	}

	queue := []Point{start}
	seen[start.Y][start.X] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			if !g.CanEnter(d, cur.X, cur.Y) {
				continue
			}
			next := g.Neighbor(cur, d)
			if g.cells[next.Y][next.X] == Wall || seen[next.Y][next.X] {
				continue
			}
			seen[next.Y][next.X] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// Neighbor returns the cell one step in dir, wrapping toroidally at the edges
func (g *Grid) Neighbor(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return Point{
		X: (p.X + dx + g.width) % g.width,
		Y: (p.Y + dy + g.height) % g.height,
	}
}
