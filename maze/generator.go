package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// GenConfig controls random layout generation
type GenConfig struct {
	Width, Height int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Constraints (No Plazas/Pillars) take precedence.
	Braiding float64

	// WrapTunnel opens the middle passage row across the full width and wraps it
	WrapTunnel bool

	Seed int64 // Optional (0 = Random)
}

// DefaultGenConfig matches the stock maze dimensions
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:      GridWidthDefault,
		Height:     GridHeightDefault,
		Braiding:   1.0,
		WrapTunnel: true,
	}
}

// Stock dimensions
const (
	GridWidthDefault  = 19
	GridHeightDefault = 21
)

// Generate builds a random validated layout: passages carry dots,
// the four corner passages carry pellets, the enemy spawns nearest the center
// and the player nearest the bottom middle
func Generate(cfg GenConfig) (*Layout, error) {
	// Round down to odd to stay within requested bounds
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)
	if rows < 5 || cols < 5 {
		return nil, fmt.Errorf("generate: %dx%d too small", cols, rows)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	open := make([][]bool, rows)
	for y := range open {
		open[y] = make([]bool, cols)
	}

	recursiveBacktracker(open, Point{1, 1}, rng)
	if cfg.Braiding > 0 {
		applySmartBraiding(open, cfg.Braiding, rng)
	}

	l := &Layout{
		Name:  fmt.Sprintf("generated-%d", seed),
		Cells: make([][]Cell, rows),
	}

	if cfg.WrapTunnel {
		// Even rows only open at odd columns, so a full odd row cannot form a plaza
		mid := (rows / 2) | 1
		for x := range open[mid] {
			open[mid][x] = true
		}
		l.WrapRows = []int{mid}
	}

	l.EnemySpawn = nearestOpen(open, Point{cols / 2, rows / 2}, nil)
	l.PlayerSpawn = nearestOpen(open, Point{cols / 2, rows - 2}, &l.EnemySpawn)

	for y := range open {
		l.Cells[y] = make([]Cell, cols)
		for x, isOpen := range open[y] {
			if isOpen {
				l.Cells[y][x] = Dot
			} else {
				l.Cells[y][x] = Wall
			}
		}
	}

	for _, c := range []Point{{1, 1}, {cols - 2, 1}, {1, rows - 2}, {cols - 2, rows - 2}} {
		if l.Cells[c.Y][c.X] == Dot {
			l.Cells[c.Y][c.X] = Pellet
		}
	}
	l.Cells[l.PlayerSpawn.Y][l.PlayerSpawn.X] = Empty
	l.Cells[l.EnemySpawn.Y][l.EnemySpawn.X] = Empty

	if err := Validate(l); err != nil {
		return nil, fmt.Errorf("generate seed %d: %w", seed, err)
	}
	return l, nil
}

func recursiveBacktracker(open [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(open), len(open[0])

	stack := []Point{start}
	open[start.Y][start.X] = true

	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave 1 cell border for walls
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && !open[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		open[curr.Y+d.Y/2][curr.X+d.X/2] = true
		next := Point{curr.X + d.X, curr.Y + d.Y}
		open[next.Y][next.X] = true
		stack = append(stack, next)
	}
}

// applySmartBraiding opens walls at dead ends with the given probability
func applySmartBraiding(open [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(open), len(open[0])
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if !open[y][x] {
				continue
			}

			exits := 0
			for _, d := range ortho {
				if open[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, d := range ortho {
				nx, ny := x+2*d.X, y+2*d.Y
				wx, wy := x+d.X, y+d.Y
				if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 &&
					open[ny][nx] && !open[wy][wx] && canSafelyRemoveWall(open, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				open[c.Y][c.X] = true
			}
		}
	}
}

// canSafelyRemoveWall rejects openings that create 2x2 plazas or isolated pillars
func canSafelyRemoveWall(open [][]bool, x, y int) bool {
	rows, cols := len(open), len(open[0])
	isP := func(tx, ty int) bool {
		return tx >= 0 && tx < cols && ty >= 0 && ty < rows && open[ty][tx]
	}

	// No plazas
	if isP(x-1, y-1) && isP(x, y-1) && isP(x-1, y) ||
		isP(x, y-1) && isP(x+1, y-1) && isP(x+1, y) ||
		isP(x-1, y) && isP(x-1, y+1) && isP(x, y+1) ||
		isP(x+1, y) && isP(x, y+1) && isP(x+1, y+1) {
		return false
	}

	// No pillars: every neighbouring wall keeps another wall neighbour
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || open[ny][nx] {
			continue
		}
		walls := 0
		for _, d2 := range ortho {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if mx >= 0 && mx < cols && my >= 0 && my < rows && !open[my][mx] {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}
	return true
}

// nearestOpen returns the open cell closest to target by Manhattan distance, scanning row-major on ties
func nearestOpen(open [][]bool, target Point, exclude *Point) Point {
	best, bestDist := Point{-1, -1}, -1
	for y := range open {
		for x, isOpen := range open[y] {
			if !isOpen || x == 0 || x == len(open[y])-1 {
				continue
			}
			if exclude != nil && *exclude == (Point{x, y}) {
				continue
			}
			d := abs(x-target.X) + abs(y-target.Y)
			if bestDist < 0 || d < bestDist {
				best, bestDist = Point{x, y}, d
			}
		}
	}
	return best
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
