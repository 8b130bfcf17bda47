package actor

import (
	"math"
	"sort"
	"time"

	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/physics"
)

// Mode is the enemy steering mode
type Mode uint8

const (
	ModeChase Mode = iota
	ModeFrightened
)

func (m Mode) String() string {
	if m == ModeFrightened {
		return "frightened"
	}
	return "chase"
}

// EnemyConfig carries the tunables shared by all enemies
type EnemyConfig struct {
	BaseSpeed        float64
	FrightenedFactor float64
	ChaseRandomness  float64
}

// Target is the read-only view of the player an enemy chases
type Target interface {
	Cell() maze.Point
}

// Enemy steers toward the player in chase mode and randomly while frightened
type Enemy struct {
	Body physics.Body
	ID   int

	mode    Mode
	// Last decision cell; a junction is decided once per visit while the body stays centered on it
	decided maze.Point
	hasDec  bool

	cfg    EnemyConfig
	grid   *maze.Grid
	geo    physics.Geometry
	target Target
	rng    Rand
	sprite Sprite
}

// NewEnemy places an enemy on the center of cell at and picks its first heading
func NewEnemy(id int, grid *maze.Grid, geo physics.Geometry, at maze.Point, target Target, cfg EnemyConfig, rng Rand, sprite Sprite) *Enemy {
	if sprite == nil {
		sprite = nopSprite{}
	}
	e := &Enemy{
		ID:     id,
		cfg:    cfg,
		grid:   grid,
		geo:    geo,
		target: target,
		rng:    rng,
		sprite: sprite,
	}
	e.Body.Speed = cfg.BaseSpeed
	e.Respawn(at)
	return e
}

// Mode returns the current steering mode
func (e *Enemy) Mode() Mode {
	return e.mode
}

// Frightened reports whether the enemy is in frightened mode
func (e *Enemy) Frightened() bool {
	return e.mode == ModeFrightened
}

// SetFrightened switches mode and resets speed and tint accordingly
func (e *Enemy) SetFrightened(v bool) {
	if v {
		e.mode = ModeFrightened
		e.Body.Speed = e.cfg.BaseSpeed * e.cfg.FrightenedFactor
		e.sprite.SetTint(TintFrightened)
		return
	}
	e.mode = ModeChase
	e.Body.Speed = e.cfg.BaseSpeed
	e.sprite.SetTint(TintNone)
}

// Respawn moves the enemy to the center of cell at and chooses a fresh heading
func (e *Enemy) Respawn(at maze.Point) {
	e.Body.Dir = maze.None
	e.Body.SnapTo(e.geo, at)
	e.choose(at)
	e.decided = at
	e.hasDec = true
	e.sprite.Place(e.Body.X, e.Body.Y, e.Body.Dir)
}

// Cell returns the occupied grid cell
func (e *Enemy) Cell() maze.Point {
	return e.Body.Cell(e.geo)
}

// Tick advances the enemy by dt
func (e *Enemy) Tick(dt time.Duration) {
	physics.Resolve(&e.Body, e, e.geo, dt)
	e.sprite.Place(e.Body.X, e.Body.Y, e.Body.Dir)
}

// Steer runs the decision point check at a cell center
func (e *Enemy) Steer(b *physics.Body, cell maze.Point) {
	if e.hasDec && e.decided != cell {
		e.hasDec = false
	}

	blocked := b.Dir == maze.None || !e.grid.CanEnter(b.Dir, cell.X, cell.Y)
	junction := !e.hasDec && e.grid.IsIntersection(cell.X, cell.Y)
	if !blocked && !junction {
		return
	}

	e.choose(cell)
	b.SnapTo(e.geo, cell)
	e.decided = cell
	e.hasDec = true
}

// Candidates returns enterable headings from cell in canonical order,
// without the reverse of the current heading unless it is the only way out
func (e *Enemy) Candidates(cell maze.Point) []maze.Direction {
	valid := e.grid.Exits(cell.X, cell.Y)
	if len(valid) <= 1 {
		return valid
	}
	reverse := e.Body.Dir.Opposite()
	filtered := valid[:0]
	for _, d := range valid {
		if d != reverse {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// choose sets the heading for the decision at cell
func (e *Enemy) choose(cell maze.Point) {
	candidates := e.Candidates(cell)
	if len(candidates) == 0 {
		// Malformed maze, layout validation keeps spawns from reaching this
		e.Body.Dir = maze.None
		return
	}

	if e.mode == ModeFrightened {
		e.Body.Dir = candidates[e.rng.Intn(len(candidates))]
		return
	}

	goal := e.target.Cell()
	sort.SliceStable(candidates, func(i, j int) bool {
		return distanceAfter(candidates[i], cell, goal) < distanceAfter(candidates[j], cell, goal)
	})

	if e.rng.Float64() < e.cfg.ChaseRandomness {
		e.Body.Dir = candidates[e.rng.Intn(len(candidates))]
		return
	}
	e.Body.Dir = candidates[0]
}

// distanceAfter is the Euclidean grid distance from the neighbor in dir to goal
func distanceAfter(dir maze.Direction, from, goal maze.Point) float64 {
	dx, dy := dir.Delta()
	return math.Hypot(float64(from.X+dx-goal.X), float64(from.Y+dy-goal.Y))
}
