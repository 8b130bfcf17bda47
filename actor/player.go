package actor

import (
	"time"

	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/physics"
)

// Player applies a single pending directional intent to the shared motion model
type Player struct {
	Body   physics.Body
	intent maze.Direction

	grid   *maze.Grid
	geo    physics.Geometry
	sprite Sprite
}

// NewPlayer places a stopped player on the center of cell at
func NewPlayer(grid *maze.Grid, geo physics.Geometry, at maze.Point, speed float64, sprite Sprite) *Player {
	if sprite == nil {
		sprite = nopSprite{}
	}
	p := &Player{
		grid:   grid,
		geo:    geo,
		sprite: sprite,
	}
	p.Body.Speed = speed
	p.Body.SnapTo(geo, at)
	p.sprite.Place(p.Body.X, p.Body.Y, p.Body.Dir)
	return p
}

// SetIntent records the requested heading, last call wins
func (p *Player) SetIntent(d maze.Direction) {
	if d == maze.None {
		return
	}
	p.intent = d
}

// Intent returns the pending heading
func (p *Player) Intent() maze.Direction {
	return p.intent
}

// Cell returns the occupied grid cell
func (p *Player) Cell() maze.Point {
	return p.Body.Cell(p.geo)
}

// Tick advances the player by dt
func (p *Player) Tick(dt time.Duration) {
	physics.Resolve(&p.Body, p, p.geo, dt)
	p.sprite.Place(p.Body.X, p.Body.Y, p.Body.Dir)
}

// Steer commits the intent at a cell center and stops against walls
func (p *Player) Steer(b *physics.Body, cell maze.Point) {
	if p.intent != maze.None && p.intent != b.Dir && p.grid.CanEnter(p.intent, cell.X, cell.Y) {
		b.Dir = p.intent
		b.SnapTo(p.geo, cell)
	}

	if b.Dir != maze.None && !p.grid.CanEnter(b.Dir, cell.X, cell.Y) {
		b.Dir = maze.None
		b.SnapTo(p.geo, cell)
	}
}

// SetTint forwards a visual state to the sprite
func (p *Player) SetTint(t Tint) {
	p.sprite.SetTint(t)
}
