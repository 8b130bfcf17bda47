package render

import (
	"github.com/lixenwraith/pac-squad/actor"
	"github.com/lixenwraith/pac-squad/maze"
)

// Sprite is the renderer-owned drawable for one actor
// The simulation pushes position and tint, the renderer reads them when drawing
type Sprite struct {
	Kind actor.Kind
	ID   int
	X, Y float64
	Dir  maze.Direction
	Tint actor.Tint
}

func (s *Sprite) Place(x, y float64, dir maze.Direction) {
	s.X, s.Y, s.Dir = x, y, dir
}

func (s *Sprite) SetTint(t actor.Tint) {
	s.Tint = t
}

// SpriteSet owns every sprite of the current session in creation order
type SpriteSet struct {
	sprites []*Sprite
}

// NewSprite creates and registers a sprite, usable as a session sprite factory
func (ss *SpriteSet) NewSprite(kind actor.Kind, id int) actor.Sprite {
	s := &Sprite{Kind: kind, ID: id}
	ss.sprites = append(ss.sprites, s)
	return s
}

// Reset drops all sprites before a new session is built
func (ss *SpriteSet) Reset() {
	ss.sprites = ss.sprites[:0]
}

// All returns sprites in creation order
func (ss *SpriteSet) All() []*Sprite {
	return ss.sprites
}
