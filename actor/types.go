package actor

import (
	"github.com/lixenwraith/pac-squad/maze"
)

// Kind discriminates actor roles for hosts
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

// Tint is the visual modifier a host applies to an actor
type Tint uint8

const (
	TintNone Tint = iota
	TintFrightened
	TintDefeated
)

// Sprite is a host-owned drawable handle
// Actors push state into it but do not own its lifetime
type Sprite interface {
	Place(x, y float64, dir maze.Direction)
	SetTint(t Tint)
}

// Rand is the randomness source used by enemy steering
// *math/rand.Rand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type nopSprite struct{}

func (nopSprite) Place(float64, float64, maze.Direction) {}
func (nopSprite) SetTint(Tint)                         {}
