package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/pac-squad/maze"
)

// Steering is a heading policy consulted whenever the body sits on a cell center
// Implementations may change b.Dir and snap b to the cell center
type Steering interface {
	Steer(b *Body, cell maze.Point)
}

// Resolve advances the body by dt under the given steering policy
// Motion is split into sub-steps no longer than the centering threshold so a cell center
// is never skipped; a blocked heading keeps moving until the next center is reached
func Resolve(b *Body, s Steering, g Geometry, dt time.Duration) {
	seconds := dt.Seconds()
	if seconds <= 0 {
		return
	}

	steps := 1
	if g.Threshold > 0 {
		if n := int(math.Ceil(b.Speed * seconds / g.Threshold)); n > steps {
			steps = n
		}
	}
	sub := seconds / float64(steps)

	for i := 0; i < steps; i++ {
		if cell, ok := g.Centered(b.X, b.Y); ok {
			s.Steer(b, cell)
		}
		b.Integrate(sub)
		b.X, b.Y, _ = g.Wrap(b.X, b.Y)
	}
}
