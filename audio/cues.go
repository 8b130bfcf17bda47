package audio

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pac-squad/event"
	"github.com/lixenwraith/pac-squad/parameter"
)

// Cue is a short tone bound to a game event
type Cue struct {
	Freq   float64
	Length time.Duration
}

// DefaultCues maps events to tones
var DefaultCues = map[event.EventType]Cue{
	event.EventDotCollected:    {parameter.ToneDot, parameter.CueDotLength},
	event.EventPelletCollected: {parameter.TonePellet, parameter.CuePelletLength},
	event.EventEnemyEaten:      {parameter.ToneEaten, parameter.CueEatenLength},
	event.EventGameOver:        {parameter.ToneGameOver, parameter.CueGameOverLength},
}

// Cues plays a tone for each mapped event, registered on the event router
type Cues struct {
	out   Output
	cues  map[event.EventType]Cue
	muted atomic.Bool
}

// NewCues creates a cue player over out, nil plays nothing
func NewCues(out Output) *Cues {
	if out == nil {
		out = NopOutput{}
	}
	return &Cues{out: out, cues: DefaultCues}
}

func (c *Cues) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(c.cues))
	for t := range c.cues {
		types = append(types, t)
	}
	return types
}

func (c *Cues) HandleEvent(ev event.GameEvent) {
	if c.muted.Load() {
		return
	}
	if cue, ok := c.cues[ev.Type]; ok {
		c.out.Play(cue.Freq, cue.Length)
	}
}

// ToggleMute flips the mute flag and returns the new state
func (c *Cues) ToggleMute() bool {
	for {
		old := c.muted.Load()
		if c.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (c *Cues) SetMuted(v bool) { c.muted.Store(v) }
func (c *Cues) Muted() bool     { return c.muted.Load() }

// Close releases the output device
func (c *Cues) Close() {
	c.out.Close()
}
