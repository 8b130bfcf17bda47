package input

import "github.com/lixenwraith/pac-squad/maze"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentPause      // p
	IntentRestart    // r, only honoured after game over
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Steering
	IntentMotion // arrows, WASD
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentPause:      "pause",
	IntentRestart:    "restart",
	IntentToggleMute: "mute",
	IntentResize:     "resize",
	IntentMotion:     "motion",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is one semantic action produced from a terminal event
type Intent struct {
	Type      IntentType
	Direction maze.Direction // IntentMotion only
}
