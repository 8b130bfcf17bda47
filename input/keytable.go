package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/maze"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  maze.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyLeft:   {IntentMotion, maze.Left},
			tcell.KeyRight:  {IntentMotion, maze.Right},
			tcell.KeyUp:     {IntentMotion, maze.Up},
			tcell.KeyDown:   {IntentMotion, maze.Down},
		},
		Runes: map[rune]KeyEntry{
			'a': {IntentMotion, maze.Left},
			'd': {IntentMotion, maze.Right},
			'w': {IntentMotion, maze.Up},
			's': {IntentMotion, maze.Down},
			'q': {IntentType: IntentQuit},
			'p': {IntentType: IntentPause},
			'r': {IntentType: IntentRestart},
			'm': {IntentType: IntentToggleMute},
		},
	}
}

// Lookup returns the binding for a key, r is only consulted for tcell.KeyRune
func (t *KeyTable) Lookup(k tcell.Key, r rune) (KeyEntry, bool) {
	if k == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := t.Runes[r]
		return e, ok
	}
	e, ok := t.SpecialKeys[k]
	return e, ok
}
