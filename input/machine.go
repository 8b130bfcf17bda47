package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/maze"
)

// Machine converts terminal events into intents and samples steering once per tick
// Fed from the event goroutine's channel on the frame goroutine, not safe for concurrent use
type Machine struct {
	table *KeyTable

	// Last direction pressed since the previous Sample
	pending maze.Direction
}

// NewMachine creates a machine with the given bindings, nil uses the defaults
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process maps one terminal event, nil for unbound input
// Motion intents are also recorded for Sample
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.Key(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

// Key maps a single key press
func (m *Machine) Key(k tcell.Key, r rune) *Intent {
	entry, ok := m.table.Lookup(k, r)
	if !ok {
		return nil
	}
	if entry.IntentType == IntentMotion {
		m.pending = entry.Direction
	}
	return &Intent{Type: entry.IntentType, Direction: entry.Direction}
}

// Sample returns the last direction pressed since the previous call and clears it
func (m *Machine) Sample() maze.Direction {
	d := m.pending
	m.pending = maze.None
	return d
}

// Reset drops any pending steering
func (m *Machine) Reset() {
	m.pending = maze.None
}
