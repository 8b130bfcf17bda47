package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/maze"
)

// press is a key or rune binding under test
type press struct {
	k tcell.Key
	r rune
}

func key(k tcell.Key) press { return press{k: k} }
func char(r rune) press     { return press{k: tcell.KeyRune, r: r} }

func (p press) on(m *Machine) *Intent { return m.Key(p.k, p.r) }

func TestProcessBindings(t *testing.T) {
	tests := []struct {
		name string
		in   press
		want IntentType
		dir  maze.Direction
	}{
		{"arrow left", key(tcell.KeyLeft), IntentMotion, maze.Left},
		{"arrow down", key(tcell.KeyDown), IntentMotion, maze.Down},
		{"w", char('w'), IntentMotion, maze.Up},
		{"upper D", char('D'), IntentMotion, maze.Right},
		{"escape", key(tcell.KeyEscape), IntentQuit, maze.None},
		{"ctrl c", key(tcell.KeyCtrlC), IntentQuit, maze.None},
		{"q", char('q'), IntentQuit, maze.None},
		{"p", char('p'), IntentPause, maze.None},
		{"r", char('r'), IntentRestart, maze.None},
		{"m", char('m'), IntentToggleMute, maze.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(nil)
			got := tt.in.on(m)
			if got == nil {
				t.Fatal("Key returned nil")
			}
			if got.Type != tt.want || got.Direction != tt.dir {
				t.Errorf("got %v/%v, want %v/%v", got.Type, got.Direction, tt.want, tt.dir)
			}
		})
	}
}

func TestProcessResize(t *testing.T) {
	m := NewMachine(nil)
	got := m.Process(tcell.NewEventResize(80, 24))
	if got == nil || got.Type != IntentResize {
		t.Errorf("resize = %+v", got)
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	m := NewMachine(nil)
	if got := char('z').on(m); got != nil {
		t.Errorf("unbound rune produced %+v", got)
	}
	if got := key(tcell.KeyF5).on(m); got != nil {
		t.Errorf("unbound key produced %+v", got)
	}
	if d := m.Sample(); d != maze.None {
		t.Errorf("Sample = %v after unbound input", d)
	}
}

func TestSampleLastPressedWins(t *testing.T) {
	m := NewMachine(nil)
	key(tcell.KeyUp).on(m)
	char('a').on(m)
	char('p').on(m)
	key(tcell.KeyDown).on(m)

	if d := m.Sample(); d != maze.Down {
		t.Errorf("Sample = %v, want down", d)
	}
	if d := m.Sample(); d != maze.None {
		t.Errorf("second Sample = %v, want none", d)
	}

	key(tcell.KeyLeft).on(m)
	m.Reset()
	if d := m.Sample(); d != maze.None {
		t.Errorf("Sample after Reset = %v", d)
	}
}

func TestCustomTable(t *testing.T) {
	table := DefaultKeyTable()
	table.Runes['h'] = KeyEntry{IntentMotion, maze.Left}
	m := NewMachine(table)

	got := char('h').on(m)
	if got == nil || got.Direction != maze.Left {
		t.Fatalf("custom binding = %+v", got)
	}
}

func TestIntentTypeString(t *testing.T) {
	if IntentQuit.String() != "quit" || IntentType(200).String() != "unknown" {
		t.Error("unexpected intent names")
	}
}
