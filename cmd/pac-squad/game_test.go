package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/audio"
	"github.com/lixenwraith/pac-squad/config"
	"github.com/lixenwraith/pac-squad/engine"
	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/session"
)

type steadyRand struct{}

func (steadyRand) Float64() float64 { return 0.99 }
func (steadyRand) Intn(int) int     { return 0 }

func newTestGame(t *testing.T, src string) (*game, chan tcell.Event) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	layout, err := maze.ParseLayout(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	events := make(chan tcell.Event, 16)
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	g, err := newGame(screen, events, engine.NewPausableClock(mock), audio.NewCues(nil), session.Options{
		Config: config.Default(),
		Layout: layout,
		Rand:   steadyRand{},
	})
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g, events
}

const corridor = `#######
#P.__E#
#######`

// press feeds one rune binding the way frame does for polled key events
func press(g *game, r rune) bool {
	in := g.machine.Key(tcell.KeyRune, r)
	if in == nil {
		return true
	}
	return g.handle(in)
}

func TestFrameSteersAndQuits(t *testing.T) {
	g, events := newTestGame(t, corridor)

	press(g, 'd')
	events <- tcell.NewEventResize(80, 30)
	if !g.frame(16 * time.Millisecond) {
		t.Fatal("frame stopped without quit")
	}
	if g.sess.Player().Intent() != maze.Right {
		t.Errorf("intent = %v, want right", g.sess.Player().Intent())
	}
	if len(events) != 0 {
		t.Error("frame left events queued")
	}

	if press(g, 'q') {
		t.Error("quit did not request exit")
	}
}

func TestPauseAndMuteToggle(t *testing.T) {
	g, _ := newTestGame(t, corridor)

	press(g, 'p')
	press(g, 'm')
	g.frame(0)

	if !g.clock.IsPaused() {
		t.Error("pause not applied")
	}
	if !g.cues.Muted() {
		t.Error("mute not applied")
	}

	press(g, 'p')
	g.frame(0)
	if g.clock.IsPaused() {
		t.Error("second pause did not resume")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, corridor)
	first := g.sess

	press(g, 'r')
	g.frame(16 * time.Millisecond)
	if g.sess != first {
		t.Fatal("restart accepted mid-game")
	}

	press(g, 'd')
	for i := 0; i < 300 && !g.sess.Over(); i++ {
		g.frame(16 * time.Millisecond)
	}
	if !g.sess.Over() {
		t.Fatal("session did not end")
	}

	press(g, 'r')
	g.frame(16 * time.Millisecond)
	if g.sess == first || g.sess.Over() {
		t.Fatal("restart did not build a fresh session")
	}
	// player plus one enemy for the fresh session only
	if n := len(g.sprites.All()); n != 2 {
		t.Errorf("sprites after restart = %d, want 2", n)
	}
}
