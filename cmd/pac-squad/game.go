package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/audio"
	"github.com/lixenwraith/pac-squad/engine"
	"github.com/lixenwraith/pac-squad/event"
	"github.com/lixenwraith/pac-squad/input"
	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/render"
	"github.com/lixenwraith/pac-squad/session"
)

// game binds one terminal to a sequence of sessions
type game struct {
	screen   tcell.Screen
	events   <-chan tcell.Event
	clock    *engine.PausableClock
	machine  *input.Machine
	router   *event.Router
	sprites  *render.SpriteSet
	renderer *render.Renderer
	cues     *audio.Cues

	sess *session.Session
}

// newGame wires the host consumers; opts.Sprites is replaced by the renderer's sprite set
func newGame(screen tcell.Screen, events <-chan tcell.Event, clock *engine.PausableClock, cues *audio.Cues, opts session.Options) (*game, error) {
	g := &game{
		screen:  screen,
		events:  events,
		clock:   clock,
		machine: input.NewMachine(nil),
		router:  event.NewRouter(),
		sprites: &render.SpriteSet{},
		cues:    cues,
	}
	g.renderer = render.NewRenderer(screen, g.sprites)

	g.router.Register(session.NewLogger(nil))
	g.router.Register(cues)

	opts.Sprites = g.sprites.NewSprite
	sess, err := session.New(opts)
	if err != nil {
		return nil, err
	}
	g.sess = sess
	return g, nil
}

// frame drains pending input, advances the session and draws, false stops the loop
func (g *game) frame(dt time.Duration) bool {
drain:
	for {
		select {
		case ev := <-g.events:
			if in := g.machine.Process(ev); in != nil && !g.handle(in) {
				return false
			}
		default:
			break drain
		}
	}

	if d := g.machine.Sample(); d != maze.None {
		g.sess.SetIntent(d)
	}

	g.sess.Update(dt)
	g.router.Dispatch(g.sess.Events())
	g.renderer.Draw(g.sess, render.HUD{Paused: g.clock.IsPaused(), Muted: g.cues.Muted()})
	return true
}

// handle applies one non-steering intent, false requests exit
func (g *game) handle(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentPause:
		if !g.sess.Over() {
			g.clock.Toggle()
		}

	case input.IntentRestart:
		if g.sess.Over() {
			g.restart()
		}

	case input.IntentToggleMute:
		g.cues.ToggleMute()

	case input.IntentResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) restart() {
	// Flush the finished session before its sprites go away
	g.router.Dispatch(g.sess.Events())

	g.sprites.Reset()
	next, err := g.sess.Restart()
	if err != nil {
		log.Printf("restart failed: %v", err)
		return
	}
	g.sess = next
	g.machine.Reset()
	if g.clock.IsPaused() {
		g.clock.Resume()
	}
}
