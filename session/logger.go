package session

import (
	"log"

	"github.com/lixenwraith/pac-squad/event"
)

// Logger writes session lifecycle events to a standard logger
type Logger struct {
	l *log.Logger
}

// NewLogger wraps l, nil uses the standard logger
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{l: l}
}

func (g *Logger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSessionStarted,
		event.EventEnemySpawned,
		event.EventEnemyEaten,
		event.EventModeChanged,
		event.EventGameOver,
	}
}

func (g *Logger) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case event.SessionPayload:
		g.l.Printf("session %s started", p.ID)
	case event.EnemyPayload:
		if ev.Type == event.EventEnemyEaten {
			g.l.Printf("[%v] enemy %d eaten, score %d", ev.At, p.ID, p.Score)
		} else {
			g.l.Printf("[%v] enemy %d spawned", ev.At, p.ID)
		}
	case event.ModePayload:
		g.l.Printf("[%v] enemies frightened=%t", ev.At, p.Frightened)
	case event.GameOverPayload:
		g.l.Printf("[%v] session %s over, score %d", ev.At, p.ID, p.Score)
		if p.SaveErr != nil {
			g.l.Printf("leaderboard: %v", p.SaveErr)
		}
		for i, r := range p.Leaderboard {
			mark := ""
			if r.Current {
				mark = " *"
			}
			g.l.Printf("  %d. %d %s%s", i+1, r.Score, r.Date.Format("2006-01-02 15:04"), mark)
		}
	}
}
