package session

import (
	"math"

	"github.com/lixenwraith/pac-squad/actor"
	"github.com/lixenwraith/pac-squad/event"
	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/score"
)

// resolveOverlaps applies pickups, then enemy contacts in spawn order
func (s *Session) resolveOverlaps() {
	s.collect()

	px, py := s.player.Body.X, s.player.Body.Y
	for _, e := range s.enemies {
		if math.Hypot(e.Body.X-px, e.Body.Y-py) >= s.cfg.EnemyRadius {
			continue
		}
		if e.Frightened() {
			s.eat(e)
			continue
		}
		s.end()
		return
	}
}

// collect picks up the collectible under the player when within reach of its center
func (s *Session) collect() {
	cell := s.player.Cell()
	if !s.grid.InBounds(cell.X, cell.Y) || !s.grid.At(cell.X, cell.Y).Collectible() {
		return
	}
	cx, cy := s.geo.CenterOf(cell)
	if math.Hypot(s.player.Body.X-cx, s.player.Body.Y-cy) >= s.cfg.CollectRadius {
		return
	}

	kind, ok := s.grid.Collect(cell.X, cell.Y)
	if !ok {
		return
	}

	switch kind {
	case maze.Dot:
		s.score += s.cfg.DotScore
		s.sched.After(s.cfg.DotRespawn, func() { s.restore(cell) })
		s.emit(event.EventDotCollected, event.CollectPayload{Cell: cell, Kind: kind, Score: s.score})

	case maze.Pellet:
		s.score += s.cfg.PelletScore
		s.sched.After(s.cfg.PelletRespawn, func() { s.restore(cell) })
		s.emit(event.EventPelletCollected, event.CollectPayload{Cell: cell, Kind: kind, Score: s.score})
		s.frighten()
	}
}

// restore puts a collected item back unless the session ended
func (s *Session) restore(cell maze.Point) {
	if s.over {
		return
	}
	if s.grid.Restore(cell.X, cell.Y) {
		s.emit(event.EventCollectibleRestored, event.CollectPayload{Cell: cell, Kind: s.grid.At(cell.X, cell.Y)})
	}
}

// frighten switches every live enemy and restarts the single power countdown
func (s *Session) frighten() {
	for _, e := range s.enemies {
		e.SetFrightened(true)
	}

	wasRunning := s.Frightened()
	if s.powerTok != 0 {
		s.sched.Cancel(s.powerTok)
	}
	s.powerTok = s.sched.After(s.cfg.PowerDuration, s.calm)

	if !wasRunning {
		s.emit(event.EventModeChanged, event.ModePayload{Frightened: true})
	}
}

// calm ends the power countdown
func (s *Session) calm() {
	s.powerTok = 0
	for _, e := range s.enemies {
		e.SetFrightened(false)
	}
	s.emit(event.EventModeChanged, event.ModePayload{Frightened: false})
}

// eat scores a frightened enemy and sends it back to the spawn in chase mode
func (s *Session) eat(e *actor.Enemy) {
	s.score += s.cfg.EnemyEatenScore
	e.SetFrightened(false)
	e.Respawn(s.grid.EnemySpawn)
	s.emit(event.EventEnemyEaten, event.EnemyPayload{ID: e.ID, Score: s.score})
}

// end freezes the session, drops pending tasks and records the score
func (s *Session) end() {
	s.over = true
	s.sched.CancelAll()
	s.powerTok = 0
	s.spawnTok = 0

	s.player.Body.Dir = maze.None
	s.player.SetTint(actor.TintDefeated)

	at := s.now()
	entries, err := s.board.Record(s.score, at)
	s.saveErr = err
	s.leaderboard = rank(entries, score.Entry{Score: s.score, Date: at.UnixMilli()})

	s.emit(event.EventGameOver, event.GameOverPayload{
		ID:          s.ID,
		Score:       s.score,
		Leaderboard: s.leaderboard,
		SaveErr:     err,
	})
}

// rank converts stored entries to display rows, marking the first row equal to current
func rank(entries []score.Entry, current score.Entry) []event.RankedScore {
	out := make([]event.RankedScore, len(entries))
	marked := false
	for i, e := range entries {
		out[i] = event.RankedScore{Score: e.Score, Date: e.Time()}
		if !marked && e == current {
			out[i].Current = true
			marked = true
		}
	}
	return out
}
