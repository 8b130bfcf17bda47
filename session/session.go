package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pac-squad/actor"
	"github.com/lixenwraith/pac-squad/config"
	"github.com/lixenwraith/pac-squad/engine"
	"github.com/lixenwraith/pac-squad/event"
	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/physics"
	"github.com/lixenwraith/pac-squad/score"
)

// HUD status strings
const (
	StatusChasing = "CHASING"
	StatusScared  = "SCARED"
)

// SpriteFactory creates the host drawable for a new actor, nil results are allowed
type SpriteFactory func(kind actor.Kind, id int) actor.Sprite

// Options carries the collaborators of a session
type Options struct {
	Config  *config.Config
	Layout  *maze.Layout
	Board   *score.Board     // nil keeps the leaderboard in memory
	Rand    actor.Rand       // required
	Sprites SpriteFactory    // nil disables host sprites
	Now     func() time.Time // wall clock for score dates, nil uses time.Now
}

// Session is the complete state of one game, owned by the frame update pass
type Session struct {
	ID string

	cfg    *config.Config
	layout *maze.Layout
	grid   *maze.Grid
	geo    physics.Geometry

	player  *actor.Player
	enemies []*actor.Enemy
	enemyCf actor.EnemyConfig

	sched  *engine.Scheduler
	events *event.Queue
	board  *score.Board
	rng    actor.Rand
	sprite SpriteFactory
	now    func() time.Time

	score int
	over  bool

	powerTok engine.Token
	spawnTok engine.Token

	leaderboard []event.RankedScore
	saveErr     error
}

// New builds a fresh session with one enemy at its spawn and the spawn timer running
func New(opts Options) (*Session, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Layout == nil {
		opts.Layout = maze.DefaultLayout()
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("session: random source required")
	}

	grid, err := maze.NewGrid(opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	cfg := opts.Config
	s := &Session{
		ID:     uuid.NewString(),
		cfg:    cfg,
		layout: opts.Layout,
		grid:   grid,
		geo:    cfg.Geometry(grid.Width(), grid.Height()),
		enemyCf: actor.EnemyConfig{
			BaseSpeed:        cfg.EnemySpeed,
			FrightenedFactor: cfg.FrightenedFactor,
			ChaseRandomness:  cfg.ChaseRandomness,
		},
		sched:  engine.NewScheduler(),
		events: event.NewQueue(),
		board:  opts.Board,
		rng:    opts.Rand,
		sprite: opts.Sprites,
		now:    opts.Now,
	}
	if s.board == nil {
		s.board = score.NewBoard(score.NewMemoryKV(), cfg.LeaderboardKey, cfg.LeaderboardSize)
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.player = actor.NewPlayer(grid, s.geo, grid.PlayerSpawn, cfg.PlayerSpeed, s.newSprite(actor.KindPlayer, 0))

	s.emit(event.EventSessionStarted, event.SessionPayload{ID: s.ID})
	s.spawnEnemy()
	if len(s.enemies) < cfg.MaxEnemies {
		s.spawnTok = s.sched.Every(cfg.EnemySpawnInterval, s.spawnEnemy)
	}

	return s, nil
}

// Restart returns a fresh session sharing this one's collaborators
func (s *Session) Restart() (*Session, error) {
	return New(Options{
		Config:  s.cfg,
		Layout:  s.layout,
		Board:   s.board,
		Rand:    s.rng,
		Sprites: s.sprite,
		Now:     s.now,
	})
}

// SetIntent forwards a direction request to the player, ignored after game over
func (s *Session) SetIntent(d maze.Direction) {
	if s.over {
		return
	}
	s.player.SetIntent(d)
}

// Update runs one frame: player motion, enemies in spawn order, overlaps, then due tasks
func (s *Session) Update(dt time.Duration) {
	if s.over || dt <= 0 {
		return
	}

	s.player.Tick(dt)
	for _, e := range s.enemies {
		e.Tick(dt)
	}

	s.resolveOverlaps()
	if s.over {
		return
	}

	s.sched.Advance(dt)
}

// Events returns the queue holding this session's pending domain events
func (s *Session) Events() *event.Queue {
	return s.events
}

// Score returns the running score
func (s *Session) Score() int {
	return s.score
}

// Over reports whether the session has ended
func (s *Session) Over() bool {
	return s.over
}

// Status returns the HUD mode label
func (s *Session) Status() string {
	if s.Frightened() {
		return StatusScared
	}
	return StatusChasing
}

// Frightened reports whether a power countdown is running
func (s *Session) Frightened() bool {
	return s.powerTok != 0 && s.sched.Pending(s.powerTok)
}

// PowerRemaining returns the time left on the power countdown
func (s *Session) PowerRemaining() time.Duration {
	if s.powerTok == 0 {
		return 0
	}
	d, _ := s.sched.Remaining(s.powerTok)
	return d
}

// Elapsed returns session virtual time
func (s *Session) Elapsed() time.Duration {
	return s.sched.Now()
}

// Player returns the player actor
func (s *Session) Player() *actor.Player {
	return s.player
}

// Enemies returns the live enemies in spawn order
func (s *Session) Enemies() []*actor.Enemy {
	return s.enemies
}

// Grid returns the live maze
func (s *Session) Grid() *maze.Grid {
	return s.grid
}

// Geometry returns the pixel mapping of the maze
func (s *Session) Geometry() physics.Geometry {
	return s.geo
}

// Leaderboard returns the ranked scores recorded at game over, nil while running
func (s *Session) Leaderboard() []event.RankedScore {
	return s.leaderboard
}

// SaveErr returns the leaderboard persistence error from game over, if any
func (s *Session) SaveErr() error {
	return s.saveErr
}

// PendingTasks returns the number of scheduled deferred tasks
func (s *Session) PendingTasks() int {
	return s.sched.Len()
}

func (s *Session) newSprite(kind actor.Kind, id int) actor.Sprite {
	if s.sprite == nil {
		return nil
	}
	return s.sprite(kind, id)
}

func (s *Session) emit(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, At: s.sched.Now(), Payload: payload})
}

// spawnEnemy adds one chasing enemy at the enemy spawn and stops the timer at the cap
func (s *Session) spawnEnemy() {
	if s.over || len(s.enemies) >= s.cfg.MaxEnemies {
		return
	}

	id := len(s.enemies)
	e := actor.NewEnemy(id, s.grid, s.geo, s.grid.EnemySpawn, s.player, s.enemyCf, s.rng, s.newSprite(actor.KindEnemy, id))
	s.enemies = append(s.enemies, e)
	s.emit(event.EventEnemySpawned, event.EnemyPayload{ID: id})

	if len(s.enemies) >= s.cfg.MaxEnemies && s.spawnTok != 0 {
		s.sched.Cancel(s.spawnTok)
		s.spawnTok = 0
	}
}
