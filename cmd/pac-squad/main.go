package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/audio"
	"github.com/lixenwraith/pac-squad/config"
	"github.com/lixenwraith/pac-squad/core"
	"github.com/lixenwraith/pac-squad/engine"
	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/score"
	"github.com/lixenwraith/pac-squad/session"
)

var (
	configFlag = flag.String("config", "", "YAML file overriding gameplay defaults")
	layoutFlag = flag.String("layout", "", "Maze layout file, overrides the config layout")
	scoresFlag = flag.String("scores", defaultScoresPath(), "Leaderboard file")
	seedFlag   = flag.Int64("seed", 0, "Enemy randomness seed, 0 seeds from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	logFlag    = flag.String("log", "", "Write the debug log to this file")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run owns every deferred cleanup so main can exit with its code
func run() int {
	defer core.Recover()

	if logFile := setupLogging(*logFlag); logFile != nil {
		defer closeLogging(logFile)
	}

	cfg, layout, err := loadSettings()
	if err != nil {
		log.Printf("settings: %v", err)
		fmt.Fprintf(os.Stderr, "pac-squad: %v\n", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d, scores %s", seed, *scoresFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	var finiOnce sync.Once
	fini := func() {
		finiOnce.Do(func() {
			core.SetCrashScreen(nil)
			screen.Fini()
		})
	}
	defer fini()

	// Non-fatal, game can run without sound
	var out audio.Output
	if sp, err := audio.NewSpeakerOutput(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	} else {
		out = sp
	}
	cues := audio.NewCues(out)
	cues.SetMuted(*muteFlag)
	defer cues.Close()

	events := make(chan tcell.Event, 100)
	// Input polling goroutine, exits when the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	clock := engine.NewPausableClock(nil)
	g, err := newGame(screen, events, clock, cues, session.Options{
		Config: cfg,
		Layout: layout,
		Board:  score.NewBoard(score.NewFileKV(*scoresFlag), cfg.LeaderboardKey, cfg.LeaderboardSize),
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		// Restore the terminal first so the message stays visible
		fini()
		fmt.Fprintf(os.Stderr, "pac-squad: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(clock, cfg.TickInterval, cfg.MaxFrameStep)
	if err := loop.Run(ctx, g.frame); err != nil && ctx.Err() == nil {
		log.Printf("loop: %v", err)
	}
	log.Printf("exit after %d ticks", loop.Ticks())
	return 0
}

// loadSettings resolves config and layout from flags
func loadSettings() (*config.Config, *maze.Layout, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if *layoutFlag != "" {
		cfg.Layout = *layoutFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	layout := maze.DefaultLayout()
	if cfg.Layout != "" {
		l, err := maze.LoadLayoutFile(cfg.Layout)
		if err != nil {
			return nil, nil, err
		}
		if err := maze.Validate(l); err != nil {
			return nil, nil, fmt.Errorf("layout %s: %w", cfg.Layout, err)
		}
		layout = l
	}
	return cfg, layout, nil
}
