package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// FrameFunc runs one simulation frame with the game time elapsed since the previous frame
// dt is zero while paused; returning false stops the loop
type FrameFunc func(dt time.Duration) bool

// Loop drives frames on a fixed real-time tick with drift correction
type Loop struct {
	clock    *PausableClock
	interval time.Duration
	maxStep  time.Duration

	ticks atomic.Uint64
}

// NewLoop creates a loop ticking every interval; dt handed to frames is capped at maxStep
func NewLoop(clock *PausableClock, interval, maxStep time.Duration) *Loop {
	if maxStep < interval {
		maxStep = interval
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		maxStep:  maxStep,
	}
}

// Ticks returns frames run so far
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Run blocks running frames until ctx is done or a frame returns false
func (l *Loop) Run(ctx context.Context, frame FrameFunc) error {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	lastGame := l.clock.Elapsed()
	nextDeadline := time.Now().Add(l.interval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		gameNow := l.clock.Elapsed()
		dt := gameNow - lastGame
		lastGame = gameNow
		if dt > l.maxStep {
			dt = l.maxStep
		}
		if dt < 0 {
			dt = 0
		}

		l.ticks.Add(1)
		if !frame(dt) {
			return nil
		}

		// Skip missed deadlines instead of bursting to catch up
		now := time.Now()
		nextDeadline = nextDeadline.Add(l.interval)
		if now.Sub(nextDeadline) > l.interval*2 {
			nextDeadline = now.Add(l.interval)
		}
		sleep := nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
