package parameter

import "time"

// Cue tones, frequencies in Hz
const (
	ToneDot      = 523.25 // C5
	TonePellet   = 65.41  // C2
	ToneEaten    = 98.00  // G2
	ToneGameOver = 32.70  // C1
)

// Cue lengths
const (
	CueDotLength      = 60 * time.Millisecond
	CuePelletLength   = 250 * time.Millisecond
	CueEatenLength    = 500 * time.Millisecond
	CueGameOverLength = 1000 * time.Millisecond
)

const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueVolume is the linear gain applied to every cue
	CueVolume = 0.2
)
