package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pac-squad/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Tone returns a finite sine streamer at freq Hz scaled to the cue volume
func Tone(freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Gain:     parameter.CueVolume - 1,
	}, nil
}
