package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pac-squad/parameter"
)

// Output plays a single tone without blocking
type Output interface {
	Play(freq float64, length time.Duration)
	Close()
}

// SpeakerOutput plays tones through the system speaker
type SpeakerOutput struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeakerOutput initializes the speaker, callers fall back to NopOutput on error
func NewSpeakerOutput() (*SpeakerOutput, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, err
	}
	return &SpeakerOutput{initialized: true}, nil
}

func (o *SpeakerOutput) Play(freq float64, length time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	s, err := Tone(freq, length)
	if err != nil {
		log.Printf("audio: tone %.2fHz: %v", freq, err)
		return
	}
	speaker.Play(s)
}

func (o *SpeakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	o.initialized = false
}

// NopOutput discards every tone
type NopOutput struct{}

func (NopOutput) Play(float64, time.Duration) {}
func (NopOutput) Close()                      {}
