// Package audio plays the corner chime through beep. It is kept out of the
// core package so the bounce state machine builds without an audio backend.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/bounce"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 880
	duration   = 60 * time.Millisecond
	volume     = -2 // log2 attenuation
)

// Swapped in tests.
var (
	speakerInit  = speaker.Init
	speakerClose = speaker.Close
	speakerPlay  = speaker.Play
)

// Chime plays a short sine tone. The zero value is silent; use NewChime.
type Chime struct {
	ready bool
}

// NewChime opens the audio device and records it in res. Audio is optional:
// on failure callers log the error and keep the returned silent Chime.
func NewChime(res *bounce.Resources) (*Chime, error) {
	if err := speakerInit(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, bounce.SetupError("init speaker", err)
	}
	res.Acquire("speaker", func() error {
		speakerClose()
		return nil
	})
	return &Chime{ready: true}, nil
}

// Ready reports whether the audio device is open.
func (c *Chime) Ready() bool {
	return c != nil && c.ready
}

// Play queues one tone. It does nothing when audio is unavailable.
func (c *Chime) Play() {
	if !c.Ready() {
		return
	}
	sine, err := generators.SineTone(sampleRate, frequency)
	if err != nil {
		return
	}
	tone := beep.Take(sampleRate.N(duration), sine)
	speakerPlay(&effects.Volume{Streamer: tone, Base: 2, Volume: volume})
}
