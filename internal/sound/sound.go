// Package sound plays short generated tones for game events.
package sound

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate cues are generated and played at.
const SampleRate = beep.SampleRate(44100)

// Cue is a game event that has a sound.
type Cue uint8

const (
	CueEat Cue = iota
	CueCrash
)

// Player plays cues. Play must not block the game loop.
type Player interface {
	Play(Cue)
}

// Mute is a Player that plays nothing.
type Mute struct{}

func (Mute) Play(Cue) {}

// tone is one sine note.
type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CueEat:   {{freq: 880, dur: 60 * time.Millisecond}},
	CueCrash: {{freq: 220, dur: 180 * time.Millisecond}, {freq: 165, dur: 240 * time.Millisecond}},
}

// cueVolume is the beep volume exponent (base 2) applied to every cue.
const cueVolume = -2

// Speaker plays cues through the system audio device.
type Speaker struct {
	rate   beep.SampleRate
	logger *log.Logger
	play   func(...beep.Streamer) // speaker.Play
}

// NewSpeaker opens the audio device. It fails when no device is available;
// callers fall back to Mute. logger may be nil.
func NewSpeaker(logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Speaker{rate: SampleRate, logger: logger, play: speaker.Play}, nil
}

// Play queues c on the speaker mixer and returns immediately. A cue that
// cannot be built is logged and skipped.
func (s *Speaker) Play(c Cue) {
	st, err := Stream(s.rate, c)
	if err != nil {
		s.logger.Printf("play cue: %v", err)
		return
	}
	s.play(st)
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

// Stream builds the finite streamer for c at rate.
func Stream(rate beep.SampleRate, c Cue) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("sound: unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(rate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("sound: %v Hz tone: %w", t.freq, err)
		}
		parts = append(parts, beep.Take(rate.N(t.dur), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   cueVolume,
	}, nil
}

// Duration is the total length of c.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, t := range cueTones[c] {
		d += t.dur
	}
	return d
}
