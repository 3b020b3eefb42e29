package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces short sine-tone feedback sounds. Initialization is
// best-effort: on machines without an audio device every method is a
// no-op and the application runs silent.
type Player struct {
	ready   bool
	enabled bool
}

// New initializes the speaker. A failed init is not an error for the
// caller; it yields a permanently silent player.
func New(enabled bool) *Player {
	p := &Player{enabled: enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		p.ready = true
	}
	return p
}

// Enabled reports whether sounds are currently audible.
func (p *Player) Enabled() bool {
	return p.ready && p.enabled
}

// Toggle flips the sound setting and returns the new state.
func (p *Player) Toggle() bool {
	p.enabled = !p.enabled
	return p.Enabled()
}

// Chime plays a short rising arpeggio, used when the classification
// turns Green.
func (p *Player) Chime() {
	if !p.Enabled() {
		return
	}
	speaker.Play(beep.Seq(
		tone(660, 70*time.Millisecond),
		tone(880, 70*time.Millisecond),
		tone(1320, 120*time.Millisecond),
	))
}

// Blip plays a low tick, used for a rejected keystroke in a numeric
// field.
func (p *Player) Blip() {
	if !p.Enabled() {
		return
	}
	speaker.Play(tone(220, 40*time.Millisecond))
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
