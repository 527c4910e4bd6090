// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a game event with a sound.
type Cue int

const (
	CuePickup Cue = iota
	CueAbility
	CueShield
	CueLoss
	CueWin
	CueSecret
)

// note is one step of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave waveType
}

var cues = map[Cue][]note{
	CuePickup:  {{880, 60 * time.Millisecond, waveSine}, {1320, 60 * time.Millisecond, waveSine}},
	CueAbility: {{220, 250 * time.Millisecond, waveNoise}},
	CueShield:  {{440, 80 * time.Millisecond, waveSquare}, {330, 80 * time.Millisecond, waveSquare}},
	CueLoss:    {{392, 150 * time.Millisecond, waveSquare}, {294, 150 * time.Millisecond, waveSquare}, {196, 300 * time.Millisecond, waveSquare}},
	CueWin:     {{523, 120 * time.Millisecond, waveSine}, {659, 120 * time.Millisecond, waveSine}, {784, 240 * time.Millisecond, waveSine}},
	CueSecret:  {{659, 100 * time.Millisecond, waveSine}, {831, 100 * time.Millisecond, waveSine}, {988, 100 * time.Millisecond, waveSine}, {1319, 300 * time.Millisecond, waveSine}},
}

// Streamer synthesizes cue c.
func Streamer(c Cue) beep.Streamer {
	notes := cues[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.freq, n.dur, n.wave, sampleRate))
	}
	return beep.Seq(parts...)
}

// Length is the duration of cue c.
func Length(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.dur
	}
	return d
}

// Player plays cues when sound is enabled. The zero value is a silent
// player. A player whose speaker fails to start stays silent.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	failed      bool
	mixer       *beep.Mixer
}

// NewPlayer creates a player. The speaker is opened lazily on the first
// audible cue.
func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled, mixer: &beep.Mixer{}}
}

// SetEnabled toggles sound.
func (p *Player) SetEnabled(on bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && !p.failed
}

// Play queues cue c. It never blocks on audio output.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.failed {
		return
	}
	if !p.initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
			p.failed = true
			return
		}
		speaker.Play(p.mixer)
		p.initialized = true
	}
	speaker.Lock()
	p.mixer.Add(Streamer(c))
	speaker.Unlock()
}

// Close silences everything queued.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
