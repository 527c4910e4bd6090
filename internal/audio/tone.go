package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

const volume = 0.2

// tone is a fixed-length oscillator with a short attack and exponential
// release so consecutive notes do not click.
type tone struct {
	freq  float64
	wave  waveType
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

func newTone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) *tone {
	return &tone{
		freq:  freq,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(freq))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	attack := t.rate.N(5 * time.Millisecond)
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case waveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case waveNoise:
			v = t.rng.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		env := math.Exp(-3 * float64(t.pos) / float64(t.total))
		if t.pos < attack {
			env *= float64(t.pos) / float64(attack)
		}
		v *= env * volume

		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
