package audio

import (
	"math"
	"testing"
)

func drain(c Cue) (int, float64) {
	s := Streamer(c)
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCuesHaveExpectedLength(t *testing.T) {
	for c := CuePickup; c <= CueSecret; c++ {
		n, peak := drain(c)
		want := 0
		for _, nt := range cues[c] {
			want += sampleRate.N(nt.dur)
		}
		if n != want {
			t.Errorf("cue %d: %d samples, expected %d", c, n, want)
		}
		if peak <= 0 || peak > volume {
			t.Errorf("cue %d: peak %f outside (0, %f]", c, peak, volume)
		}
		if Length(c) <= 0 {
			t.Errorf("cue %d: zero length", c)
		}
	}
}

func TestSilentPlayers(t *testing.T) {
	var nilPlayer *Player
	nilPlayer.Play(CueWin)
	nilPlayer.SetEnabled(true)
	nilPlayer.Close()
	if nilPlayer.Enabled() {
		t.Error("nil player enabled")
	}

	p := NewPlayer(false)
	p.Play(CuePickup)
	if p.initialized {
		t.Error("disabled player opened the speaker")
	}
	p.SetEnabled(true)
	if !p.Enabled() {
		t.Error("SetEnabled(true) ignored")
	}
}
