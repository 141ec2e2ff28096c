package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	length   int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		length:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.length - e.position; e.release > 0 && left < e.release {
			vol = max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note is one step of a synthesized phrase. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// phrase renders notes back to back with a short attack and release on each.
func phrase(wave Wave, rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		osc := newOscillator(n.freq, n.dur, wave, rate)
		parts = append(parts, newEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return beep.Seq(parts...)
}

// withVolume scales a stream linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const ms = time.Millisecond

// Fallback effects used when no sound files are loaded.
func synthJump(rate beep.SampleRate) beep.Streamer {
	return withVolume(phrase(WaveSquare, rate,
		note{392, 40 * ms}, note{523.25, 40 * ms}, note{659.25, 60 * ms},
	), 0.25)
}

func synthCoin(rate beep.SampleRate) beep.Streamer {
	return withVolume(phrase(WaveSquare, rate,
		note{987.77, 80 * ms}, note{1318.51, 220 * ms},
	), 0.25)
}

func synthWin(rate beep.SampleRate) beep.Streamer {
	return withVolume(phrase(WaveSquare, rate,
		note{523.25, 120 * ms}, note{659.25, 120 * ms}, note{783.99, 120 * ms}, note{1046.5, 400 * ms},
	), 0.3)
}

func synthLose(rate beep.SampleRate) beep.Streamer {
	return withVolume(phrase(WaveSaw, rate,
		note{392, 200 * ms}, note{369.99, 200 * ms}, note{349.23, 200 * ms}, note{329.63, 600 * ms},
	), 0.3)
}

// synthMusic is a short bass line meant to be looped.
func synthMusic(rate beep.SampleRate) beep.Streamer {
	var notes []note
	for _, root := range []float64{110, 110, 146.83, 130.81} {
		notes = append(notes,
			note{root, 200 * ms}, note{0, 50 * ms},
			note{root * 1.5, 200 * ms}, note{0, 50 * ms},
			note{root * 2, 200 * ms}, note{0, 50 * ms},
			note{root * 1.5, 200 * ms}, note{0, 50 * ms},
		)
	}
	return withVolume(phrase(WaveSine, rate, notes...), 0.2)
}
