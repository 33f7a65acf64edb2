package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps noise cues reproducible
const noiseSeed = 1

// shapes map a phase in [0,1) to a sample in [-1,1]
var shapes = map[WaveType]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw: func(p float64) float64 { return 2*p - 1 },
}

// periodic plays a shape for a fixed number of samples
type periodic struct {
	shape func(float64) float64
	phase float64
	step  float64
	left  int
}

func (p *periodic) Stream(buf [][2]float64) (int, bool) {
	if p.left <= 0 {
		return 0, false
	}
	n := min(len(buf), p.left)
	for i := range buf[:n] {
		v := p.shape(p.phase)
		buf[i] = [2]float64{v, v}
		_, p.phase = math.Modf(p.phase + p.step)
	}
	p.left -= n
	return n, true
}

func (p *periodic) Err() error { return nil }

// noise is seeded white noise
type noise struct {
	rng  *rand.Rand
	left int
}

func (s *noise) Stream(buf [][2]float64) (int, bool) {
	if s.left <= 0 {
		return 0, false
	}
	n := min(len(buf), s.left)
	for i := range buf[:n] {
		v := s.rng.Float64()*2 - 1
		buf[i] = [2]float64{v, v}
	}
	s.left -= n
	return n, true
}

func (s *noise) Err() error { return nil }

// NewOscillator returns a wave of exactly rate.N(duration) samples. Sine comes
// from beep's generator; frequencies it rejects fall back to the local shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)

	switch wave {
	case WaveNoise:
		return &noise{rng: rand.New(rand.NewSource(noiseSeed)), left: n}
	case WaveSine:
		if s, err := generators.SineTone(rate, freq); err == nil {
			return beep.Take(n, s)
		}
	}

	shape, ok := shapes[wave]
	if !ok {
		shape = shapes[WaveSine]
	}
	return &periodic{shape: shape, step: freq / float64(rate), left: n}
}

// envelope is a linear attack/release gain over a source of known length
type envelope struct {
	src     beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope ramps s in over attack and out over the last release of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(duration),
	}
}

func (e *envelope) gain(pos int) float64 {
	switch {
	case e.attack > 0 && pos < e.attack:
		return float64(pos) / float64(e.attack)
	case e.release > 0 && pos >= e.total-e.release:
		return max(float64(e.total-pos)/float64(e.release), 0)
	}
	return 1
}

func (e *envelope) Stream(buf [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok := e.src.Stream(buf[:min(len(buf), e.total-e.pos)])
	for i := range buf[:n] {
		g := e.gain(e.pos)
		buf[i][0] *= g
		buf[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales linearly by vol on beep's log2 volume control
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator, the building block of every cue
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}
