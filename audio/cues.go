package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/maze3d/parameter"
)

// Cue identifies a gameplay sound
type Cue int

const (
	CueCoin Cue = iota
	CueKey
	CueHealth
	CueExit
	CueBump
	CueRegen
	cueCount
)

var cueNames = [cueCount]string{"coin", "key", "health", "exit", "bump", "regen"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// cueGain balances cues against each other before master volume
var cueGain = [cueCount]float64{
	CueCoin:   0.5,
	CueKey:    1.0,
	CueHealth: 0.7,
	CueExit:   0.9,
	CueBump:   0.6,
	CueRegen:  0.6,
}

// Build returns a fresh finite streamer for cue at the given rate and master volume,
// nil for an unknown cue
func Build(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueCoin:
		s = coinSound(rate)
	case CueKey:
		s = keySound(rate)
	case CueHealth:
		s = healthSound(rate)
	case CueExit:
		s = exitSound(rate)
	case CueBump:
		s = bumpSound(rate)
	case CueRegen:
		s = regenSound(rate)
	default:
		return nil
	}
	return newVolume(s, cueGain[cue]*volume)
}

// coinSound is a B5 → E6 square chime
func coinSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(987.77, WaveSquare, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate)
	n2 := tone(1318.51, WaveSquare, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate)
	return beep.Seq(n1, n2)
}

// keySound is an A5 bell with a short-lived octave overtone
func keySound(rate beep.SampleRate) beep.Streamer {
	fund := tone(880.0, WaveSine, parameter.KeySoundDuration, parameter.KeySoundAttack, parameter.KeySoundFundamentalRelease, rate)
	over := tone(1760.0, WaveSine, parameter.KeySoundDuration, parameter.KeySoundAttack, parameter.KeySoundOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// healthSound climbs C5 E5 G5
func healthSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, WaveSine, parameter.HealthSoundNoteDuration, parameter.HealthSoundAttack, parameter.HealthSoundRelease, rate)
	}
	return beep.Seq(seq...)
}

// exitSound holds a C major chord
func exitSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	voices := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		voices[i] = newVolume(tone(f, WaveSine, parameter.ExitSoundDuration, parameter.ExitSoundAttack, parameter.ExitSoundRelease, rate), 0.33)
	}
	return beep.Mix(voices...)
}

// bumpSound is a short low saw buzz
func bumpSound(rate beep.SampleRate) beep.Streamer {
	buzz := tone(100.0, WaveSaw, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate)
	return beep.Take(rate.N(parameter.BumpSoundDuration), buzz)
}

// regenSound is a swelling noise whoosh
func regenSound(rate beep.SampleRate) beep.Streamer {
	return tone(0, WaveNoise, parameter.RegenSoundDuration, parameter.RegenSoundAttack, parameter.RegenSoundRelease, rate)
}
