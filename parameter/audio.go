package parameter

import (
	"time"
)

// AudioSampleRate is the speaker and synthesis rate in Hz
const AudioSampleRate = 48000

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond

// Bump: short low buzz when a move is blocked
const (
	BumpSoundDuration = 80 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 20 * time.Millisecond
)

// Coin: two-note chime
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Key: bell with octave overtone
const (
	KeySoundDuration           = 600 * time.Millisecond
	KeySoundAttack             = 5 * time.Millisecond
	KeySoundFundamentalRelease = 550 * time.Millisecond
	KeySoundOvertoneRelease    = 200 * time.Millisecond
)

// Health: rising three-note arpeggio
const (
	HealthSoundNoteDuration = 90 * time.Millisecond
	HealthSoundAttack       = 5 * time.Millisecond
	HealthSoundRelease      = 40 * time.Millisecond
)

// Exit: sustained major chord
const (
	ExitSoundDuration = 900 * time.Millisecond
	ExitSoundAttack   = 30 * time.Millisecond
	ExitSoundRelease  = 600 * time.Millisecond
)

// Regenerate: noise whoosh
const (
	RegenSoundDuration = 300 * time.Millisecond
	RegenSoundAttack   = 150 * time.Millisecond
	RegenSoundRelease  = 150 * time.Millisecond
)
