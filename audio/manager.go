// Package audio synthesizes gameplay cues with beep and plays them through a
// shared mixer on the system speaker.
package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/maze3d/parameter"
)

// ErrNotInitialized is returned by Play before Init succeeded
var ErrNotInitialized = errors.New("audio: not initialized")

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Manager owns the output mixer. All methods are safe for concurrent use.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	logger      *zap.Logger
	out         output
}

// output is the device the mixer plays on. Lock guards the mixer against the
// device's pull goroutine.
type output interface {
	Start(m *beep.Mixer) error
	Lock()
	Unlock()
}

// speakerOutput is the system speaker
type speakerOutput struct{}

func (speakerOutput) Start(m *beep.Mixer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(m)
	return nil
}

func (speakerOutput) Lock()   { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }

// NewManager creates a manager, the device is opened by Init
func NewManager(volume float64, enabled bool, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
		logger:  logger,
		out:     speakerOutput{},
	}
}

// Init opens the speaker, repeated calls are no-ops
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := m.out.Start(m.mixer); err != nil {
		return err
	}
	m.initialized = true
	m.logger.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Play queues cue on the mixer. Disabled audio drops it silently.
func (m *Manager) Play(cue Cue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	if !m.enabled || m.volume <= 0 {
		return nil
	}
	s := Build(cue, sampleRate, m.volume)
	if s == nil {
		return nil
	}
	m.withSpeakerLock(func() { m.mixer.Add(s) })
	m.logger.Debug("cue", zap.Stringer("cue", cue))
	return nil
}

// SetVolume applies to cues queued afterwards
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	m.volume = v
	m.mu.Unlock()
}

// SetEnabled toggles playback, disabling also drops queued cues
func (m *Manager) SetEnabled(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = on
	if !on && m.initialized {
		m.withSpeakerLock(m.mixer.Clear)
	}
}

// Close stops all sounds. beep has no speaker close, so the device stays open.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.withSpeakerLock(m.mixer.Clear)
	m.initialized = false
}

// Active returns the number of cues still sounding
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	m.withSpeakerLock(func() { n = m.mixer.Len() })
	return n
}

// withSpeakerLock guards mixer access once the device is pulling from it
func (m *Manager) withSpeakerLock(fn func()) {
	if !m.initialized {
		fn()
		return
	}
	m.out.Lock()
	defer m.out.Unlock()
	fn()
}
