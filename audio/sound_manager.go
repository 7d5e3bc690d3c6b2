// Package audio plays short cues through the beep speaker
// Every method is safe to call when the speaker never initialized
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ascii3d/shape"
)

const (
	sampleRate = beep.SampleRate(48000)

	// switchDuration is the length of the shape switch cue
	switchDuration = 120 * time.Millisecond

	// switchVolume is the beep/effects.Volume exponent applied to the cue (base 2)
	switchVolume = -2.0
)

// switchPitch maps each shape to its cue frequency in Hz
var switchPitch = map[shape.Kind]float64{
	shape.Donut:   440,
	shape.Pyramid: 554.37,
	shape.Cube:    659.25,
}

// Pitch returns the cue frequency for k, falling back to the default shape
func Pitch(k shape.Kind) float64 {
	if f, ok := switchPitch[k]; ok {
		return f
	}
	return switchPitch[shape.Default]
}

// SoundManager owns the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	played      int
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.ctrl = &beep.Ctrl{Streamer: sm.mixer}
	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlaySwitch queues the cue for switching to k
func (sm *SoundManager) PlaySwitch(k shape.Kind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	cue := &effects.Volume{
		Streamer: SwitchCue(sampleRate, Pitch(k)),
		Base:     2,
		Volume:   switchVolume,
	}
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
	sm.played++
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}
