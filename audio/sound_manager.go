package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/COMOCO0102/Game-plan/constants"
	"github.com/COMOCO0102/Game-plan/engine"
)

// SoundManager plays game cues through a single speaker mixer.
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      *zap.Logger
}

// NewSoundManager creates a sound manager; logger may be nil
func NewSoundManager(logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		rate:   beep.SampleRate(constants.AudioSampleRate),
		volume: constants.AudioMasterVolume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences or re-enables cues without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Cleanup drops pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues cue on the mixer
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := NewCueStreamer(cue, sm.rate, sm.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.logger.Debug("cue played", zap.Stringer("cue", cue))
}

// HandleEvent plays the cue matching a game event
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if cue := CueForEvent(ev); cue != CueNone {
		sm.Play(cue)
	}
}
