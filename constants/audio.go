package constants

import "time"

// Audio Engine Settings
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue (0.0 - 1.0)
	AudioMasterVolume = 0.5
)

// Cue Timing
const (
	BumpSoundDuration = 60 * time.Millisecond
	BumpSoundAttack   = 2 * time.Millisecond
	BumpSoundRelease  = 30 * time.Millisecond

	TrappedSoundDuration = 400 * time.Millisecond
	TrappedSoundAttack   = 10 * time.Millisecond
	TrappedSoundRelease  = 150 * time.Millisecond

	// WinNoteDuration is the length of each note in the victory arpeggio
	WinNoteDuration = 175 * time.Millisecond
	WinNoteAttack   = 5 * time.Millisecond
	WinNoteRelease  = 80 * time.Millisecond

	LossSoundDuration = 600 * time.Millisecond
	LossSoundAttack   = 10 * time.Millisecond
	LossSoundRelease  = 400 * time.Millisecond
)

// Cue Frequencies (Hz)
const (
	BumpFrequency    = 140.0
	TrappedFrequency = 660.0
	WinFrequency     = 880.0
	LossFrequency    = 110.0
)
