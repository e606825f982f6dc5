package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/COMOCO0102/Game-plan/constants"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	total, peak := 0, 0.0
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

// TestSweepLength verifies the oscillator stops after its duration
func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewSweep(220, 440, 50*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: sample out of range: %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestEnvelopeShape verifies the envelope starts silent and fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewSweep(0, 0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[85][0] {
		t.Errorf("Expected release fade, got %f then %f", samples[85][0], samples[99][0])
	}
}

// TestCueStreamers verifies every cue builds a finite, bounded stream
func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	lengths := map[Cue]int{
		CueBump:    rate.N(constants.BumpSoundDuration),
		CueTrapped: rate.N(constants.TrappedSoundDuration),
		CueWin:     4 * rate.N(constants.WinNoteDuration),
		CueLoss:    rate.N(constants.LossSoundDuration),
	}

	for cue, want := range lengths {
		s := NewCueStreamer(cue, rate, 1.0)
		if s == nil {
			t.Fatalf("%s: expected a streamer", cue)
		}
		n, peak := drain(t, s)
		if n != want {
			t.Errorf("%s: expected %d samples, got %d", cue, want, n)
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("%s: peak amplitude %f out of range", cue, peak)
		}
	}

	if NewCueStreamer(CueNone, rate, 1.0) != nil {
		t.Error("CueNone must not build a streamer")
	}
}
