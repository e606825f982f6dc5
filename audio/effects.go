package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/COMOCO0102/Game-plan/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a finite oscillator gliding linearly from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	length   int
	pos      int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates an oscillator that glides from one frequency to another over duration.
// Equal frequencies give a steady tone.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:   from,
		to:     to,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1.0
			if s.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with an attack ramp and a release fade over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.pos >= releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.pos)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBumpSound is a short low saw buzz for a blocked move
func CreateBumpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(constants.BumpFrequency, constants.BumpFrequency, constants.BumpSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.BumpSoundDuration, constants.BumpSoundAttack, constants.BumpSoundRelease, rate)
	return newVolume(shaped, 0.6*volume)
}

// CreateTrappedSound is a rising square chirp when the adversary is enclosed
func CreateTrappedSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(constants.TrappedFrequency/2, constants.TrappedFrequency, constants.TrappedSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.TrappedSoundDuration, constants.TrappedSoundAttack, constants.TrappedSoundRelease, rate)
	return newVolume(shaped, 0.4*volume)
}

// CreateWinSound is a rising major arpeggio ending on the root octave
func CreateWinSound(rate beep.SampleRate, volume float64) beep.Streamer {
	ratios := []float64{1.0, 1.25, 1.5, 2.0}
	notes := make([]beep.Streamer, 0, len(ratios))
	for _, r := range ratios {
		tone, err := generators.SineTone(rate, constants.WinFrequency/2*r)
		if err != nil {
			continue
		}
		note := beep.Take(rate.N(constants.WinNoteDuration), tone)
		notes = append(notes, NewEnvelope(note, constants.WinNoteDuration, constants.WinNoteAttack, constants.WinNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.7*volume)
}

// CreateLossSound is a falling saw with a noise bed
func CreateLossSound(rate beep.SampleRate, volume float64) beep.Streamer {
	fall := NewSweep(constants.LossFrequency*2, constants.LossFrequency, constants.LossSoundDuration, WaveSaw, rate)
	noise := NewSweep(0, 0, constants.LossSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(fall, 0.8), newVolume(noise, 0.15))
	shaped := NewEnvelope(mixed, constants.LossSoundDuration, constants.LossSoundAttack, constants.LossSoundRelease, rate)
	return newVolume(shaped, 0.6*volume)
}

// NewCueStreamer builds the streamer for cue, nil for CueNone
func NewCueStreamer(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch cue {
	case CueBump:
		return CreateBumpSound(rate, volume)
	case CueTrapped:
		return CreateTrappedSound(rate, volume)
	case CueWin:
		return CreateWinSound(rate, volume)
	case CueLoss:
		return CreateLossSound(rate, volume)
	default:
		return nil
	}
}
