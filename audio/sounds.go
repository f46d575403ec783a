package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies a game event tone
type Sound uint8

const (
	SoundReveal Sound = iota
	SoundCascade
	SoundFlag
	SoundWin
	SoundLoss
)

func (s Sound) String() string {
	switch s {
	case SoundReveal:
		return "reveal"
	case SoundCascade:
		return "cascade"
	case SoundFlag:
		return "flag"
	case SoundWin:
		return "win"
	case SoundLoss:
		return "loss"
	}
	return "unknown"
}

// Durations and shaping
const (
	blipDuration  = 40 * time.Millisecond
	blipAttack    = 2 * time.Millisecond
	blipRelease   = 25 * time.Millisecond
	noteDuration  = 90 * time.Millisecond
	noteRelease   = 60 * time.Millisecond
	boomDuration  = 450 * time.Millisecond
	boomRelease   = 350 * time.Millisecond
	masterVolume  = 0.35
	cascadeVolume = 0.6
)

// note builds one enveloped tone
func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Create builds the streamer for s; every sound is finite
func Create(s Sound, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundReveal:
		st = note(660, blipDuration, blipAttack, blipRelease, WaveSine, rate)
	case SoundCascade:
		st = beep.Seq(
			note(660, blipDuration, blipAttack, blipRelease, WaveSine, rate),
			newVolume(note(990, blipDuration, blipAttack, blipRelease, WaveSine, rate), cascadeVolume),
		)
	case SoundFlag:
		st = note(1320, blipDuration/2, blipAttack, blipRelease/2, WaveSquare, rate)
	case SoundWin:
		// C major arpeggio
		st = beep.Seq(
			note(523.25, noteDuration, blipAttack, noteRelease, WaveSine, rate),
			note(659.25, noteDuration, blipAttack, noteRelease, WaveSine, rate),
			note(783.99, noteDuration, blipAttack, noteRelease, WaveSine, rate),
			note(1046.5, 2*noteDuration, blipAttack, 2*noteRelease, WaveSine, rate),
		)
	case SoundLoss:
		st = beep.Mix(
			note(0, boomDuration, blipAttack, boomRelease, WaveNoise, rate),
			newVolume(note(55, boomDuration, blipAttack, boomRelease, WaveSaw, rate), 0.8),
		)
	default:
		return beep.Silence(0)
	}
	return newVolume(st, masterVolume)
}
