// Package audio plays short retro sound effects for game events.
// Everything degrades to silence if the speaker cannot be opened.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Effect identifies a game sound.
type Effect int

const (
	EffectPaddleHit Effect = iota
	EffectWallBounce
	EffectScore
	EffectCountdownTick
	EffectGo
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Play triggers the given effect. Safe to call before Init or after a
// failed Init.
func Play(e Effect) {
	if !initialized {
		return
	}
	switch e {
	case EffectPaddleHit:
		speaker.Play(squareWave(880, 50*time.Millisecond))
	case EffectWallBounce:
		speaker.Play(squareWave(440, 30*time.Millisecond))
	case EffectCountdownTick:
		speaker.Play(squareWave(523, 80*time.Millisecond))
	case EffectGo:
		speaker.Play(tone(784, 200*time.Millisecond))
	case EffectScore:
		// Descending three-note jingle
		go func() {
			speaker.Play(squareWave(660, 100*time.Millisecond))
			time.Sleep(100 * time.Millisecond)
			speaker.Play(squareWave(440, 100*time.Millisecond))
			time.Sleep(100 * time.Millisecond)
			speaker.Play(squareWave(330, 150*time.Millisecond))
		}()
	}
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
