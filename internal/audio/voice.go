package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/birdfeed/internal/game"
)

// Register clock rates of the sound hardware the tones are written for.
const (
	pulseClock    = 131072.0 // Hz = pulseClock / (2048 - freq)
	noiseClock    = 524288.0 // LFSR shifts per second = noiseClock / freq
	envelopeTicks = 64       // envelope steps per second per unit of Step
	lengthUnits   = 256      // length counter units per second
	maxVolume     = 15
	channelGain   = 0.25 // headroom for four mixed channels
)

// voice generates one channel's tone: a pulse or noise oscillator shaped
// by a stepped volume envelope and an optional length counter.
type voice struct {
	wave   game.Waveform
	duty   float64
	freq   float64 // oscillator or LFSR shift rate in Hz
	phase  float64
	lfsr   uint16
	volume int
	step   int8

	stepSamples int // samples per envelope step, 0 to hold
	stepPos     int
	remaining   int // samples left, -1 until replaced
	rate        beep.SampleRate
}

func newVoice(wave game.Waveform, env game.Envelope, freq uint16, length uint8, rate beep.SampleRate) *voice {
	v := &voice{
		wave:      wave,
		duty:      dutyCycle(wave),
		lfsr:      0x7FFF,
		volume:    int(min(env.Volume, maxVolume)),
		step:      env.Step,
		remaining: -1,
		rate:      rate,
	}

	if wave == game.WaveNoise {
		v.freq = noiseClock / float64(max(freq, 1))
	} else {
		period := 2048 - int(freq&0x7FF)
		v.freq = pulseClock / float64(period)
	}

	if env.Step != 0 {
		n := int(math.Abs(float64(env.Step)))
		v.stepSamples = rate.N(time.Duration(n) * time.Second / envelopeTicks)
	}
	if length > 0 {
		v.remaining = rate.N(time.Duration(length) * time.Second / lengthUnits)
	}
	return v
}

func dutyCycle(w game.Waveform) float64 {
	switch w {
	case game.WaveDuty12:
		return 0.125
	case game.WaveDuty25:
		return 0.25
	case game.WaveDuty75:
		return 0.75
	default:
		return 0.5
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.remaining == 0 {
			return i, i > 0
		}

		amp := channelGain * float64(v.volume) / maxVolume
		var val float64
		if v.wave == game.WaveNoise {
			if v.lfsr&1 == 0 {
				val = amp
			} else {
				val = -amp
			}
		} else if v.phase < v.duty {
			val = amp
		} else {
			val = -amp
		}
		samples[i][0] = val
		samples[i][1] = val

		v.advance()
	}
	return len(samples), true
}

func (v *voice) advance() {
	v.phase += v.freq / float64(v.rate)
	if v.phase >= 1 {
		shifts := int(v.phase)
		v.phase -= float64(shifts)
		if v.wave == game.WaveNoise {
			for ; shifts > 0; shifts-- {
				bit := (v.lfsr ^ v.lfsr>>1) & 1
				v.lfsr = v.lfsr>>1 | bit<<14
			}
		}
	}

	if v.stepSamples > 0 {
		v.stepPos++
		if v.stepPos >= v.stepSamples {
			v.stepPos = 0
			if v.step < 0 && v.volume > 0 {
				v.volume--
			} else if v.step > 0 && v.volume < maxVolume {
				v.volume++
			}
		}
	}

	if v.remaining > 0 {
		v.remaining--
	}
}

func (v *voice) Err() error { return nil }
