package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/younwookim/crypt/internal/domain/entity"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone describes a synthesized cue: a pitch sweep from Freq to EndFreq
type tone struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Wave     WaveType
	Gain     float64
}

var tones = map[entity.Sound]tone{
	entity.SoundFootstep:    {Freq: 90, EndFreq: 70, Duration: 40 * time.Millisecond, Wave: WaveNoise, Gain: 0.15},
	entity.SoundSwing:       {Freq: 900, EndFreq: 300, Duration: 90 * time.Millisecond, Wave: WaveNoise, Gain: 0.25},
	entity.SoundHit:         {Freq: 220, EndFreq: 110, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.3},
	entity.SoundEnemyDeath:  {Freq: 330, EndFreq: 80, Duration: 220 * time.Millisecond, Wave: WaveSaw, Gain: 0.3},
	entity.SoundPlayerHurt:  {Freq: 160, EndFreq: 90, Duration: 150 * time.Millisecond, Wave: WaveSquare, Gain: 0.35},
	entity.SoundShoot:       {Freq: 600, EndFreq: 900, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
	entity.SoundDoorClose:   {Freq: 70, EndFreq: 50, Duration: 300 * time.Millisecond, Wave: WaveSaw, Gain: 0.35},
	entity.SoundDoorOpen:    {Freq: 50, EndFreq: 90, Duration: 300 * time.Millisecond, Wave: WaveSaw, Gain: 0.3},
	entity.SoundCombatStart: {Freq: 440, EndFreq: 660, Duration: 250 * time.Millisecond, Wave: WaveSquare, Gain: 0.25},
	entity.SoundToken:       {Freq: 880, EndFreq: 1320, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.3},
	entity.SoundDenied:      {Freq: 120, EndFreq: 120, Duration: 180 * time.Millisecond, Wave: WaveSquare, Gain: 0.3},
}

// oscillator generates a linearly swept wave of fixed length
type oscillator struct {
	t        tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	noise    uint32
}

func newOscillator(t tone, rate beep.SampleRate) *oscillator {
	return &oscillator{t: t, rate: rate, total: rate.N(t.Duration), noise: 0x9e3779b9}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		progress := float64(o.position) / float64(o.total)
		freq := o.t.Freq + (o.t.EndFreq-o.t.Freq)*progress

		var val float64
		switch o.t.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps synthesis independent of the simulation RNG
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		// linear release over the whole cue
		val *= o.t.Gain * (1 - progress)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Synthesize returns the streamer for a cue at the given volume (0..1).
// Unknown cues yield nil.
func Synthesize(s entity.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	t, ok := tones[s]
	if !ok {
		return nil
	}
	return withVolume(newOscillator(t, rate), volume)
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
