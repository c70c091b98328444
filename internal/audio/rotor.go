// Package audio plays a looping rotor tone whose gain and pitch follow the
// craft's thrust.
package audio

import (
	"errors"
	"math"
	"sync/atomic"
)

const (
	SampleRate   = 48000
	ChannelCount = 2

	maxRPM   = 8000.0
	loopPeak = 0.85

	// Per-sample approach rate towards the target gain and rate.
	slew = 0.0005
)

// rotorSpec describes the recorded rotor loop.
type rotorSpec struct {
	sampleRate int
	blades     int
	cycles     int // blade-pass periods in one loop
	rpm        float64
}

var defaultRotor = rotorSpec{sampleRate: SampleRate, blades: 2, cycles: 128, rpm: 4000}

func (s rotorSpec) validate() error {
	switch {
	case s.sampleRate <= 0:
		return errors.New("audio: sample rate must be > 0")
	case s.blades <= 0:
		return errors.New("audio: blade count must be > 0")
	case s.cycles <= 0:
		return errors.New("audio: cycles must be > 0")
	case !(s.rpm > 0):
		return errors.New("audio: rotor RPM must be > 0")
	}
	return nil
}

// Overtones of the blade-pass frequency.
var rotorHarmonics = [...]struct{ multiple, amplitude, phase float64 }{
	{1, 1, 0},
	{2, 0.35, 0.1},
	{3, 0.2, 0.2},
}

// rotorLoop is one seamless period of rotor noise and the RPM it sounds at.
type rotorLoop struct {
	samples []float32
	rpm     float64
}

func synthRotorLoop(spec rotorSpec) (rotorLoop, error) {
	if err := spec.validate(); err != nil {
		return rotorLoop{}, err
	}

	// Round to whole samples, then retune so the loop holds exactly
	// spec.cycles blade passes.
	span := float64(spec.cycles) * float64(spec.sampleRate)
	n := int(math.Round(span / (spec.rpm / 60 * float64(spec.blades))))
	if n < 1 {
		return rotorLoop{}, errors.New("audio: rotor loop shorter than one sample")
	}
	bladePass := span / float64(n)

	wave := make([]float64, n)
	peak := 0.0
	step := 2 * math.Pi * bladePass / float64(spec.sampleRate)
	for i := range wave {
		phase := float64(i) * step
		v := 0.0
		for _, h := range rotorHarmonics {
			v += h.amplitude * math.Sin(h.multiple*phase+h.phase)
		}
		// Slow blade slap.
		v *= 0.7 + 0.15*math.Sin(phase/2)
		wave[i] = v
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		return rotorLoop{}, errors.New("audio: rotor loop is silent")
	}

	loop := rotorLoop{samples: make([]float32, n), rpm: bladePass * 60 / float64(spec.blades)}
	for i, v := range wave {
		loop.samples[i] = float32(v * loopPeak / peak)
	}
	return loop, nil
}

// thrustGain maps normalized thrust to output gain. Idle is silent.
func thrustGain(norm float64) float64 {
	norm = clamp01(norm)
	if norm <= 0.001 {
		return 0
	}
	return 0.08 + 0.6*norm
}

// thrustRate maps normalized thrust to a playback rate relative to the
// loop's recorded RPM.
func thrustRate(norm, baseRPM float64) float64 {
	rpm := maxRPM * math.Sqrt(clamp01(norm))
	if rpm <= 1 || baseRPM <= 0 {
		return 0.4
	}
	return math.Min(math.Max(rpm/baseRPM, 0.4), 2.2)
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return math.Min(v, 1)
}

// rotorReader streams the rotor loop as interleaved stereo float32 LE,
// resampled on the fly. SetThrust may be called from any goroutine.
type rotorReader struct {
	loop    []float32
	baseRPM float64

	targetGain atomic.Uint64 // float64 bits
	targetRate atomic.Uint64

	pos  float64
	gain float64
	rate float64
}

func newRotorReader() (*rotorReader, error) {
	loop, err := synthRotorLoop(defaultRotor)
	if err != nil {
		return nil, err
	}
	r := &rotorReader{loop: loop.samples, baseRPM: loop.rpm, rate: thrustRate(0, loop.rpm)}
	r.SetThrust(0)
	return r, nil
}

func (r *rotorReader) SetThrust(norm float64) {
	r.targetGain.Store(math.Float64bits(thrustGain(norm)))
	r.targetRate.Store(math.Float64bits(thrustRate(norm, r.baseRPM)))
}

func (r *rotorReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	gain := math.Float64frombits(r.targetGain.Load())
	rate := math.Float64frombits(r.targetRate.Load())
	n := float64(len(r.loop))

	for i := 0; i < frames; i++ {
		r.gain += (gain - r.gain) * slew
		r.rate += (rate - r.rate) * slew

		i0 := int(r.pos)
		frac := r.pos - float64(i0)
		a := float64(r.loop[i0])
		b := float64(r.loop[(i0+1)%len(r.loop)])
		putStereoF32(p, i, (a+(b-a)*frac)*r.gain)

		r.pos = math.Mod(r.pos+r.rate, n)
	}
	return frames * 8, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
