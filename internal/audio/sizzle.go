// Package audio synthesizes the frying sizzle from live bubble
// activity.
package audio

import (
	"math"
	"math/rand"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Processor drives a filtered-noise sizzle whose intensity follows the
// bubble count. SetIntensity is safe to call from the render loop while
// the stream callback runs.
type Processor struct {
	Stream *portaudio.Stream
	Active bool

	mu        sync.Mutex
	intensity float64

	smoothed    float64
	filterState [2]float64
	crackleEnv  float64
	rng         *rand.Rand
}

func NewProcessor() *Processor {
	return &Processor{
		rng: rand.New(rand.NewSource(1)),
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// SetIntensity maps live bubble activity onto the synth, 0 silent to 1
// full rolling boil.
func (a *Processor) SetIntensity(v float64) {
	a.mu.Lock()
	a.intensity = math.Max(0, math.Min(v, 1))
	a.mu.Unlock()
}

// Low pass filter (one pole).
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (a *Processor) process(out [][]float32) {
	a.mu.Lock()
	target := a.intensity
	a.mu.Unlock()

	dt := 1.0 / float64(SampleRate)

	for i := 0; i < len(out[0]); i++ {
		// Slow envelope so dropping a fry swells the sizzle instead
		// of gating it.
		a.smoothed = a.smoothed*0.9995 + target*0.0005

		noise := a.rng.Float64()*2 - 1

		// Random pops ride on top of the hiss; hotter oil pops more.
		if a.rng.Float64() < 0.0004*a.smoothed {
			a.crackleEnv = 1.0
		}
		a.crackleEnv *= 0.995

		sample := noise * (0.25*a.smoothed + 0.6*a.crackleEnv*a.smoothed)

		// Intensity opens the filter, from a dull murmur to a bright
		// sizzle.
		cutoff := 400.0 + 5600.0*a.smoothed
		var outL, outR float64
		outL, a.filterState[0] = lpf(sample, cutoff, dt, a.filterState[0])
		outR, a.filterState[1] = lpf(sample*0.97, cutoff, dt, a.filterState[1])

		out[0][i] = float32(outL)
		out[1][i] = float32(outR)
	}
}
