package telemetry

import (
	"context"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

// Sweep runs the same frying scenario across a set of oil temperatures,
// one goroutine per temperature.
type Sweep struct {
	Layout   frying.Layout
	Dt       float64
	Duration float64

	DropPosition mgl64.Vec2
	FrySize      mgl64.Vec2

	SeedStart int64
	Metrics   func() []Metric
}

// SweepPoint is the metric summary of one temperature in the sweep.
type SweepPoint struct {
	OilTemperature float64
	Values         map[string]float64
}

func (s *Sweep) Run(ctx context.Context, temperatures []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(temperatures))
	errs := make([]error, len(temperatures))

	done := make(chan int, len(temperatures))
	for i, temp := range temperatures {
		go func(idx int, oilTemp float64) {
			defer func() { done <- idx }()
			points[idx], errs[idx] = s.runOne(ctx, oilTemp, s.SeedStart+int64(idx))
		}(i, temp)
	}
	for range temperatures {
		<-done
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

func (s *Sweep) runOne(ctx context.Context, oilTemp float64, seed int64) (SweepPoint, error) {
	sim := frying.NewSimulation(s.Layout, oilTemp, rand.New(rand.NewSource(seed)))
	sim.SpawnFry(s.DropPosition, s.FrySize)

	var metrics []Metric
	if s.Metrics != nil {
		metrics = s.Metrics()
	}
	rec := NewRecorder(metrics...)

	steps := int(s.Duration / s.Dt)
	for i := 0; i < steps; i++ {
		if i%1000 == 0 {
			select {
			case <-ctx.Done():
				return SweepPoint{}, ctx.Err()
			default:
			}
		}
		sim.Step(s.Dt)
		rec.Observe(sim)
	}

	return SweepPoint{OilTemperature: oilTemp, Values: rec.Values()}, nil
}
