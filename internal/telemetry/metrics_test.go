package telemetry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

func TestTimeToDone(t *testing.T) {
	m := NewTimeToDone(0.85)

	m.Observe(Sample{Time: 1, FryPresent: true, Cookedness: 0.2})
	if !math.IsNaN(m.Value()) {
		t.Errorf("value before crossing = %f, want NaN", m.Value())
	}

	m.Observe(Sample{Time: 42, FryPresent: true, Cookedness: 0.9})
	m.Observe(Sample{Time: 50, FryPresent: true, Cookedness: 0.95})
	if m.Value() != 42 {
		t.Errorf("time to done = %f, want 42 (first crossing)", m.Value())
	}

	m.Reset()
	if !math.IsNaN(m.Value()) {
		t.Error("reset did not clear the crossing")
	}
}

func TestPeakBubbles(t *testing.T) {
	m := NewPeakBubbles()
	for _, n := range []int{3, 17, 5, 12} {
		m.Observe(Sample{BubbleCount: n})
	}
	if m.Value() != 17 {
		t.Errorf("peak = %f, want 17", m.Value())
	}
}

func TestFinalMoisture(t *testing.T) {
	m := NewFinalMoisture()
	m.Observe(Sample{FryPresent: true, Moisture: 0.79})
	m.Observe(Sample{FryPresent: true, Moisture: 0.4})
	m.Observe(Sample{FryPresent: false}) // removed fry must not zero the reading
	if m.Value() != 0.4 {
		t.Errorf("final moisture = %f, want 0.4", m.Value())
	}
}

func TestMeanTempGap(t *testing.T) {
	m := NewMeanTempGap()
	m.Observe(Sample{FryPresent: true, Submerged: true, OilTemperature: 175, FryTemperature: 25})
	m.Observe(Sample{FryPresent: true, Submerged: true, OilTemperature: 175, FryTemperature: 125})
	m.Observe(Sample{FryPresent: true, Submerged: false, OilTemperature: 175, FryTemperature: 20})

	if got := m.Value(); math.Abs(got-100) > 1e-9 {
		t.Errorf("mean gap = %f, want 100", got)
	}
}

func TestRecorderObservesSimulation(t *testing.T) {
	layout := frying.Layout{OilLeft: 115, OilRight: 485, OilSurfaceY: 100, OilBottomY: 400, BasketFloorY: 360}
	s := frying.NewSimulation(layout, 175, rand.New(rand.NewSource(7)))
	s.SpawnFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})

	// Long enough for the core to pass 100 °C and start losing water.
	rec := NewRecorder(NewPeakBubbles(), NewMeanTempGap())
	for i := 0; i < 1200; i++ {
		s.Step(0.016)
		rec.Observe(s)
	}

	if len(rec.Samples()) != 1200 {
		t.Fatalf("recorded %d samples, want 1200", len(rec.Samples()))
	}

	values := rec.Values()
	if values["peak_bubbles"] == 0 {
		t.Error("expected some bubbles in a fresh fry run")
	}
	if values["mean_temp_gap"] <= 0 {
		t.Errorf("mean temp gap = %f, want positive for a cold fry", values["mean_temp_gap"])
	}

	series := rec.Series(func(s Sample) float64 { return s.Moisture })
	if len(series) != 1200 {
		t.Fatalf("series length %d, want 1200", len(series))
	}
	if series[len(series)-1] >= series[0] {
		t.Error("moisture series did not decrease")
	}

	rec.Reset()
	if len(rec.Samples()) != 0 {
		t.Error("reset did not clear samples")
	}
}
