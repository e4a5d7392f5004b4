package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

func testSweep() *Sweep {
	return &Sweep{
		Layout:       frying.Layout{OilLeft: 115, OilRight: 485, OilSurfaceY: 100, OilBottomY: 400, BasketFloorY: 360},
		Dt:           0.016,
		Duration:     30,
		DropPosition: mgl64.Vec2{300, 200},
		FrySize:      mgl64.Vec2{120, 20},
		SeedStart:    1,
		Metrics: func() []Metric {
			return []Metric{NewMeanTempGap(), NewFinalMoisture()}
		},
	}
}

func TestSweepHotterOilDriesFaster(t *testing.T) {
	points, err := testSweep().Run(context.Background(), []float64{160, 175, 190})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	for i, p := range points {
		if p.Values["final_moisture"] <= 0 {
			t.Errorf("point %d: final moisture %f", i, p.Values["final_moisture"])
		}
	}
	// Results come back in input order.
	if points[0].OilTemperature != 160 || points[2].OilTemperature != 190 {
		t.Errorf("point order: %f, %f", points[0].OilTemperature, points[2].OilTemperature)
	}
	if points[2].Values["final_moisture"] >= points[0].Values["final_moisture"] {
		t.Errorf("hotter oil should dry faster: %f at 190 vs %f at 160",
			points[2].Values["final_moisture"], points[0].Values["final_moisture"])
	}
}

func TestSweepCancellation(t *testing.T) {
	s := testSweep()
	s.Duration = 100000

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if _, err := s.Run(ctx, []float64{170, 180}); err == nil {
		t.Error("expected cancellation error")
	}
}
