package frying

import (
	"math"
	"testing"
)

func TestOilViscosityMonotone(t *testing.T) {
	prev := math.Inf(1)
	for temp := MinOilTemp; temp <= MaxOilTemp; temp += 0.5 {
		o := &Oil{Temperature: temp}
		mu := o.Viscosity()
		if mu > prev {
			t.Errorf("viscosity increased at %.1f°C: %f > %f", temp, mu, prev)
		}
		if mu < MinViscosity || mu > MaxViscosity {
			t.Errorf("viscosity out of range at %.1f°C: %f", temp, mu)
		}
		prev = mu
	}
}

func TestOilDensityStrictlyDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for temp := MinOilTemp; temp <= MaxOilTemp; temp += 1.0 {
		o := &Oil{Temperature: temp}
		rho := o.Density()
		if rho >= prev {
			t.Errorf("density not strictly decreasing at %.1f°C: %f >= %f", temp, rho, prev)
		}
		prev = rho
	}
}

func TestOilDensityReferencePoints(t *testing.T) {
	tests := []struct {
		temp float64
		want float64
	}{
		{160, 0.8254},
		{175, 0.8158},
		{190, 0.8062},
	}
	for _, tt := range tests {
		o := &Oil{Temperature: tt.temp}
		if got := o.Density(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("density(%.0f) = %f, want %f", tt.temp, got, tt.want)
		}
	}
}

func TestOilSetTargetClamps(t *testing.T) {
	o := NewOil(175)

	o.SetTarget(250)
	if o.Target != MaxOilTemp {
		t.Errorf("expected target clamped to %f, got %f", MaxOilTemp, o.Target)
	}

	o.SetTarget(100)
	if o.Target != MinOilTemp {
		t.Errorf("expected target clamped to %f, got %f", MinOilTemp, o.Target)
	}

	if o.Temperature != 175 {
		t.Errorf("SetTarget must not touch temperature, got %f", o.Temperature)
	}
}

func TestOilStepApproachesTarget(t *testing.T) {
	o := NewOil(165)
	o.SetTarget(188)

	prevGap := math.Abs(o.Target - o.Temperature)
	for i := 0; i < 500; i++ {
		o.Step()
		gap := math.Abs(o.Target - o.Temperature)
		if gap > prevGap {
			t.Fatalf("step %d: gap grew from %f to %f", i, prevGap, gap)
		}
		if o.Temperature < MinOilTemp || o.Temperature > MaxOilTemp {
			t.Fatalf("step %d: temperature out of range: %f", i, o.Temperature)
		}
		prevGap = gap
	}
	if prevGap > 0.01 {
		t.Errorf("temperature did not converge to target, gap %f", prevGap)
	}
}

func TestNewOilClamps(t *testing.T) {
	o := NewOil(500)
	if o.Temperature != MaxOilTemp || o.Target != MaxOilTemp {
		t.Errorf("expected clamped init, got temp=%f target=%f", o.Temperature, o.Target)
	}
}
