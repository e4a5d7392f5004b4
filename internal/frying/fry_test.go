package frying

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	testSurfaceY = 100.0
	testFloorY   = 360.0
)

func oilDensityAt(temp float64) float64 {
	return (&Oil{Temperature: temp}).Density()
}

func TestNewFryRawState(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 50}, mgl64.Vec2{120, 20})

	if f.MoistureContent != RawMoisture {
		t.Errorf("moisture = %f, want %f", f.MoistureContent, RawMoisture)
	}
	if f.Temperature != RawTemperature {
		t.Errorf("temperature = %f, want %f", f.Temperature, RawTemperature)
	}
	if f.Density != RawDensity {
		t.Errorf("density = %f, want %f", f.Density, RawDensity)
	}
	if f.Cookedness != 0 || f.CrustThickness != 0 || f.TimeInOil != 0 {
		t.Error("expected zero cooking state on a raw fry")
	}
	if f.InOil {
		t.Error("raw fry must not start submerged")
	}
}

func TestFryConvergence(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})
	oilTemp := 180.0
	rho := oilDensityAt(oilTemp)

	dt := 0.016
	for elapsed := 0.0; elapsed < 5000.0; elapsed += dt {
		f.Update(dt, oilTemp, testSurfaceY, rho, testFloorY)
	}

	if math.Abs(f.Temperature-oilTemp) > 0.01 {
		t.Errorf("temperature = %f, want within 0.01 of %f", f.Temperature, oilTemp)
	}
	if f.Cookedness != 1.0 {
		t.Errorf("cookedness = %f, want 1.0", f.Cookedness)
	}
	if math.Abs(f.CrustThickness-1.0) > 0.01 {
		t.Errorf("crust = %f, want within 0.01 of 1.0", f.CrustThickness)
	}
	if math.Abs(f.Density-FriedDensity) > 0.01 {
		t.Errorf("density = %f, want within 0.01 of %f", f.Density, FriedDensity)
	}
	if f.MoistureContent != MinMoisture {
		t.Errorf("moisture = %f, want floor %f", f.MoistureContent, MinMoisture)
	}
}

func TestFryBuoyancySignFlip(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 250}, mgl64.Vec2{120, 20})
	oilTemp := 175.0
	rho := oilDensityAt(oilTemp) // ~0.82

	// Raw fry is denser than oil: first update from rest accelerates
	// it downward (y axis points down).
	f.Update(0.016, oilTemp, testSurfaceY, rho, testFloorY)
	if f.Velocity.Y() <= 0 {
		t.Fatalf("raw fry should sink, vy = %f", f.Velocity.Y())
	}

	// Force the fried state: density drops below the oil's.
	f.MoistureContent = MinMoisture
	for i := 0; i < 5000; i++ {
		f.Update(0.016, oilTemp, testSurfaceY, rho, testFloorY)
	}
	if !f.Floating(rho) {
		t.Fatalf("fried fry should be buoyant: density %f vs oil %f", f.Density, rho)
	}
	// Settled just under the surface, not breaching it.
	if f.Position.Y() < testSurfaceY {
		t.Errorf("fry breached the surface: y = %f", f.Position.Y())
	}
	if math.Abs(f.Position.Y()-(testSurfaceY+5)) > 1.0 {
		t.Errorf("fry did not settle at the surface band: y = %f", f.Position.Y())
	}
	if math.Abs(f.Velocity.Y()) > 1.0 {
		t.Errorf("settled fry should be nearly at rest, vy = %f", f.Velocity.Y())
	}
}

func TestFryMoistureMonotone(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})
	prev := f.MoistureContent
	for i := 0; i < 20000; i++ {
		f.Update(0.016, 185, testSurfaceY, oilDensityAt(185), testFloorY)
		if f.MoistureContent > prev {
			t.Fatalf("step %d: moisture increased %f -> %f", i, prev, f.MoistureContent)
		}
		if f.MoistureContent < MinMoisture || f.MoistureContent > RawMoisture {
			t.Fatalf("step %d: moisture out of range: %f", i, f.MoistureContent)
		}
		prev = f.MoistureContent
	}
}

func TestFryTimeInOilResetsOnResubmersion(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})
	rho := oilDensityAt(175)

	for i := 0; i < 100; i++ {
		f.Update(0.016, 175, testSurfaceY, rho, testFloorY)
	}
	if !f.InOil || f.TimeInOil <= 1.0 {
		t.Fatalf("expected submerged fry with time accrued, inOil=%v t=%f", f.InOil, f.TimeInOil)
	}

	// Lift it out of the oil.
	f.Position[1] = testSurfaceY - 50
	f.Velocity = mgl64.Vec2{}
	f.Update(0.016, 175, testSurfaceY, rho, testFloorY)
	if f.InOil {
		t.Fatal("fry above the surface must not be submerged")
	}

	// Drop it back in: the submersion clock starts over.
	f.Position[1] = testSurfaceY + 50
	f.Velocity = mgl64.Vec2{}
	f.Update(0.016, 175, testSurfaceY, rho, testFloorY)
	if !f.InOil {
		t.Fatal("fry below the surface must be submerged")
	}
	if f.TimeInOil > 0.017 {
		t.Errorf("timeInOil = %f, want reset to one step", f.TimeInOil)
	}
	if !f.VigorousBubbling {
		t.Error("fresh submersion must restart the vigorous phase")
	}
}

func TestFryAirborneFreeFall(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 20}, mgl64.Vec2{120, 20})
	f.Update(0.016, 175, testSurfaceY, oilDensityAt(175), testFloorY)

	want := 600.0 * 0.016
	if math.Abs(f.Velocity.Y()-want) > 1e-9 {
		t.Errorf("airborne vy = %f, want %f", f.Velocity.Y(), want)
	}
	if f.InOil {
		t.Error("airborne fry must not be flagged submerged")
	}
}

func TestBubbleGenerationFactorGating(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})

	// Not yet submerged: no bubbles regardless of temperatures.
	if got := f.BubbleGenerationFactor(170); got != 0 {
		t.Errorf("airborne factor = %f, want 0", got)
	}

	rho := oilDensityAt(170)
	for elapsed := 0.0; elapsed < 1.0; elapsed += 0.016 {
		f.Update(0.016, 170, testSurfaceY, rho, testFloorY)
	}
	if 170-f.Temperature < 5 {
		t.Fatalf("fry heated implausibly fast: %f", f.Temperature)
	}
	if got := f.BubbleGenerationFactor(170); got <= 0 {
		t.Errorf("submerged hot-oil factor = %f, want > 0", got)
	}

	// Within 5 °C of the oil: generation stops.
	f.Temperature = 168
	if got := f.BubbleGenerationFactor(170); got != 0 {
		t.Errorf("near-equilibrium factor = %f, want 0", got)
	}

	// Bone dry: generation stops.
	f.Temperature = 120
	f.MoistureContent = MinMoisture - 1e-9
	if got := f.BubbleGenerationFactor(170); got != 0 {
		t.Errorf("dry factor = %f, want 0", got)
	}
}

func TestBubbleGenerationFactorFloor(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})
	f.InOil = true
	f.TimeInOil = 500 // deep into the residual regime
	f.Temperature = 110
	f.CrustThickness = 1.0
	f.MoistureContent = 0.05

	if got := f.BubbleGenerationFactor(175); got < 0.01 {
		t.Errorf("factor = %f, want floored at 0.01 while moisture remains", got)
	}
}

func TestFryCookednessMonotoneUnderCoolingOil(t *testing.T) {
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})
	rho := oilDensityAt(190)

	for i := 0; i < 30000; i++ {
		f.Update(0.016, 190, testSurfaceY, rho, testFloorY)
	}
	cooked := f.Cookedness
	if cooked <= 0 {
		t.Fatal("expected cooking progress at 190°C")
	}

	// Oil cools: fry temperature is clamped down, cookedness must not be.
	for i := 0; i < 1000; i++ {
		f.Update(0.016, 160, testSurfaceY, oilDensityAt(160), testFloorY)
		if f.Cookedness < cooked {
			t.Fatalf("cookedness regressed %f -> %f", cooked, f.Cookedness)
		}
		cooked = f.Cookedness
	}
}

func TestSurfaceBubbleSpawnPointWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewFry(mgl64.Vec2{300, 200}, mgl64.Vec2{120, 20})

	edgeHits := 0
	for i := 0; i < 1000; i++ {
		p := f.SurfaceBubbleSpawnPoint(rng)
		dx := math.Abs(p.X() - 300)
		dy := math.Abs(p.Y() - 200)
		if dx > 60+1e-9 || dy > 10+1e-9 {
			t.Fatalf("spawn point outside fry: (%f, %f)", p.X(), p.Y())
		}
		if dx == 60 || dy == 10 {
			edgeHits++
		}
	}
	// Edge bias is 90%; allow generous slack for the seeded sample.
	if edgeHits < 800 {
		t.Errorf("expected strong edge bias, got %d/1000 edge hits", edgeHits)
	}
}
