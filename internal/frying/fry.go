package frying

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Raw potato state and model bounds.
const (
	RawMoisture    = 0.79 // fraction
	MinMoisture    = 0.01
	RawTemperature = 20.0 // °C
	RawDensity     = 1.08 // g/cm³, dense water-filled cells
	FriedDensity   = 0.60 // g/cm³, porous structure with air voids
)

// vigorousPhaseDuration is the window after submersion with elevated
// boiling, heat transfer and bubble generation.
const vigorousPhaseDuration = 20.0

// Fry models the thermodynamic and kinematic state of a single potato
// fry. Ambient oil properties are passed into Update read-only; the fry
// never holds a reference to the bath.
//
// Heat transfer follows Newton's law with a phase-dependent coefficient,
// density interpolates linearly from raw to fried as moisture is lost,
// buoyancy is an Archimedes proxy with linear drag, and cookedness
// follows quadratic Maillard kinetics.
type Fry struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Size     mgl64.Vec2

	MoistureContent float64 // [0.01, 0.79]
	Temperature     float64 // °C, [20, oil temperature]
	Cookedness      float64 // [0, 1], non-decreasing
	CrustThickness  float64 // [0, 1], non-decreasing
	Density         float64 // g/cm³, [0.60, 1.08], non-increasing
	TimeInOil       float64 // seconds since last submersion

	InOil            bool
	VigorousBubbling bool
}

// NewFry returns a raw potato fry at position with the given extents.
func NewFry(position, size mgl64.Vec2) *Fry {
	return &Fry{
		Position:        position,
		Size:            size,
		MoistureContent: RawMoisture,
		Temperature:     RawTemperature,
		Density:         RawDensity,
	}
}

// Update advances the fry by dt seconds. The y axis points down, so
// positions below the oil surface have y > oilSurfaceY.
func (f *Fry) Update(dt, oilTemp, oilSurfaceY, oilDensity, basketFloorY float64) {
	if f.Position.Y() > oilSurfaceY {
		if !f.InOil {
			f.InOil = true
			f.TimeInOil = 0
		}
		f.TimeInOil += dt
		f.VigorousBubbling = f.TimeInOil < vigorousPhaseDuration

		f.evaporate(dt)
		f.updateDensity()
		f.formCrust(dt)
		f.transferHeat(dt, oilTemp)
		f.cook()
		f.applyBuoyancy(dt, oilSurfaceY, oilDensity)
		f.collideBasket(basketFloorY)
	} else {
		f.InOil = false
		f.Velocity[1] += 600.0 * dt // free fall
	}

	f.Position = f.Position.Add(f.Velocity.Mul(dt))
}

// evaporate removes moisture above 100 °C. The base rate drops after the
// vigorous phase as the surface dries, and the crust acts as a barrier
// reducing escape by up to 30%.
func (f *Fry) evaporate(dt float64) {
	if f.Temperature <= 100.0 {
		return
	}
	base := 0.015
	if f.TimeInOil < vigorousPhaseDuration {
		base = 0.02
	}
	rate := base * dt * (f.Temperature - 100.0) / 75.0
	rate *= 1.0 - 0.3*f.CrustThickness
	f.MoistureContent = clamp(f.MoistureContent-rate, MinMoisture, RawMoisture)
}

// updateDensity interpolates between raw and fried density from the
// fractional moisture loss: water leaves, pores fill with vapor and oil.
func (f *Fry) updateDensity() {
	progress := 1.0 - f.MoistureContent/RawMoisture
	f.Density = clamp(RawDensity-(RawDensity-FriedDensity)*progress, FriedDensity, RawDensity)
}

// formCrust accumulates surface hardening with a two-phase saturating
// rate: rapid formation for the first 40 s, then stabilization.
func (f *Fry) formCrust(dt float64) {
	coeff := 0.010
	if f.TimeInOil < 40.0 {
		coeff = 0.035
	}
	f.CrustThickness = clamp(f.CrustThickness+coeff*dt*(1.0-f.CrustThickness), 0, 1)
}

// transferHeat applies Newton's law of cooling,
// dT/dt = h_eff·(T_oil − T).
func (f *Fry) transferHeat(dt, oilTemp float64) {
	f.Temperature += (oilTemp - f.Temperature) * f.HeatTransferCoefficient() * dt
	f.Temperature = clamp(f.Temperature, RawTemperature, oilTemp)
}

// HeatTransferCoefficient returns h_eff: a base coefficient boosted up to
// 5x by bubble agitation during the vigorous phase (decaying with a 20 s
// time constant) and reduced up to 50% by the crust thermal barrier.
func (f *Fry) HeatTransferCoefficient() float64 {
	coeff := 0.025
	if f.VigorousBubbling {
		coeff *= 1.0 + 4.0*math.Exp(-f.TimeInOil/vigorousPhaseDuration)
	}
	return coeff * (1.0 - 0.5*f.CrustThickness)
}

// cook advances Maillard cookedness: zero below 100 °C, quadratic ramp
// ((T−100)/70)² up to 170 °C, saturated above. Never decreases.
func (f *Fry) cook() {
	switch {
	case f.Temperature >= 170.0:
		f.Cookedness = 1.0
	case f.Temperature > 100.0:
		p := (f.Temperature - 100.0) / 70.0
		f.Cookedness = math.Max(f.Cookedness, clamp(p*p, 0, 1))
	}
}

// applyBuoyancy integrates the Archimedes proxy with linear drag, clamps
// to terminal speed, and settles a buoyant fry just under the surface
// instead of letting it breach.
func (f *Fry) applyBuoyancy(dt, oilSurfaceY, oilDensity float64) {
	accel := (f.Density-oilDensity)*800.0 - 3.0*f.Velocity.Y()
	f.Velocity[1] += accel * dt
	f.Velocity[1] = clamp(f.Velocity[1], -150.0, 150.0)

	if f.Density < oilDensity && f.Position.Y() < oilSurfaceY+20.0 {
		f.Velocity[1] *= 0.85
		if f.Position.Y() < oilSurfaceY+5.0 {
			f.Position[1] = oilSurfaceY + 5.0
			f.Velocity[1] = math.Max(0, f.Velocity.Y())
		}
	}
}

// collideBasket reflects the fry off the basket floor with 30%
// restitution.
func (f *Fry) collideBasket(basketFloorY float64) {
	floor := basketFloorY - f.Size.Y()/2.0
	if f.Position.Y() > floor {
		f.Position[1] = floor
		f.Velocity[1] = -f.Velocity.Y() * 0.3
	}
}

// BubbleGenerationFactor returns the normalized vapor release rate in
// [0,1]. Zero when not submerged, when the fry is dry, or when the oil
// is within 5 °C of the fry. Otherwise the product of a moisture factor,
// a temperature-difference factor and a time-decay factor, damped up to
// 50% by the crust.
func (f *Fry) BubbleGenerationFactor(oilTemp float64) float64 {
	if !f.InOil {
		return 0
	}
	if f.MoistureContent < MinMoisture {
		return 0
	}
	tempDiff := oilTemp - f.Temperature
	if tempDiff < 5.0 {
		return 0
	}

	// Exponential decay through the vigorous phase (8 s time constant),
	// linear taper to 90 s, then a flat residual simmer.
	var timeFactor float64
	switch {
	case f.TimeInOil < vigorousPhaseDuration:
		timeFactor = math.Exp(-f.TimeInOil / 8.0)
	case f.TimeInOil < 90.0:
		timeFactor = mapRange(f.TimeInOil, vigorousPhaseDuration, 90.0, 1.0, 0.0)
	default:
		timeFactor = 0.02
	}

	// Quadratic falloff once moisture drops below 10%.
	moistureFactor := 1.0
	if f.MoistureContent <= 0.1 {
		if f.MoistureContent > MinMoisture {
			ratio := f.MoistureContent / 0.1
			moistureFactor = ratio * ratio
		} else {
			moistureFactor = 0.01
		}
	}

	tempFactor := mapRange(tempDiff, 5.0, 100.0, 0.1, 1.0)

	factor := moistureFactor * tempFactor * timeFactor
	factor *= 1.0 - 0.5*f.CrustThickness

	if f.MoistureContent > MinMoisture {
		factor = math.Max(factor, 0.01)
	}
	return factor
}

// SurfaceBubbleSpawnPoint picks a nucleation site on the fry, biased 90%
// of the time toward the edges where surface imperfections sit.
func (f *Fry) SurfaceBubbleSpawnPoint(rng *rand.Rand) mgl64.Vec2 {
	hw, hh := f.Size.X()/2.0, f.Size.Y()/2.0
	dx := uniform(rng, -hw, hw)
	dy := uniform(rng, -hh, hh)

	if rng.Float64() < 0.90 {
		if rng.Float64() < 0.5 {
			dy = hh
			if rng.Float64() < 0.5 {
				dy = -hh
			}
		} else {
			dx = hw
			if rng.Float64() < 0.5 {
				dx = -hw
			}
		}
	}
	return mgl64.Vec2{f.Position.X() + dx, f.Position.Y() + dy}
}

// Color is the cooking progression tint for presentation.
func (f *Fry) Color() Color {
	return CookingColor(f.Cookedness)
}

// Floating reports whether the fry is buoyant in oil of the given
// density.
func (f *Fry) Floating(oilDensity float64) bool {
	return f.Density < oilDensity
}
