package frying

import "math"

// Oil temperature operating range, °C.
const (
	MinOilTemp = 160.0
	MaxOilTemp = 190.0
)

// Viscosity clamp, Pa·s-equivalent.
const (
	MinViscosity = 0.003
	MaxViscosity = 0.030
)

// Oil models the hot oil bath. Temperature chases a target with
// exponential smoothing; viscosity and density are pure functions of
// temperature and must be re-derived after every Step.
type Oil struct {
	Temperature float64 // °C, [160,190]
	Target      float64 // °C, [160,190]
}

func NewOil(temperature float64) *Oil {
	t := clamp(temperature, MinOilTemp, MaxOilTemp)
	return &Oil{Temperature: t, Target: t}
}

// SetTarget clamps and stores the target temperature. The bath only
// moves toward it on subsequent Steps.
func (o *Oil) SetTarget(t float64) {
	o.Target = clamp(t, MinOilTemp, MaxOilTemp)
}

// NudgeTarget shifts the target by delta °C.
func (o *Oil) NudgeTarget(delta float64) {
	o.SetTarget(o.Target + delta)
}

// Step advances the bath temperature toward the target. The 0.05 gain is
// per frame, not per second; the downstream constants are tuned around
// that cadence, so Step takes no dt.
func (o *Oil) Step() {
	o.Temperature += (o.Target - o.Temperature) * 0.05
	o.Temperature = clamp(o.Temperature, MinOilTemp, MaxOilTemp)
}

// Viscosity returns the Arrhenius viscosity μ = A·exp(Ea/R / T_K) with
// A = 1e-5 and Ea/R = 2500 K, clamped to [0.003, 0.030].
func (o *Oil) Viscosity() float64 {
	tk := o.Temperature + 273.15
	mu := 1e-5 * math.Exp(2500.0/tk)
	return clamp(mu, MinViscosity, MaxViscosity)
}

// Density returns the oil density in g/cm³ by linear thermal expansion,
// ρ(T) = 0.915 − 0.00064·(T − 20). Unclamped: over the operating range
// it stays near 0.806–0.825 by construction.
func (o *Oil) Density() float64 {
	return 0.915 - 0.00064*(o.Temperature-20.0)
}

// Color is the temperature tint of the bath for presentation.
func (o *Oil) Color() Color {
	return OilColor(o.Temperature)
}
