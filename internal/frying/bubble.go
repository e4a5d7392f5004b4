package frying

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// BubbleType classifies a vapor bubble's dynamics from its
// depth-to-radius ratio at spawn.
type BubbleType int

const (
	// BubbleExplosion pops almost immediately: spawned within half a
	// radius of the surface (h/R < 0.5).
	BubbleExplosion BubbleType = iota
	// BubbleElongated stretches as it races upward (0.5 ≤ h/R < 1.5).
	BubbleElongated
	// BubbleOscillating rises slowly from depth, pulsing as it goes
	// (h/R ≥ 1.5).
	BubbleOscillating
)

func (t BubbleType) String() string {
	switch t {
	case BubbleExplosion:
		return "explosion"
	case BubbleElongated:
		return "elongated"
	case BubbleOscillating:
		return "oscillating"
	default:
		return "unknown"
	}
}

// popLifeBudget is the remaining life cap applied when a bubble reaches
// the surface; presentation reuses it as the pop-progress denominator.
const popLifeBudget = 0.15

// surfaceContactBand is how close to the surface counts as arrival.
const surfaceContactBand = 5.0

// Bubble is a transient vapor particle. It reads ambient oil properties
// passed into Update and holds no reference back to the bath.
type Bubble struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2

	Type      BubbleType
	StartSize float64
	EndSize   float64
	Size      float64
	Lifespan  float64 // seconds
	Life      float64 // (0,1], counts down
	Dead      bool

	ReachedSurface bool
	InitialDepth   float64
	Trail          []mgl64.Vec2

	accel            mgl64.Vec2
	oscillation      float64
	oscillationSpeed float64
	wobblePhase      float64
	maxTrailLength   int
	oilSurfaceY      float64
	baseColor        Color
	alpha            float64
}

// NewBubble spawns a bubble at pos, classifying its type from the
// depth-to-radius ratio h/R with an estimated radius drawn from
// [2.5, 7.0]. Display intensity is derived once from the oil temperature
// at spawn.
func NewBubble(pos mgl64.Vec2, oilTemp, depthBelowSurface, oilSurfaceY float64, rng *rand.Rand) *Bubble {
	b := &Bubble{
		Position:     pos,
		InitialDepth: depthBelowSurface,
		oilSurfaceY:  oilSurfaceY,
		Life:         1.0,
		wobblePhase:  uniform(rng, 0, 2*math.Pi),
	}

	radius := uniform(rng, 2.5, 7.0)
	ratio := depthBelowSurface / radius
	switch {
	case ratio < 0.5:
		b.Type = BubbleExplosion
	case ratio < 1.5:
		b.Type = BubbleElongated
	default:
		b.Type = BubbleOscillating
	}

	switch b.Type {
	case BubbleExplosion:
		b.Velocity = mgl64.Vec2{uniform(rng, -70, 70), uniform(rng, -200, -140)}
		b.StartSize = uniform(rng, 3, 7)
		b.EndSize = b.StartSize * uniform(rng, 0.15, 0.35)
		b.Lifespan = uniform(rng, 0.4, 0.9)
		b.maxTrailLength = 3
	case BubbleElongated:
		b.Velocity = mgl64.Vec2{uniform(rng, -20, 20), uniform(rng, -220, -150)}
		b.StartSize = uniform(rng, 3, 6)
		b.EndSize = b.StartSize * uniform(rng, 1.8, 2.8)
		b.Lifespan = uniform(rng, 0.7, 1.4)
		b.maxTrailLength = 6
	case BubbleOscillating:
		b.Velocity = mgl64.Vec2{uniform(rng, -25, 25), uniform(rng, -130, -80)}
		b.StartSize = uniform(rng, 6, 14)
		b.EndSize = b.StartSize * uniform(rng, 0.9, 1.3)
		b.Lifespan = uniform(rng, 1.2, 2.5)
		b.oscillationSpeed = uniform(rng, 14, 30)
		b.maxTrailLength = 8
	}

	b.Size = b.StartSize
	b.Trail = make([]mgl64.Vec2, 0, b.maxTrailLength)

	intensity := mapRange(oilTemp, MinOilTemp, MaxOilTemp, 200, 255)
	b.baseColor = Color{intensity, intensity - 5, intensity - 30, 200}
	b.alpha = 200
	return b
}

// Update advances the bubble by dt seconds against the given oil
// viscosity. now is the orchestrator's elapsed-time clock, used as the
// wobble time base. Forces are re-applied every frame; acceleration is
// zeroed at the end of the step.
func (b *Bubble) Update(dt, oilViscosity, now float64) {
	b.Life -= dt / b.Lifespan
	if b.Life <= 0 {
		b.Dead = true
		return
	}

	if b.Position.Y() <= b.oilSurfaceY+surfaceContactBand && !b.ReachedSurface {
		b.ReachedSurface = true
		b.Life = math.Min(b.Life, popLifeBudget)
	}

	// Viscous drag, F = −μ·c·v.
	b.accel = b.accel.Add(b.Velocity.Mul(-oilViscosity * 20.0))

	// Horizontal wobble, phase-offset per particle.
	b.accel[0] += math.Sin(b.wobblePhase+now*8.0) * 15.0 * dt

	// Semi-implicit Euler.
	b.Velocity = b.Velocity.Add(b.accel.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	// Quadratic ease from start to end size.
	lifeRatio := 1.0 - b.Life
	b.Size = lerp(b.StartSize, b.EndSize, lifeRatio*lifeRatio)
	if b.Type == BubbleOscillating {
		b.oscillation += b.oscillationSpeed * dt
		b.Size += math.Sin(b.oscillation) * (b.StartSize * 0.22)
	}

	b.recordTrail()

	if b.ReachedSurface {
		pop := b.PopProgress()
		b.alpha = mapRange(pop, 0, 1, 200, 0)
		b.Size *= 1.0 + pop*0.5
	} else {
		b.alpha = mapRange(b.Life, 0, 1, 60, 200)
	}

	b.accel = mgl64.Vec2{}
}

// recordTrail appends the current position once it has moved more than
// 3 units from the last recorded point, evicting the oldest entry when
// the per-type capacity is exceeded.
func (b *Bubble) recordTrail() {
	if len(b.Trail) > 0 && b.Position.Sub(b.Trail[len(b.Trail)-1]).Len() <= 3.0 {
		return
	}
	b.Trail = append(b.Trail, b.Position)
	if len(b.Trail) > b.maxTrailLength {
		b.Trail = b.Trail[1:]
	}
}

// PopProgress reports how far through the pop sequence the bubble is:
// 0 before surface arrival, rising to 1 as the capped life runs out.
func (b *Bubble) PopProgress() float64 {
	if !b.ReachedSurface {
		return 0
	}
	return clamp(1.0-b.Life/popLifeBudget, 0, 1)
}

// Color is the bubble's current display color including the life or pop
// alpha fade.
func (b *Bubble) Color() Color {
	return b.baseColor.WithAlpha(b.alpha)
}
