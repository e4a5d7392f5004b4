package frying

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxStepDt caps a single frame step; larger deltas (stalled frames,
// debugger pauses) are truncated rather than integrated.
const MaxStepDt = 0.1

const maxBubblesPerFrame = 20

// Layout fixes the scene geometry the simulation runs in: the inner oil
// container bounds and the basket floor. It is owned by the caller
// (the configuration layer), not by the core.
type Layout struct {
	OilLeft      float64
	OilRight     float64
	OilSurfaceY  float64
	OilBottomY   float64
	BasketFloorY float64
}

// Simulation owns all mutable frying state and advances it one
// synchronous Step per frame. Control inputs are latched into the
// simulation between steps and read, never written, during Step.
type Simulation struct {
	Oil     *Oil
	Layout  Layout
	Elapsed float64
	Paused  bool

	fry     *Fry
	bubbles []*Bubble
	rng     *rand.Rand

	dragActive bool
	dragPos    mgl64.Vec2
}

// NewSimulation creates a simulation over the given scene layout with
// the bath at oilTemp. rng drives spawn counts and bubble parameters;
// pass a seeded source for deterministic runs, or nil for a
// time-seeded one.
func NewSimulation(layout Layout, oilTemp float64, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulation{
		Oil:    NewOil(oilTemp),
		Layout: layout,
		rng:    rng,
	}
}

// Fry returns the current fry, or nil when the slot is empty. Callers
// must treat it as read-only between steps.
func (s *Simulation) Fry() *Fry { return s.fry }

// Bubbles returns the live particle collection, read-only between steps.
func (s *Simulation) Bubbles() []*Bubble { return s.bubbles }

func (s *Simulation) BubbleCount() int { return len(s.bubbles) }

// HasFry reports whether the single fry slot is occupied.
func (s *Simulation) HasFry() bool { return s.fry != nil }

// NudgeTargetTemperature shifts the oil target by delta °C, clamped to
// the operating range.
func (s *Simulation) NudgeTargetTemperature(delta float64) {
	s.Oil.NudgeTarget(delta)
}

func (s *Simulation) TogglePause() { s.Paused = !s.Paused }

// SpawnFry fills the single fry slot with a raw fry dropping toward the
// oil. No-op if a fry already exists.
func (s *Simulation) SpawnFry(position, size mgl64.Vec2) {
	if s.fry != nil {
		return
	}
	f := NewFry(position, size)
	f.Velocity = mgl64.Vec2{0, 100.0}
	s.fry = f
}

// RemoveFry empties the fry slot. No-op if already empty.
func (s *Simulation) RemoveFry() {
	s.fry = nil
	s.dragActive = false
}

// SetDragOverride pins the fry to position each step until cleared;
// the override takes precedence over physics for that frame only.
func (s *Simulation) SetDragOverride(position mgl64.Vec2) {
	s.dragActive = true
	s.dragPos = position
}

func (s *Simulation) ClearDragOverride() { s.dragActive = false }

func (s *Simulation) Dragging() bool { return s.dragActive }

// Reset clears the particle collection and the fry slot and zeroes the
// elapsed clock. The oil's thermal state is left untouched.
func (s *Simulation) Reset() {
	s.fry = nil
	s.bubbles = nil
	s.dragActive = false
	s.Elapsed = 0
}

// Step advances the whole simulation by dt seconds (clamped to
// [0, MaxStepDt]). A paused simulation skips the step entirely.
func (s *Simulation) Step(dt float64) {
	if s.Paused {
		return
	}
	dt = clamp(dt, 0, MaxStepDt)
	s.Elapsed += dt

	s.Oil.Step()
	viscosity := s.Oil.Viscosity()

	if s.fry != nil {
		s.fry.Update(dt, s.Oil.Temperature, s.Layout.OilSurfaceY, s.Oil.Density(), s.Layout.BasketFloorY)
		if s.dragActive {
			s.fry.Position = s.dragPos
			s.fry.Velocity = mgl64.Vec2{}
		}
		s.spawnBubbles()
	}

	for _, b := range s.bubbles {
		b.Update(dt, viscosity, s.Elapsed)
		b.Position[0] = clamp(b.Position.X(), s.Layout.OilLeft, s.Layout.OilRight)
	}
	s.removeDead()
}

// spawnBubbles maps the fry's generation factor to a jittered target
// count. Very low targets are randomly suppressed to zero so a nearly
// spent fry bubbles sporadically instead of trickling steadily.
func (s *Simulation) spawnBubbles() {
	factor := s.fry.BubbleGenerationFactor(s.Oil.Temperature)
	if factor <= 0 {
		return
	}

	target := mapRange(factor, 0, 1, 0.5, maxBubblesPerFrame)
	n := int(uniform(s.rng, math.Max(0, target-3.0), target+3.0))
	if n < 0 {
		n = 0
	}
	if n > maxBubblesPerFrame {
		n = maxBubblesPerFrame
	}
	if n < 2 && s.rng.Float64() > factor*8.0 {
		n = 0
	}

	for i := 0; i < n; i++ {
		pos := s.fry.SurfaceBubbleSpawnPoint(s.rng)
		pos[1] = clamp(pos.Y(), s.Layout.OilSurfaceY+5, s.Layout.OilBottomY-5)
		depth := pos.Y() - s.Layout.OilSurfaceY
		s.bubbles = append(s.bubbles, NewBubble(pos, s.Oil.Temperature, depth, s.Layout.OilSurfaceY, s.rng))
	}
}

func (s *Simulation) removeDead() {
	alive := s.bubbles[:0]
	for _, b := range s.bubbles {
		if !b.Dead {
			alive = append(alive, b)
		}
	}
	s.bubbles = alive
}
