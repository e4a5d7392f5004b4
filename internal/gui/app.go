// Package gui is the raylib front end for the fryer simulation.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/erichobson/deep-frying-simulation/internal/audio"
	"github.com/erichobson/deep-frying-simulation/internal/config"
	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

var (
	ColBg      = rl.NewColor(30, 30, 35, 255)
	ColFryer   = rl.NewColor(80, 80, 90, 255)
	ColBasket  = rl.NewColor(120, 120, 130, 180)
	ColText    = rl.NewColor(220, 220, 220, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
)

// grabRadius is how close a click must land to the fry center to start
// a drag.
const grabRadius = 60.0

type App struct {
	Cfg   *config.Config
	Scene config.Scene
	Sim   *frying.Simulation

	Audio    *audio.Processor
	dragging bool
}

func NewApp(cfg *config.Config, sim *frying.Simulation) *App {
	proc := audio.NewProcessor()
	if err := proc.Start(); err != nil {
		// Silent run; the simulation does not depend on the stream.
		proc = nil
	}

	return &App{
		Cfg:   cfg,
		Scene: cfg.Scene(),
		Sim:   sim,
		Audio: proc,
	}
}

func Run(cfg *config.Config, sim *frying.Simulation) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "frysim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(rl.KeyQ)

	app := NewApp(cfg, sim)
	defer func() {
		if app.Audio != nil {
			app.Audio.Stop()
		}
	}()

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func (a *App) Update() {
	a.handleInput()

	a.Sim.Step(float64(rl.GetFrameTime()))

	if a.Audio != nil {
		a.Audio.SetIntensity(float64(a.Sim.BubbleCount()) / 20.0)
	}
}

func (a *App) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		if a.Sim.HasFry() {
			a.Sim.RemoveFry()
		} else {
			a.Sim.SpawnFry(
				mgl64.Vec2{a.Cfg.DropX(), a.Cfg.DropY()},
				mgl64.Vec2{a.Cfg.Fry.Width, a.Cfg.Fry.Height},
			)
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Sim.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		a.Sim.NudgeTargetTemperature(5)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		a.Sim.NudgeTargetTemperature(-5)
	}

	mouse := rl.GetMousePosition()
	cursor := mgl64.Vec2{float64(mouse.X), float64(mouse.Y)}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.Sim.HasFry() {
		if cursor.Sub(a.Sim.Fry().Position).Len() < grabRadius {
			a.dragging = true
		}
	}
	if a.dragging {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			a.Sim.SetDragOverride(cursor)
		} else {
			a.Sim.ClearDragOverride()
			a.dragging = false
		}
	}
}
