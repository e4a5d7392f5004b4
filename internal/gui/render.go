package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

func toRl(c frying.Color) rl.Color {
	return rl.NewColor(uint8(c.R), uint8(c.G), uint8(c.B), uint8(c.A))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawFryer()
	a.drawBubbles()
	a.drawFry()
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawFryer() {
	s := a.Scene

	// Walls and base.
	rl.DrawRectangle(int32(s.FryerLeft)-12, int32(s.FryerTop), 12, int32(s.OilBottom-s.FryerTop)+12, ColFryer)
	rl.DrawRectangle(int32(s.FryerRight), int32(s.FryerTop), 12, int32(s.OilBottom-s.FryerTop)+12, ColFryer)
	rl.DrawRectangle(int32(s.FryerLeft)-12, int32(s.OilBottom), int32(s.FryerRight-s.FryerLeft)+24, 12, ColFryer)

	// Oil body, darker toward the bottom.
	oil := toRl(a.Sim.Oil.Color())
	deep := rl.NewColor(uint8(float64(oil.R)*0.6), uint8(float64(oil.G)*0.6), uint8(float64(oil.B)*0.6), oil.A)
	rl.DrawRectangleGradientV(
		int32(s.FryerLeft), int32(s.OilTop),
		int32(s.FryerRight-s.FryerLeft), int32(s.OilBottom-s.OilTop),
		oil, deep)

	// Surface sheen.
	rl.DrawRectangle(int32(s.FryerLeft), int32(s.OilTop), int32(s.FryerRight-s.FryerLeft), 3,
		rl.NewColor(255, 240, 200, 70))

	// Basket wireframe.
	rl.DrawRectangleLines(int32(s.BasketLeft), int32(s.BasketTop),
		int32(s.BasketRight-s.BasketLeft), int32(s.BasketBottom-s.BasketTop), ColBasket)
	for x := s.BasketLeft + 20; x < s.BasketRight; x += 20 {
		rl.DrawLine(int32(x), int32(s.BasketTop), int32(x), int32(s.BasketBottom), rl.ColorAlpha(ColBasket, 0.3))
	}
}

func (a *App) drawBubbles() {
	for _, b := range a.Sim.Bubbles() {
		col := toRl(b.Color())

		for i, pt := range b.Trail {
			fade := float32(i+1) / float32(len(b.Trail)+1)
			rl.DrawCircle(int32(pt.X()), int32(pt.Y()), float32(b.Size)*0.3*fade, rl.ColorAlpha(col, fade*0.4))
		}

		if b.ReachedSurface {
			// Pop ring expanding as the bubble drains its last moments.
			ring := float32(b.Size) * (1 + 2*float32(b.PopProgress()))
			rl.DrawCircleLines(int32(b.Position.X()), int32(b.Position.Y()), ring, col)
			continue
		}

		rl.DrawCircle(int32(b.Position.X()), int32(b.Position.Y()), float32(b.Size), col)
		rl.DrawCircle(int32(b.Position.X()-b.Size*0.25), int32(b.Position.Y()-b.Size*0.25),
			float32(b.Size)*0.3, rl.ColorAlpha(rl.White, 0.35))
	}
}

func (a *App) drawFry() {
	if !a.Sim.HasFry() {
		return
	}
	f := a.Sim.Fry()

	x := int32(f.Position.X() - f.Size.X()/2)
	y := int32(f.Position.Y() - f.Size.Y()/2)
	w, h := int32(f.Size.X()), int32(f.Size.Y())

	rl.DrawRectangle(x, y, w, h, toRl(f.Color()))

	// Crust darkens and thickens the outline.
	if f.CrustThickness > 0.05 {
		crust := rl.NewColor(120, 80, 30, uint8(255*f.CrustThickness))
		thickness := int32(1 + f.CrustThickness*3)
		for i := int32(0); i < thickness; i++ {
			rl.DrawRectangleLines(x-i, y-i, w+2*i, h+2*i, crust)
		}
	}

	if a.dragging {
		rl.DrawCircleLines(int32(f.Position.X()), int32(f.Position.Y()), grabRadius, rl.ColorAlpha(rl.White, 0.25))
	}
}

func (a *App) drawHUD() {
	s := a.Sim

	heat := ""
	if s.Oil.Target > s.Oil.Temperature+0.1 {
		heat = " ^"
	} else if s.Oil.Target < s.Oil.Temperature-0.1 {
		heat = " v"
	}
	rl.DrawText(fmt.Sprintf("oil %.1f C%s", s.Oil.Temperature, heat), 20, 20, 20, ColText)
	rl.DrawText(fmt.Sprintf("t %.1fs   bubbles %d", s.Elapsed, s.BubbleCount()), 20, 46, 16, ColTextDim)

	if s.HasFry() {
		f := s.Fry()
		state := "SINK"
		if f.Floating(s.Oil.Density()) {
			state = "FLOAT"
		}
		cooked := fmt.Sprintf("%.0f%%", f.Cookedness*100)
		if f.Cookedness >= 0.999 {
			cooked = "DONE"
		}
		rl.DrawText(fmt.Sprintf("core %.0f C   h2o %.0f%%   crust %.0f%%   %s   %s",
			f.Temperature, f.MoistureContent*100, f.CrustThickness*100, state, cooked),
			20, 68, 16, ColTextDim)
	} else {
		rl.DrawText("space to drop a fry", 20, 68, 16, ColTextDim)
	}

	if s.Paused {
		rl.DrawText("PAUSED", int32(a.Cfg.Screen.Width)/2-40, 20, 24, rl.Yellow)
	}

	rl.DrawText("space drop/lift   up/down heat   drag to move   p pause   r reset   q quit",
		20, int32(a.Cfg.Screen.Height)-30, 14, ColTextDim)
}
