package frying

// Color is a display value derived from simulation state. Channels are
// kept as float64 in [0,255] so ramps interpolate without rounding drift;
// renderers convert at the edge.
type Color struct {
	R, G, B, A float64
}

func (c Color) Lerp(o Color, t float64) Color {
	t = clamp(t, 0, 1)
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		A: lerp(c.A, o.A, t),
	}
}

func (c Color) WithAlpha(a float64) Color {
	c.A = clamp(a, 0, 255)
	return c
}

// fry color ramp, raw through dark golden
var (
	fryRaw        = Color{235, 220, 175, 255}
	fryVeryLight  = Color{245, 230, 160, 255}
	fryLight      = Color{245, 225, 140, 255}
	fryMedium     = Color{240, 205, 120, 255}
	fryGolden     = Color{220, 180, 100, 255}
	fryDarkGolden = Color{190, 150, 80, 255}
)

// CookingColor maps cookedness to the raw -> golden brown progression.
func CookingColor(cookedness float64) Color {
	c := clamp(cookedness, 0, 1)
	switch {
	case c < 0.25:
		return fryRaw.Lerp(fryVeryLight, c/0.25)
	case c < 0.5:
		return fryVeryLight.Lerp(fryLight, (c-0.25)/0.25)
	case c < 0.65:
		return fryLight.Lerp(fryMedium, (c-0.5)/0.15)
	case c < 0.85:
		return fryMedium.Lerp(fryGolden, (c-0.65)/0.2)
	default:
		return fryGolden.Lerp(fryDarkGolden, (c-0.85)/0.15)
	}
}

var (
	oilCool   = Color{210, 170, 70, 180}
	oilMedium = Color{230, 185, 85, 190}
	oilHot    = Color{245, 200, 100, 200}
)

// OilColor maps oil temperature to the cool -> hot tint of the bath.
func OilColor(temperature float64) Color {
	t := mapRange(temperature, MinOilTemp, MaxOilTemp, 0, 1)
	if t < 0.5 {
		return oilCool.Lerp(oilMedium, t/0.5)
	}
	return oilMedium.Lerp(oilHot, (t-0.5)/0.5)
}
