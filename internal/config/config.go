package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

const (
	DefaultDt          = 0.016
	DefaultDuration    = 300.0
	DefaultFPS         = 60
	DefaultScreenW     = 1024
	DefaultScreenH     = 768
	DefaultOilTemp     = 175.0
	DefaultFryWidth    = 120.0
	DefaultFryHeight   = 20.0
	DefaultDropOffsetY = 80.0
)

type Config struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	FPS      int     `yaml:"fps"`
	Seed     int64   `yaml:"seed"`

	Screen ScreenConfig `yaml:"screen"`
	Oil    OilConfig    `yaml:"oil"`
	Fry    FryConfig    `yaml:"fry"`
}

type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type OilConfig struct {
	Temperature float64 `yaml:"temperature"`
	Target      float64 `yaml:"target"`
}

type FryConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// DropOffsetY is how far above the oil surface the fry is dropped.
	DropOffsetY float64 `yaml:"drop_offset_y"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
		Screen:   ScreenConfig{Width: DefaultScreenW, Height: DefaultScreenH},
		Oil:      OilConfig{Temperature: DefaultOilTemp, Target: DefaultOilTemp},
		Fry:      FryConfig{Width: DefaultFryWidth, Height: DefaultFryHeight, DropOffsetY: DefaultDropOffsetY},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scene is the fryer geometry derived from the screen dimensions. The
// simulation core only sees the Layout slice of it; the front ends use
// the rest for drawing.
type Scene struct {
	FryerLeft, FryerRight float64
	FryerTop              float64
	OilTop, OilBottom     float64
	BasketLeft            float64
	BasketRight           float64
	BasketTop             float64
	BasketBottom          float64
}

// Scene positions the fryer in the middle half of the screen with the
// oil band below a fixed rim.
func (c *Config) Scene() Scene {
	w, h := c.Screen.Width, c.Screen.Height
	left := w/2 - w/4
	right := w/2 + w/4
	top := 280.0
	oilBottom := top + h*0.35

	return Scene{
		FryerLeft:    left,
		FryerRight:   right,
		FryerTop:     top,
		OilTop:       top + 35,
		OilBottom:    oilBottom,
		BasketLeft:   left + 40,
		BasketRight:  right - 40,
		BasketTop:    top + 65,
		BasketBottom: oilBottom - 40,
	}
}

// Layout returns the core-facing slice of the scene geometry.
func (s Scene) Layout() frying.Layout {
	return frying.Layout{
		OilLeft:      s.FryerLeft + 15,
		OilRight:     s.FryerRight - 15,
		OilSurfaceY:  s.OilTop,
		OilBottomY:   s.OilBottom,
		BasketFloorY: s.BasketBottom,
	}
}

// DropX is the horizontal drop point for a new fry.
func (c *Config) DropX() float64 { return c.Screen.Width / 2 }

// DropY is the vertical drop point, above the oil surface.
func (c *Config) DropY() float64 { return c.Scene().OilTop - c.Fry.DropOffsetY }
