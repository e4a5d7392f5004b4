package config

// Presets are named frying scenarios for the headless runner and the
// front ends.
var Presets = map[string]*Config{
	"blanch": {
		Dt: DefaultDt, Duration: 180, FPS: DefaultFPS,
		Screen: ScreenConfig{Width: DefaultScreenW, Height: DefaultScreenH},
		Oil:    OilConfig{Temperature: 160, Target: 160},
		Fry:    FryConfig{Width: DefaultFryWidth, Height: DefaultFryHeight, DropOffsetY: DefaultDropOffsetY},
	},
	"standard": {
		Dt: DefaultDt, Duration: 300, FPS: DefaultFPS,
		Screen: ScreenConfig{Width: DefaultScreenW, Height: DefaultScreenH},
		Oil:    OilConfig{Temperature: 175, Target: 175},
		Fry:    FryConfig{Width: DefaultFryWidth, Height: DefaultFryHeight, DropOffsetY: DefaultDropOffsetY},
	},
	"crisp": {
		Dt: DefaultDt, Duration: 240, FPS: DefaultFPS,
		Screen: ScreenConfig{Width: DefaultScreenW, Height: DefaultScreenH},
		Oil:    OilConfig{Temperature: 175, Target: 185},
		Fry:    FryConfig{Width: DefaultFryWidth, Height: DefaultFryHeight, DropOffsetY: DefaultDropOffsetY},
	},
	"scorch": {
		Dt: DefaultDt, Duration: 600, FPS: DefaultFPS,
		Screen: ScreenConfig{Width: DefaultScreenW, Height: DefaultScreenH},
		Oil:    OilConfig{Temperature: 190, Target: 190},
		Fry:    FryConfig{Width: 60, Height: 14, DropOffsetY: DefaultDropOffsetY},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
