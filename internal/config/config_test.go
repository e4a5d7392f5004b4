package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Oil.Temperature != DefaultOilTemp {
		t.Errorf("expected oil at %f, got %f", DefaultOilTemp, cfg.Oil.Temperature)
	}
}

func TestSceneLayout(t *testing.T) {
	cfg := DefaultConfig()
	scene := cfg.Scene()
	layout := scene.Layout()

	if layout.OilLeft >= layout.OilRight {
		t.Error("oil container has non-positive width")
	}
	if layout.OilSurfaceY >= layout.OilBottomY {
		t.Error("oil surface must sit above the bottom")
	}
	if layout.BasketFloorY >= layout.OilBottomY || layout.BasketFloorY <= layout.OilSurfaceY {
		t.Error("basket floor must sit inside the oil band")
	}
	if cfg.DropY() >= layout.OilSurfaceY {
		t.Error("fry must drop from above the surface")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("crisp")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Oil.Target != 185 {
		t.Errorf("expected target 185, got %f", cfg.Oil.Target)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frysim.yaml")

	cfg := DefaultConfig()
	cfg.Oil.Target = 188
	cfg.Seed = 42
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Oil.Target != 188 {
		t.Errorf("expected target 188, got %f", loaded.Oil.Target)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/frysim.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
