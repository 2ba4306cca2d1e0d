package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg LanderConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLanderConfig()) {
		t.Errorf("embedded defaults drifted from DefaultLanderConfig():\n%+v\n%+v", cfg, DefaultLanderConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadLanderCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	cfg := DefaultLanderConfig()
	cfg.Levels = []LevelConfig{{PadWidth: 40, PadXFactor: 0.3, InitialFuel: 10, MaxLandingSpeed: 5}}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := LoadLander(path)
	if err != nil {
		t.Fatalf("LoadLander() failed: %v", err)
	}
	if len(loaded.Levels) != 1 || loaded.Levels[0].PadWidth != 40 {
		t.Errorf("custom levels not loaded: %+v", loaded.Levels)
	}
}

func TestLoadLanderErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLander(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [}"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadLander(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("levels: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadLander(empty); !errors.Is(err, ErrNoLevels) {
		t.Errorf("expected ErrNoLevels, got %v", err)
	}
}

func TestApplyLanderPreset(t *testing.T) {
	base := DefaultLanderConfig()

	easy := base
	ApplyLanderPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", easy.Gameplay.Lives)
	}
	if easy.Levels[0].InitialFuel != 150 {
		t.Errorf("easy fuel = %g, expected 150", easy.Levels[0].InitialFuel)
	}
	if base.Levels[0].InitialFuel != 100 {
		t.Errorf("preset must not modify the original levels, got %g", base.Levels[0].InitialFuel)
	}

	fixed := base
	ApplyLanderPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := base
	ApplyLanderPreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialLevel != 0.7 || hard.Gameplay.Lives != 2 {
		t.Errorf("hard preset not applied: level=%g lives=%d", hard.Difficulty.InitialLevel, hard.Gameplay.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LanderConfig)
		err    error
	}{
		{"defaults", func(*LanderConfig) {}, nil},
		{"no levels", func(c *LanderConfig) { c.Levels = nil }, ErrNoLevels},
		{"zero cell width", func(c *LanderConfig) { c.Field.CellW = 0 }, ErrInvalidField},
		{"flat vehicle", func(c *LanderConfig) { c.Vehicle.Height = 0 }, errAny},
		{"zero step", func(c *LanderConfig) { c.Terrain.Step = 0 }, errAny},
		{"inverted factors", func(c *LanderConfig) { c.Terrain.MinYFactor = c.Terrain.MaxYFactor + 0.1 }, errAny},
		{"zero pad", func(c *LanderConfig) { c.Levels[0].PadWidth = 0 }, errAny},
		{"zero landing speed", func(c *LanderConfig) { c.Levels[len(c.Levels)-1].MaxLandingSpeed = 0 }, errAny},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLanderConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			switch {
			case tc.err == nil && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tc.err == errAny && err == nil:
				t.Error("expected an error")
			case tc.err != nil && tc.err != errAny && !errors.Is(err, tc.err):
				t.Errorf("Validate() = %v, expected %v", err, tc.err)
			}
		})
	}
}

// errAny matches any non-nil error in table tests.
var errAny = errors.New("any error")

func TestValidateField(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		start, end float64
		err        error
	}{
		{"valid", 640, 360, 280, 360, nil},
		{"zero width", 0, 360, 0, 10, ErrInvalidField},
		{"negative height", 640, -1, 280, 360, ErrInvalidField},
		{"zone left of field", 640, 360, -5, 40, ErrZoneOutsideField},
		{"zone right of field", 640, 360, 600, 700, ErrZoneOutsideField},
		{"zone wider than field", 50, 360, 0, 60, ErrZoneOutsideField},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateField(tc.w, tc.h, tc.start, tc.end)
			if tc.err == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("ValidateField() = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestDifficultyScale(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{PadShrink: 0.5, SpeedReduction: 0.5, FuelReduction: 0.5},
	})
	base := LevelConfig{PadWidth: 80, InitialFuel: 100, MaxLandingSpeed: 20}

	start := d.Scale(base, 10, 0, 0)
	if start != base {
		t.Errorf("zero progress should keep base level, got %+v", start)
	}

	maxed := d.Scale(base, 10, 5000, 0)
	if maxed.PadWidth != 40 || maxed.MaxLandingSpeed != 10 || maxed.InitialFuel != 50 {
		t.Errorf("max progress scaled wrong: %+v", maxed)
	}

	floor := d.Scale(base, 60, 5000, 0)
	if floor.PadWidth != 60 {
		t.Errorf("pad width should be floored at 60, got %g", floor.PadWidth)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(2)
	if got := d.Level(1000, 0); got != 1 {
		t.Errorf("disabled manager should return clamped initial level, got %g", got)
	}
}
