package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default lander configuration.
// It mirrors defaults/lander.yaml and is used when the embedded file cannot be parsed.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Field: FieldConfig{
			CellW:   8,
			CellH:   16,
			HUDRows: 1,
		},
		Vehicle: VehicleConfig{
			Width:        24,
			Height:       16,
			Mass:         1,
			StartYFactor: 0.08,
		},
		Terrain: TerrainConfig{
			Step:       16,
			MaxDy:      14,
			MinYFactor: 0.45,
			MaxYFactor: 0.92,
			SeedSpread: 40,
			Buffer:     16,
		},
		Pad: PadConfig{
			Height:     8,
			TopYFactor: 0.8,
		},
		Physics: PhysicsConfig{
			Gravity:     20,
			FrictionAir: 0.005,
		},
		Controls: ControlsConfig{
			Thrust:        45,
			LateralThrust: 15,
			RotationStep:  0.15,
			FuelBurn:      0.1,
		},
		Gameplay: GameplayConfig{
			Lives:               3,
			FuelScoreMultiplier: 10,
			LevelBonus:          100,
		},
		Levels: []LevelConfig{
			{PadWidth: 80, PadXFactor: 0.5, InitialFuel: 100, MaxLandingSpeed: 20},
			{PadWidth: 60, PadXFactor: 0.5, InitialFuel: 80, MaxLandingSpeed: 16},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				PadShrink:      0.4,
				SpeedReduction: 0.4,
				FuelReduction:  0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
