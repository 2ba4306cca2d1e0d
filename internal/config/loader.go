package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLander loads the lander configuration.
// Search order: customPath -> ~/.lander/configs/lander.yaml -> ./configs/lander.yaml -> embedded default
func LoadLander(customPath string) (LanderConfig, error) {
	var cfg LanderConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("lander.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/lander.yaml"); err == nil {
		cfg = LanderConfig{}
		if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	cfg = LanderConfig{}
	if err := yaml.Unmarshal(defaultLanderYAML, &cfg); err != nil {
		return DefaultLanderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lander", "configs", filename)
}

// ApplyLanderPreset modifies the config based on a difficulty preset.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Levels are copied so presets never alias the caller's slice
	levels := make([]LevelConfig, len(cfg.Levels))
	copy(levels, cfg.Levels)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		for i := range levels {
			levels[i].InitialFuel *= 1.5
			levels[i].MaxLandingSpeed *= 1.25
		}
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		for i := range levels {
			levels[i].InitialFuel *= 0.75
			levels[i].MaxLandingSpeed *= 0.8
		}
	}
	cfg.Levels = levels
}
