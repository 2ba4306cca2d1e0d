package config

import (
	"errors"
	"fmt"
)

// Contract violations detected before a level is built.
var (
	ErrInvalidField     = errors.New("config: field dimensions must be positive")
	ErrZoneOutsideField = errors.New("config: landing zone does not fit inside the field")
	ErrNoLevels         = errors.New("config: at least one level is required")
)

// Validate checks the static parts of a configuration.
func Validate(cfg LanderConfig) error {
	if len(cfg.Levels) == 0 {
		return ErrNoLevels
	}
	if cfg.Field.CellW <= 0 || cfg.Field.CellH <= 0 {
		return fmt.Errorf("%w: cell size %gx%g", ErrInvalidField, cfg.Field.CellW, cfg.Field.CellH)
	}
	if cfg.Vehicle.Width <= 0 || cfg.Vehicle.Height <= 0 {
		return fmt.Errorf("config: vehicle size must be positive, got %gx%g", cfg.Vehicle.Width, cfg.Vehicle.Height)
	}
	if cfg.Terrain.Step <= 0 {
		return fmt.Errorf("config: terrain step must be positive, got %g", cfg.Terrain.Step)
	}
	if cfg.Terrain.MinYFactor > cfg.Terrain.MaxYFactor {
		return fmt.Errorf("config: terrain min_y_factor %g exceeds max_y_factor %g",
			cfg.Terrain.MinYFactor, cfg.Terrain.MaxYFactor)
	}
	for i, lvl := range cfg.Levels {
		if lvl.PadWidth <= 0 {
			return fmt.Errorf("config: level %d: pad width must be positive", i+1)
		}
		if lvl.MaxLandingSpeed <= 0 {
			return fmt.Errorf("config: level %d: max landing speed must be positive", i+1)
		}
	}
	return nil
}

// ValidateField checks a field and a landing zone x-range before terrain is built.
func ValidateField(fieldW, fieldH, zoneStart, zoneEnd float64) error {
	if fieldW <= 0 || fieldH <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidField, fieldW, fieldH)
	}
	if zoneStart < 0 || zoneEnd > fieldW || zoneStart >= zoneEnd {
		return fmt.Errorf("%w: zone [%g, %g] in field width %g", ErrZoneOutsideField, zoneStart, zoneEnd, fieldW)
	}
	return nil
}
