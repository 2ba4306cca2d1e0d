// Package config provides YAML-based game configuration loading and
// difficulty management for the lander.
package config

// LanderConfig contains all configuration for the lander game.
// It is passed by value into every level setup and never mutated by the game.
type LanderConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Pad        PadConfig        `yaml:"pad"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Controls   ControlsConfig   `yaml:"controls"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig maps terminal cells to world units.
type FieldConfig struct {
	CellW   float64 `yaml:"cell_w"`   // World units per column
	CellH   float64 `yaml:"cell_h"`   // World units per row
	HUDRows int     `yaml:"hud_rows"` // Rows reserved for the HUD at the top
}

// VehicleConfig defines the lander body.
type VehicleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Mass         float64 `yaml:"mass"`
	StartYFactor float64 `yaml:"start_y_factor"` // Spawn height as a fraction of field height
}

// TerrainConfig defines the random walk of the ground profile.
type TerrainConfig struct {
	Step       float64 `yaml:"step"`        // Horizontal distance between profile points
	MaxDy      float64 `yaml:"max_dy"`      // Largest height change per step
	MinYFactor float64 `yaml:"min_y_factor"` // Highest ground (smallest y) as a fraction of field height
	MaxYFactor float64 `yaml:"max_y_factor"` // Lowest ground (largest y) as a fraction of field height
	SeedSpread float64 `yaml:"seed_spread"`  // Random offset of the first point below the pad height
	Buffer     float64 `yaml:"buffer"`       // Clearance added to the vehicle width for the flat zone
}

// PadConfig defines the landing pad geometry shared by all levels.
type PadConfig struct {
	Height     float64 `yaml:"height"`
	TopYFactor float64 `yaml:"top_y_factor"` // Pad surface as a fraction of field height
}

// PhysicsConfig defines world parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Units per second squared, downward
	FrictionAir float64 `yaml:"friction_air"` // Velocity fraction lost per tick
}

// ControlsConfig defines engine parameters.
type ControlsConfig struct {
	Thrust        float64 `yaml:"thrust"`         // Main engine force
	LateralThrust float64 `yaml:"lateral_thrust"` // Side thruster force
	RotationStep  float64 `yaml:"rotation_step"`  // Angular velocity added per rotation input
	FuelBurn      float64 `yaml:"fuel_burn"`      // Fuel consumed per tick of any engine
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives               int     `yaml:"lives"`
	FuelScoreMultiplier float64 `yaml:"fuel_score_multiplier"`
	LevelBonus          int     `yaml:"level_bonus"`
}

// LevelConfig defines one level of the campaign.
type LevelConfig struct {
	PadWidth        float64 `yaml:"pad_width"`
	PadXFactor      float64 `yaml:"pad_x_factor"` // Pad center as a fraction of field width
	InitialFuel     float64 `yaml:"initial_fuel"`
	MaxLandingSpeed float64 `yaml:"max_landing_speed"`
}

// DifficultyConfig defines the difficulty progression used by endless mode.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	PadShrink      float64 `yaml:"pad_shrink"`      // Fraction of pad width removed
	SpeedReduction float64 `yaml:"speed_reduction"` // Fraction of landing speed limit removed
	FuelReduction  float64 `yaml:"fuel_reduction"`  // Fraction of initial fuel removed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
