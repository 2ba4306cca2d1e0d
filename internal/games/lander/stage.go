package lander

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Stage is one built level attempt: the world, its bodies and the terrain they came from.
// Everything but the vehicle is immutable after BuildStage returns.
type Stage struct {
	Number   int // 1-based
	Params   config.LevelConfig
	FieldW   float64
	FieldH   float64
	Zone     LandingZone
	Profile  Profile
	Segments []Segment
	World    *physics.World
	Entities *Entities
	Report   BuildReport
}

// FieldSize converts a terminal size to world units. HUD rows are not part of the field.
func FieldSize(cfg config.FieldConfig, screenW, screenH int) (float64, float64) {
	rows := screenH - cfg.HUDRows
	if rows < 0 {
		rows = 0
	}
	return float64(screenW) * cfg.CellW, float64(rows) * cfg.CellH
}

// LevelCount returns the number of campaign levels.
func LevelCount(cfg config.LanderConfig) int {
	return len(cfg.Levels)
}

// LevelParams returns the parameters of a 1-based campaign level.
func LevelParams(cfg config.LanderConfig, number int) (config.LevelConfig, bool) {
	if number < 1 || number > len(cfg.Levels) {
		return config.LevelConfig{}, false
	}
	return cfg.Levels[number-1], true
}

// BuildStage runs level setup: terrain, segments, ground bodies, pad and vehicle.
// The field and zone are validated first; nothing is built if they are invalid.
func BuildStage(cfg config.LanderConfig, number int, params config.LevelConfig,
	fieldW, fieldH float64, rng *rand.Rand, logger *log.Logger) (*Stage, error) {
	zone := LandingZone{
		CenterX:         fieldW * params.PadXFactor,
		ConfiguredWidth: params.PadWidth,
		TopY:            fieldH * cfg.Pad.TopYFactor,
	}
	half := zone.PhysicalWidth(cfg.Vehicle.Width, cfg.Terrain.Buffer) / 2
	if err := config.ValidateField(fieldW, fieldH, zone.CenterX-half, zone.CenterX+half); err != nil {
		return nil, err
	}

	profile := GenerateProfile(fieldW, fieldH, zone, cfg.Vehicle.Width, cfg.Terrain, rng)
	segments := BuildSegments(profile, fieldH)

	world := physics.NewWorld(core.V(0, cfg.Physics.Gravity))
	entities := NewEntities()
	_, report := BuildGroundBodies(world, entities, segments, logger)
	NewPadBody(world, entities, zone, cfg.Pad.Height)

	// Spawn somewhere over the middle of the field, level
	spawn := core.V(fieldW*(0.2+0.6*rng.Float64()), fieldH*cfg.Vehicle.StartYFactor)
	NewVehicleBody(world, entities, spawn, cfg.Vehicle.Width, cfg.Vehicle.Height,
		cfg.Vehicle.Mass, cfg.Physics.FrictionAir)

	logger.Info("level built",
		"level", number,
		"pad_x", zone.CenterX,
		"pad_width", zone.ConfiguredWidth,
		"segments", report.Built,
		"skipped", report.Skipped(),
	)

	return &Stage{
		Number:   number,
		Params:   params,
		FieldW:   fieldW,
		FieldH:   fieldH,
		Zone:     zone,
		Profile:  profile,
		Segments: segments,
		World:    world,
		Entities: entities,
		Report:   report,
	}, nil
}

// Vehicle returns the vehicle body, or nil before setup.
func (s *Stage) Vehicle() *physics.Body {
	if s == nil || s.Entities == nil || s.Entities.Vehicle == nil {
		return nil
	}
	return s.Entities.Vehicle.Body
}

// KeepInField stops the vehicle at the left and right field edges.
func (s *Stage) KeepInField() {
	body := s.Vehicle()
	if body == nil {
		return
	}
	half := s.Entities.Vehicle.Width / 2
	pos, vel := body.Position(), body.Velocity()

	switch {
	case pos.X < half:
		body.SetPosition(core.V(half, pos.Y))
		body.SetVelocity(core.V(0, vel.Y))
	case pos.X > s.FieldW-half:
		body.SetPosition(core.V(s.FieldW-half, pos.Y))
		body.SetVelocity(core.V(0, vel.Y))
	}
}

// GroundAt returns the surface y under x, counting the pad.
func (s *Stage) GroundAt(x float64) float64 {
	y := s.Profile.HeightAt(x)
	if s.Entities.Pad != nil {
		left, right := s.Zone.PadSpan()
		if x >= left && x <= right {
			y = s.Zone.TopY - s.Entities.Pad.Height
		}
	}
	return y
}

// Altitude returns the height of the vehicle's bottom edge above the surface below it.
func (s *Stage) Altitude() float64 {
	body := s.Vehicle()
	if body == nil {
		return 0
	}
	pos := body.Position()
	bottom := pos.Y + s.Entities.Vehicle.Height/2
	alt := s.GroundAt(pos.X) - bottom
	if alt < 0 {
		return 0
	}
	return alt
}
