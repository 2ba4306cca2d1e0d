package lander

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// BuildError is a ground segment that could not become a body.
type BuildError struct {
	Index int
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("segment %d: %v", e.Index, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// BuildReport summarizes ground body construction.
type BuildReport struct {
	Attempted int
	Built     int
	Failures  []*BuildError
}

// Skipped returns the number of segments that produced no body.
func (r BuildReport) Skipped() int {
	return r.Attempted - r.Built
}

// buildSegmentBody constructs one hidden static body anchored at the segment's centroid.
func buildSegmentBody(world *physics.World, seg Segment) (*physics.Body, error) {
	if physics.DistinctVertices(seg.Vertices) < 3 {
		return nil, physics.ErrDegeneratePolygon
	}
	return world.NewPolygon(seg.Vertices, physics.BodyOptions{Static: true, Hidden: true})
}

// BuildGroundBodies adds a static terrain body per segment and tags it in the arena.
// Degenerate segments are logged and skipped; the rest of the ground is still built.
func BuildGroundBodies(world *physics.World, entities *Entities, segments []Segment,
	logger *log.Logger) ([]*physics.Body, BuildReport) {
	report := BuildReport{Attempted: len(segments)}
	bodies := make([]*physics.Body, 0, len(segments))

	for i, seg := range segments {
		body, err := buildSegmentBody(world, seg)
		if err != nil {
			berr := &BuildError{Index: i, Err: err}
			report.Failures = append(report.Failures, berr)
			logger.Warn("skipping ground segment", "index", i, "reason", err)
			entities.Ground = append(entities.Ground, Ground{Segment: seg})
			continue
		}

		entities.Tag(body, SurfaceTerrain)
		entities.Ground = append(entities.Ground, Ground{Segment: seg, Body: body})
		bodies = append(bodies, body)
		report.Built++
	}

	logger.Debug("ground bodies built", "built", report.Built, "attempted", report.Attempted)
	return bodies, report
}

// NewPadBody adds the landing pad: a static box of the configured width resting on zone.TopY.
func NewPadBody(world *physics.World, entities *Entities, zone LandingZone, height float64) *Pad {
	center := core.V(zone.CenterX, zone.TopY-height/2)
	body := world.NewRectangle(center, zone.ConfiguredWidth, height, physics.BodyOptions{Static: true})
	entities.Tag(body, SurfacePad)

	pad := &Pad{Body: body, Zone: zone, Height: height}
	entities.Pad = pad
	return pad
}

// NewVehicleBody adds the dynamic vehicle centered at pos.
func NewVehicleBody(world *physics.World, entities *Entities, pos core.Vec2,
	width, height, mass, frictionAir float64) *Vehicle {
	body := world.NewRectangle(pos, width, height, physics.BodyOptions{
		Mass:        mass,
		FrictionAir: frictionAir,
	})
	entities.Tag(body, SurfaceVehicle)

	v := &Vehicle{Body: body, Width: width, Height: height}
	entities.Vehicle = v
	return v
}
