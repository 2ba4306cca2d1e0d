package lander

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func flatSegments(n int) []Segment {
	profile := make(Profile, n+1)
	for i := range profile {
		profile[i] = core.V(float64(i)*16, 100+float64(i%3))
	}
	return BuildSegments(profile, 200)
}

func TestBuildGroundBodies(t *testing.T) {
	world := physics.NewWorld(core.V(0, 20))
	entities := NewEntities()
	segments := flatSegments(10)

	bodies, report := BuildGroundBodies(world, entities, segments, quietLogger())

	if len(bodies) != 10 || report.Built != 10 || report.Attempted != 10 {
		t.Fatalf("expected 10 bodies, got %d (report %+v)", len(bodies), report)
	}
	if len(report.Failures) != 0 {
		t.Errorf("unexpected failures: %v", report.Failures)
	}
	for i, b := range bodies {
		if !b.IsStatic() || !b.IsHidden() {
			t.Errorf("body %d should be static and hidden", i)
		}
		if entities.Kind(b.ID()) != SurfaceTerrain {
			t.Errorf("body %d tagged %v, expected terrain", i, entities.Kind(b.ID()))
		}
		c, err := physics.Centroid(segments[i].Vertices)
		if err != nil {
			t.Fatalf("Centroid failed: %v", err)
		}
		if p := b.Position(); math.Abs(p.X-c.X) > 1e-9 || math.Abs(p.Y-c.Y) > 1e-9 {
			t.Errorf("body %d anchored at %v, expected centroid %v", i, p, c)
		}
	}
}

func TestBuildGroundBodiesSkipsDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		vertices []core.Vec2
		err      error
	}{
		{
			name:     "collinear",
			vertices: []core.Vec2{core.V(0, 5), core.V(1, 5), core.V(2, 5), core.V(3, 5)},
			err:      physics.ErrUndefinedCentroid,
		},
		{
			name:     "two distinct vertices",
			vertices: []core.Vec2{core.V(0, 0), core.V(1, 1), core.V(1, 1), core.V(0, 0)},
			err:      physics.ErrDegeneratePolygon,
		},
		{
			name:     "NaN vertex",
			vertices: []core.Vec2{core.V(0, 0), core.V(math.NaN(), 0), core.V(1, 1), core.V(0, 1)},
			err:      physics.ErrUndefinedCentroid,
		},
		{
			name:     "empty",
			vertices: nil,
			err:      physics.ErrDegeneratePolygon,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			segments := flatSegments(6)
			bad := 3
			segments[bad].Vertices = tc.vertices

			world := physics.NewWorld(core.V(0, 20))
			entities := NewEntities()
			bodies, report := BuildGroundBodies(world, entities, segments, quietLogger())

			if len(bodies) != len(segments)-1 {
				t.Fatalf("expected %d bodies, got %d", len(segments)-1, len(bodies))
			}
			if report.Attempted != 6 || report.Built != 5 || report.Skipped() != 1 {
				t.Errorf("unexpected report: %+v", report)
			}
			if len(report.Failures) != 1 || report.Failures[0].Index != bad {
				t.Fatalf("expected one failure at %d, got %v", bad, report.Failures)
			}
			if !errors.Is(report.Failures[0], tc.err) {
				t.Errorf("failure %v does not wrap %v", report.Failures[0], tc.err)
			}
			if len(entities.Ground) != 6 || entities.Ground[bad].Body != nil {
				t.Errorf("skipped segment should stay in the arena without a body")
			}
			if len(entities.Surfaces()) != 5 {
				t.Errorf("expected 5 collidable surfaces, got %d", len(entities.Surfaces()))
			}
		})
	}
}

func TestNewPadBody(t *testing.T) {
	world := physics.NewWorld(core.V(0, 20))
	entities := NewEntities()
	zone := LandingZone{CenterX: 300, ConfiguredWidth: 60, TopY: 250}

	pad := NewPadBody(world, entities, zone, 8)

	if entities.Pad != pad || entities.Kind(pad.Body.ID()) != SurfacePad {
		t.Fatal("pad should be registered and tagged in the arena")
	}
	if !pad.Body.IsStatic() || pad.Body.IsHidden() {
		t.Error("pad should be static and visible")
	}
	lo, hi := pad.Body.Bounds()
	if lo.X != 270 || hi.X != 330 {
		t.Errorf("pad spans x [%g, %g], expected configured width [270, 330]", lo.X, hi.X)
	}
	if hi.Y != 250 || lo.Y != 242 {
		t.Errorf("pad spans y [%g, %g], expected to rest on topY [242, 250]", lo.Y, hi.Y)
	}
}

func TestBuildErrorMessage(t *testing.T) {
	err := &BuildError{Index: 4, Err: physics.ErrDegeneratePolygon}
	if err.Error() != "segment 4: physics: polygon has fewer than 3 distinct vertices" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, physics.ErrDegeneratePolygon) {
		t.Error("BuildError should unwrap to its cause")
	}
}
