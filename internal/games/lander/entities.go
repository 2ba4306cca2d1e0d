package lander

import (
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// SurfaceKind tags what a physics body represents.
type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfaceTerrain
	SurfacePad
	SurfaceVehicle
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceTerrain:
		return "terrain"
	case SurfacePad:
		return "pad"
	case SurfaceVehicle:
		return "vehicle"
	default:
		return "none"
	}
}

// Vehicle is the player's lander.
type Vehicle struct {
	Body   *physics.Body
	Width  float64
	Height float64
}

// Pad is the landing pad body and the zone it was built from.
type Pad struct {
	Body   *physics.Body
	Zone   LandingZone
	Height float64
}

// Ground is one terrain segment and its body. Body is nil when the segment was skipped.
type Ground struct {
	Segment Segment
	Body    *physics.Body
}

// Entities is the per-level arena of tagged records, keyed by body ID.
type Entities struct {
	Vehicle *Vehicle
	Pad     *Pad
	Ground  []Ground

	kinds map[physics.BodyID]SurfaceKind
}

// NewEntities creates an empty arena.
func NewEntities() *Entities {
	return &Entities{kinds: make(map[physics.BodyID]SurfaceKind)}
}

// Tag records the surface kind of a body.
func (e *Entities) Tag(b *physics.Body, kind SurfaceKind) {
	if b == nil {
		return
	}
	e.kinds[b.ID()] = kind
}

// Kind returns the surface kind of a body, or SurfaceNone if it is unknown.
func (e *Entities) Kind(id physics.BodyID) SurfaceKind {
	return e.kinds[id]
}

// Surfaces returns every static body the vehicle can touch.
func (e *Entities) Surfaces() []*physics.Body {
	out := make([]*physics.Body, 0, len(e.Ground)+1)
	if e.Pad != nil && e.Pad.Body != nil {
		out = append(out, e.Pad.Body)
	}
	for _, g := range e.Ground {
		if g.Body != nil {
			out = append(out, g.Body)
		}
	}
	return out
}

// Count returns the number of tagged bodies.
func (e *Entities) Count() int {
	return len(e.kinds)
}
