package physics

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Contact is an overlapping pair found by Collides.
type Contact struct {
	A, B   *Body
	Depth  float64   // Penetration along Normal
	Normal core.Vec2 // Unit axis of minimum overlap, pointing from A to B
}

// Other returns the body in the pair that is not b.
func (c Contact) Other(b *Body) *Body {
	if c.A == b {
		return c.B
	}
	return c.A
}

// World owns bodies and advances them in time.
type World struct {
	gravity core.Vec2
	bodies  []*Body
	nextID  BodyID
}

// NewWorld creates an empty world with the given gravity (units/s², +Y is down).
func NewWorld(gravity core.Vec2) *World {
	return &World{gravity: gravity, nextID: 1}
}

// NewPolygon adds a body whose shape is the given world-space polygon.
// The body is anchored at the polygon's centroid.
func (w *World) NewPolygon(vertices []core.Vec2, opts BodyOptions) (*Body, error) {
	c, err := Centroid(vertices)
	if err != nil {
		return nil, err
	}
	local := make([]core.Vec2, len(vertices))
	for i, v := range vertices {
		local[i] = v.Sub(c)
	}
	return w.add(c, local, opts), nil
}

// NewRectangle adds an axis-aligned box centered at center.
func (w *World) NewRectangle(center core.Vec2, width, height float64, opts BodyOptions) *Body {
	hw, hh := width/2, height/2
	local := []core.Vec2{
		core.V(-hw, -hh),
		core.V(hw, -hh),
		core.V(hw, hh),
		core.V(-hw, hh),
	}
	return w.add(center, local, opts)
}

func (w *World) add(pos core.Vec2, local []core.Vec2, opts BodyOptions) *Body {
	mass := opts.Mass
	if mass <= 0 {
		mass = 1
	}
	b := &Body{
		id:          w.nextID,
		static:      opts.Static,
		hidden:      opts.Hidden,
		mass:        mass,
		frictionAir: core.ClampF(opts.FrictionAir, 0, 1),
		local:       local,
		position:    pos,
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns all bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Body looks up a body by ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	for _, b := range w.bodies {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

// Remove deletes a body. Unknown IDs are ignored.
func (w *World) Remove(id BodyID) {
	for i, b := range w.bodies {
		if b.id == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Step advances every dynamic body by dt seconds.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.integrate(w.gravity, dt)
	}
}

// Collides returns a contact for every candidate that overlaps body.
// Shapes are treated as convex; touching edges with zero depth do not count.
func (w *World) Collides(body *Body, candidates []*Body) []Contact {
	if body == nil {
		return nil
	}
	var contacts []Contact

	bMin, bMax := body.Bounds()
	verts := body.Vertices()
	for _, other := range candidates {
		if other == nil || other == body {
			continue
		}
		oMin, oMax := other.Bounds()
		if bMax.X <= oMin.X || oMax.X <= bMin.X || bMax.Y <= oMin.Y || oMax.Y <= bMin.Y {
			continue
		}
		depth, normal, ok := overlap(verts, other.Vertices())
		if !ok {
			continue
		}
		contacts = append(contacts, Contact{A: body, B: other, Depth: depth, Normal: normal})
	}
	return contacts
}

// overlap runs the separating axis test on two convex polygons.
func overlap(a, b []core.Vec2) (float64, core.Vec2, bool) {
	best := math.Inf(1)
	var bestAxis core.Vec2

	for _, poly := range [][]core.Vec2{a, b} {
		for i := range poly {
			edge := poly[(i+1)%len(poly)].Sub(poly[i])
			length := edge.Len()
			if length == 0 {
				continue
			}
			axis := core.V(-edge.Y/length, edge.X/length)

			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA <= minB || maxB <= minA {
				return 0, core.Vec2{}, false
			}
			d := math.Min(maxA-minB, maxB-minA)
			if d < best {
				best = d
				bestAxis = axis
			}
		}
	}

	if centerOf(b).Sub(centerOf(a)).Dot(bestAxis) < 0 {
		bestAxis = bestAxis.Scale(-1)
	}
	return best, bestAxis, true
}

func project(poly []core.Vec2, axis core.Vec2) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range poly {
		p := v.Dot(axis)
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return lo, hi
}

func centerOf(poly []core.Vec2) core.Vec2 {
	var sum core.Vec2
	for _, v := range poly {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(poly)))
}
