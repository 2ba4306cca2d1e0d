// Package physics is a small 2D rigid-body world for the lander: static and
// dynamic convex polygons, gravity and force integration, and contact queries.
// Screen convention: Y grows downward, positive angles rotate clockwise.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// BodyID identifies a body within its World. IDs are never reused.
type BodyID int

// BodyOptions configures a body at construction.
type BodyOptions struct {
	Static      bool    // Static bodies never move
	Hidden      bool    // Not drawn by debug renderers
	Mass        float64 // Defaults to 1
	FrictionAir float64 // Fraction of velocity lost per step (0..1)
}

// Body is a rigid convex polygon.
type Body struct {
	id              BodyID
	static          bool
	hidden          bool
	mass            float64
	frictionAir     float64
	local           []core.Vec2 // Vertices relative to position, unrotated
	position        core.Vec2
	velocity        core.Vec2
	angle           float64
	angularVelocity float64
	force           core.Vec2 // Accumulated until the next step
}

// ID returns the body's stable identifier.
func (b *Body) ID() BodyID { return b.id }

// IsStatic reports whether the body is immovable.
func (b *Body) IsStatic() bool { return b.static }

// IsHidden reports whether debug renderers should skip the body.
func (b *Body) IsHidden() bool { return b.hidden }

// Position returns the body's anchor point (its centroid).
func (b *Body) Position() core.Vec2 { return b.position }

// Velocity returns the linear velocity in units per second.
func (b *Body) Velocity() core.Vec2 { return b.velocity }

// Speed returns the scalar speed in units per second.
func (b *Body) Speed() float64 { return b.velocity.Len() }

// Angle returns the rotation in radians. Zero is upright.
func (b *Body) Angle() float64 { return b.angle }

// AngularVelocity returns the rotation rate in radians per second.
func (b *Body) AngularVelocity() float64 { return b.angularVelocity }

// SetPosition moves the body.
func (b *Body) SetPosition(p core.Vec2) { b.position = p }

// SetVelocity overrides the linear velocity. No effect on static bodies.
func (b *Body) SetVelocity(v core.Vec2) {
	if b.static {
		return
	}
	b.velocity = v
}

// SetAngle overrides the rotation.
func (b *Body) SetAngle(a float64) { b.angle = a }

// SetAngularVelocity overrides the rotation rate. No effect on static bodies.
func (b *Body) SetAngularVelocity(w float64) {
	if b.static {
		return
	}
	b.angularVelocity = w
}

// ApplyForce accumulates a force applied at the centroid for the next step.
func (b *Body) ApplyForce(f core.Vec2) {
	if b.static {
		return
	}
	b.force = b.force.Add(f)
}

// Vertices returns the polygon in world coordinates.
func (b *Body) Vertices() []core.Vec2 {
	out := make([]core.Vec2, len(b.local))
	for i, v := range b.local {
		out[i] = b.position.Add(v.Rotate(b.angle))
	}
	return out
}

// Bounds returns the axis-aligned bounding box (min, max) in world coordinates.
func (b *Body) Bounds() (core.Vec2, core.Vec2) {
	minV := core.V(math.Inf(1), math.Inf(1))
	maxV := core.V(math.Inf(-1), math.Inf(-1))
	for _, v := range b.Vertices() {
		minV.X = math.Min(minV.X, v.X)
		minV.Y = math.Min(minV.Y, v.Y)
		maxV.X = math.Max(maxV.X, v.X)
		maxV.Y = math.Max(maxV.Y, v.Y)
	}
	return minV, maxV
}

// integrate advances a dynamic body by dt seconds (semi-implicit Euler).
func (b *Body) integrate(gravity core.Vec2, dt float64) {
	if b.static {
		return
	}
	accel := gravity.Add(b.force.Scale(1 / b.mass))
	b.velocity = b.velocity.Add(accel.Scale(dt))
	b.velocity = b.velocity.Scale(1 - b.frictionAir)
	b.angularVelocity *= 1 - b.frictionAir
	b.position = b.position.Add(b.velocity.Scale(dt))
	b.angle += b.angularVelocity * dt
	b.force = core.Vec2{}
}
