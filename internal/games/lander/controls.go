package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Engines reports which engines fired on a tick.
type Engines struct {
	Main  bool
	Left  bool
	Right bool
}

// Any reports whether any engine fired.
func (e Engines) Any() bool {
	return e.Main || e.Left || e.Right
}

// ApplyControls applies engine forces and rotation for one tick.
// Engines fire only while fuel remains; rotation is free.
// It returns the fuel delta for the tick and the engines that fired.
func ApplyControls(body *physics.Body, in core.InputFrame, fuel float64,
	cfg config.ControlsConfig) (float64, Engines) {
	var fired Engines
	if body == nil {
		return 0, fired
	}

	if in.Has(core.ActionRotateLeft) {
		body.SetAngularVelocity(body.AngularVelocity() - cfg.RotationStep)
	}
	if in.Has(core.ActionRotateRight) {
		body.SetAngularVelocity(body.AngularVelocity() + cfg.RotationStep)
	}

	if fuel <= 0 {
		return 0, fired
	}

	angle := body.Angle()
	up := core.V(math.Sin(angle), -math.Cos(angle))
	side := core.V(math.Cos(angle), math.Sin(angle))

	delta := 0.0
	if in.Has(core.ActionThrust) {
		body.ApplyForce(up.Scale(cfg.Thrust))
		delta -= cfg.FuelBurn
		fired.Main = true
	}
	// Lateral actions strafe along the vehicle's own x axis
	if in.Has(core.ActionLateralLeft) {
		body.ApplyForce(side.Scale(-cfg.LateralThrust))
		delta -= cfg.FuelBurn
		fired.Left = true
	}
	if in.Has(core.ActionLateralRight) {
		body.ApplyForce(side.Scale(cfg.LateralThrust))
		delta -= cfg.FuelBurn
		fired.Right = true
	}

	return delta, fired
}
