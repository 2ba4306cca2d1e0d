package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/physics"
)

// MaxLandingAngle is the largest tilt, in radians, that still counts as upright.
const MaxLandingAngle = 0.1

// OutcomeKind is the result of one tick of vehicle contacts.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeLanded
	OutcomeCrashedTerrain
	OutcomeCrashedPadSpeed
	OutcomeCrashedPadAngle
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeLanded:
		return "landed"
	case OutcomeCrashedTerrain:
		return "crashed-terrain"
	case OutcomeCrashedPadSpeed:
		return "crashed-pad-speed"
	case OutcomeCrashedPadAngle:
		return "crashed-pad-angle"
	default:
		return "none"
	}
}

// Outcome is a classified contact. Speed and Limit are set only for OutcomeCrashedPadSpeed.
// The zero value means nothing of interest was touched.
type Outcome struct {
	Kind  OutcomeKind
	Speed float64
	Limit float64
}

// IsNone reports whether no outcome was produced.
func (o Outcome) IsNone() bool {
	return o.Kind == OutcomeNone
}

// Classify turns the surface kinds touched this tick into an outcome.
// Any pad contact decides the outcome even if terrain was touched too.
// On the pad, speed is checked before angle.
func Classify(touched []SurfaceKind, speed, angle, maxSpeed, maxAngle float64) Outcome {
	var pad, terrain bool
	for _, k := range touched {
		switch k {
		case SurfacePad:
			pad = true
		case SurfaceTerrain:
			terrain = true
		}
		if pad && terrain {
			break
		}
	}

	switch {
	case pad:
		if speed >= maxSpeed {
			return Outcome{Kind: OutcomeCrashedPadSpeed, Speed: speed, Limit: maxSpeed}
		}
		if math.Abs(angle) >= maxAngle {
			return Outcome{Kind: OutcomeCrashedPadAngle}
		}
		return Outcome{Kind: OutcomeLanded}
	case terrain:
		return Outcome{Kind: OutcomeCrashedTerrain}
	default:
		return Outcome{}
	}
}

// ClassifyVehicle queries the vehicle's contacts against every surface and classifies them.
// A missing vehicle yields no outcome.
func ClassifyVehicle(world *physics.World, entities *Entities, maxSpeed, maxAngle float64) Outcome {
	if world == nil || entities == nil || entities.Vehicle == nil || entities.Vehicle.Body == nil {
		return Outcome{}
	}
	body := entities.Vehicle.Body

	contacts := world.Collides(body, entities.Surfaces())
	if len(contacts) == 0 {
		return Outcome{}
	}

	touched := make([]SurfaceKind, 0, len(contacts))
	for _, c := range contacts {
		touched = append(touched, entities.Kind(c.Other(body).ID()))
	}
	return Classify(touched, body.Speed(), NormalizeAngle(body.Angle()), maxSpeed, maxAngle)
}

// NormalizeAngle maps an angle to (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
