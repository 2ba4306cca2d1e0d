package lander

import "math"

// Status is the flight status of one attempt.
type Status int

const (
	StatusPlaying Status = iota
	StatusLanded
	StatusCrashedTerrain
	StatusCrashedPadSpeed
	StatusCrashedPadAngle
	StatusCrashedFuel
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLanded:
		return "landed"
	case StatusCrashedTerrain:
		return "crashed-terrain"
	case StatusCrashedPadSpeed:
		return "crashed-pad-speed"
	case StatusCrashedPadAngle:
		return "crashed-pad-angle"
	case StatusCrashedFuel:
		return "crashed-fuel"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the attempt is over.
func (s Status) IsTerminal() bool {
	return s != StatusPlaying
}

// IsCrash reports whether the attempt ended in any crash.
func (s Status) IsCrash() bool {
	switch s {
	case StatusCrashedTerrain, StatusCrashedPadSpeed, StatusCrashedPadAngle, StatusCrashedFuel:
		return true
	default:
		return false
	}
}

// SpeedCrash holds the diagnostics of a too-fast pad touchdown.
type SpeedCrash struct {
	Speed float64
	Limit float64
}

// FlightState is the authoritative record of an attempt.
// Crash is non-nil iff Status is StatusCrashedPadSpeed.
type FlightState struct {
	Status Status
	Fuel   float64
	Crash  *SpeedCrash
}

// NewFlightState starts an attempt.
func NewFlightState(initialFuel float64) FlightState {
	return FlightState{Status: StatusPlaying, Fuel: math.Max(0, initialFuel)}
}

// Update advances the state machine by one tick.
// Terminal states are absorbing. Fuel exhaustion wins over a contact outcome on the same tick.
func Update(s FlightState, outcome Outcome, fuelDelta float64) FlightState {
	if s.Status.IsTerminal() {
		return s
	}

	s.Fuel = math.Max(0, s.Fuel+fuelDelta)
	if s.Fuel == 0 {
		s.Status = StatusCrashedFuel
		s.Crash = nil
		return s
	}

	if outcome.IsNone() {
		return s
	}

	s.Crash = nil
	switch outcome.Kind {
	case OutcomeLanded:
		s.Status = StatusLanded
	case OutcomeCrashedTerrain:
		s.Status = StatusCrashedTerrain
	case OutcomeCrashedPadAngle:
		s.Status = StatusCrashedPadAngle
	case OutcomeCrashedPadSpeed:
		s.Status = StatusCrashedPadSpeed
		s.Crash = &SpeedCrash{Speed: outcome.Speed, Limit: outcome.Limit}
	}
	return s
}

// Transition returns the status entered between two consecutive states, if any.
// It is the only trigger for score and lives bookkeeping.
func Transition(prev, next FlightState) (Status, bool) {
	if prev.Status == StatusPlaying && next.Status != StatusPlaying {
		return next.Status, true
	}
	return prev.Status, false
}
