package lander

import "fmt"

// Telemetry is the read-only view of a flight used by the HUD.
// Velocities are world units per second; VerticalSpeed is positive when climbing.
type Telemetry struct {
	Level           int
	Lives           int
	Score           int
	Fuel            float64
	Altitude        float64
	HorizontalSpeed float64
	VerticalSpeed   float64
	Speed           float64
	Angle           float64
	MaxLandingSpeed float64
	Status          Status
	Crash           *SpeedCrash
}

// Telemetry returns the current flight readings.
func (g *Game) Telemetry() Telemetry {
	t := Telemetry{
		Fuel:   g.flight.Fuel,
		Status: g.flight.Status,
		Crash:  g.flight.Crash,
	}
	if g.board != nil {
		t.Lives = g.board.Lives
		t.Score = g.board.Score
	}
	if g.stage == nil {
		return t
	}

	t.Level = g.stage.Number
	t.MaxLandingSpeed = g.stage.Params.MaxLandingSpeed
	if body := g.stage.Vehicle(); body != nil {
		vel := body.Velocity()
		t.HorizontalSpeed = vel.X
		t.VerticalSpeed = -vel.Y
		t.Speed = body.Speed()
		t.Angle = NormalizeAngle(body.Angle())
		t.Altitude = g.stage.Altitude()
	}
	return t
}

// StatusMessage returns the overlay title and detail for a terminal flight.
// Playing flights have no message.
func StatusMessage(s FlightState) (string, string) {
	switch s.Status {
	case StatusLanded:
		return "LANDED", "Touchdown on the pad"
	case StatusCrashedTerrain:
		return "CRASHED", "hit the terrain"
	case StatusCrashedPadSpeed:
		if s.Crash != nil {
			return "CRASHED", fmt.Sprintf("too fast: %.1f > %.1f", s.Crash.Speed, s.Crash.Limit)
		}
		return "CRASHED", "too fast"
	case StatusCrashedPadAngle:
		return "CRASHED", "bad landing angle"
	case StatusCrashedFuel:
		return "CRASHED", "out of fuel"
	default:
		return "", ""
	}
}
