// Package lander implements a terminal lunar lander.
// The vehicle must touch down on a flat pad slowly and upright before fuel runs out.
// Terrain is a random walk over the field width with a forced-flat landing zone;
// each step of the walk becomes an independent static ground body.
package lander

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Profile is the ground surface polyline, ordered by strictly increasing x.
type Profile []core.Vec2

// HeightAt returns the ground y below x, interpolated between profile points.
// Outside the profile the nearest endpoint is used.
func (p Profile) HeightAt(x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	if x <= p[0].X {
		return p[0].Y
	}
	last := p[len(p)-1]
	if x >= last.X {
		return last.Y
	}

	i := sort.Search(len(p), func(i int) bool { return p[i].X >= x })
	a, b := p[i-1], p[i]
	t := (x - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*t
}

// LandingZone describes the pad: its center, its configured width and its top surface.
type LandingZone struct {
	CenterX         float64
	ConfiguredWidth float64
	TopY            float64
}

// PhysicalWidth is the width the terrain is flattened over.
// It is never narrower than the vehicle plus a clearance buffer.
func (z LandingZone) PhysicalWidth(vehicleWidth, buffer float64) float64 {
	return math.Max(z.ConfiguredWidth, vehicleWidth+buffer)
}

// Span returns the flattened x-range, clipped to [0, fieldW].
func (z LandingZone) Span(vehicleWidth, buffer, fieldW float64) (float64, float64) {
	half := z.PhysicalWidth(vehicleWidth, buffer) / 2
	return math.Max(0, z.CenterX-half), math.Min(fieldW, z.CenterX+half)
}

// PadSpan returns the x-range covered by the pad body.
func (z LandingZone) PadSpan() (float64, float64) {
	half := z.ConfiguredWidth / 2
	return z.CenterX - half, z.CenterX + half
}

// GenerateProfile walks x from 0 to fieldW in fixed steps and produces the ground surface.
// Every point inside the zone's physical range sits exactly at zone.TopY, with explicit
// points at both zone edges. The zone must lie inside the field.
func GenerateProfile(fieldW, fieldH float64, zone LandingZone, vehicleWidth float64,
	cfg config.TerrainConfig, rng *rand.Rand) Profile {
	minY := fieldH * cfg.MinYFactor
	maxY := fieldH * cfg.MaxYFactor
	startX, endX := zone.Span(vehicleWidth, cfg.Buffer, fieldW)
	topY := zone.TopY

	step := cfg.Step
	if step <= 0 {
		step = fieldW
	}

	walk := func(from float64) float64 {
		dy := (rng.Float64()*2 - 1) * cfg.MaxDy
		return core.ClampF(from+dy, minY, maxY)
	}

	y := core.ClampF(topY+rng.Float64()*cfg.SeedSpread, minY, maxY)
	if startX <= 0 {
		y = topY
	}

	profile := Profile{core.V(0, y)}
	push := func(p core.Vec2) {
		if p.X > profile[len(profile)-1].X {
			profile = append(profile, p)
		}
	}

	for x := 0.0; x < fieldW; {
		nx := math.Min(x+step, fieldW)

		// Entering: pin the flat run to the exact zone edge
		if x < startX && startX < nx {
			push(core.V(startX, topY))
			y = topY
		}

		switch {
		case nx >= startX && nx <= endX:
			y = topY
		case x < endX && endX < nx:
			// Exiting: pin the edge, then walk on from the pad height
			push(core.V(endX, topY))
			y = walk(topY)
		default:
			y = walk(y)
		}

		push(core.V(nx, y))
		x = nx
	}

	return profile
}
