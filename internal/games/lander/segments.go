package lander

import "github.com/vovakirdan/tui-lander/internal/core"

// Segment is one ground quad, bounded above by a profile edge and below by the field bottom.
type Segment struct {
	Index    int
	Vertices []core.Vec2
}

// Span returns the segment's x-range.
func (s Segment) Span() (float64, float64) {
	if len(s.Vertices) < 2 {
		return 0, 0
	}
	return s.Vertices[0].X, s.Vertices[1].X
}

// BuildSegments emits one quad per consecutive pair of profile points.
// Segments are never merged, so every polygon stays convex.
func BuildSegments(profile Profile, fieldH float64) []Segment {
	if len(profile) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(profile)-1)
	for i := 0; i < len(profile)-1; i++ {
		a, b := profile[i], profile[i+1]
		segments = append(segments, Segment{
			Index: i,
			Vertices: []core.Vec2{
				a,
				b,
				core.V(b.X, fieldH),
				core.V(a.X, fieldH),
			},
		})
	}
	return segments
}
