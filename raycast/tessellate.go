package raycast

import (
	"math"

	"chosenoffset.com/raylight/geom"
)

// TessellateCircle approximates a circle outline with straight segments.
// The segments form a closed loop: each segment ends where the next begins
// and the last closes back onto the first. Pure geometry, no rendering.
func TessellateCircle(center geom.Vec2, radius float64, segments int) []Segment {
	out := make([]Segment, 0, segments)

	pointAt := func(i int) geom.Vec2 {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		return geom.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}

	for i := 0; i < segments; i++ {
		out = append(out, Segment{A: pointAt(i), B: pointAt(i + 1)})
	}

	return out
}
