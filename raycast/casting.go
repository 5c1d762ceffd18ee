package raycast

import (
	"math"

	"chosenoffset.com/raylight/geom"
)

// epsilon rejects the degenerate root when the ray origin sits on or very
// near the occluder boundary, which would otherwise self-intersect.
const epsilon = 0.001

// Intersect computes the nearest forward intersection of a ray with the
// occluder. dir must be unit length; the quadratic coefficient is still
// computed from dir rather than assumed to be 1.
//
// Only the near root of the quadratic is tested, so a ray whose origin lies
// inside the occluder reports no hit even though its line crosses the
// boundary behind the far root.
func Intersect(origin, dir geom.Vec2, occ Occluder) (Hit, bool) {
	// Solve |origin + t*dir - center|^2 = radius^2 for t:
	// at^2 + bt + c = 0
	oc := origin.Sub(occ.Center)
	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - occ.Radius*occ.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	// Near root: first boundary crossing along the ray's forward direction.
	// A tangent ray has a repeated root and counts as a hit.
	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t <= epsilon {
		return Hit{}, false
	}

	return Hit{
		Distance: t,
		Point:    origin.Add(dir.Scale(t)),
	}, true
}

// CastFan casts count rays from origin at evenly spaced angles over the full
// circle and intersects each against the occluder. Directions are unit length
// by construction.
func CastFan(origin geom.Vec2, count int, occ Occluder) []RayResult {
	results := make([]RayResult, 0, count)

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		dir := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}

		hit, ok := Intersect(origin, dir, occ)
		results = append(results, RayResult{
			Direction: dir,
			Hit:       hit,
			OK:        ok,
		})
	}

	return results
}
