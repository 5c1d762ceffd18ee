package raycast

import "chosenoffset.com/raylight/geom"

// Occluder is the static circular obstacle rays may intersect.
// It is constructed once at startup and never mutated; Radius must be > 0.
type Occluder struct {
	Center geom.Vec2
	Radius float64
}

// Hit describes the nearest forward intersection of a ray with the occluder.
// Distance is the ray parameter t; Point is origin + direction*t.
type Hit struct {
	Distance float64
	Point    geom.Vec2
}

// Segment represents a straight line segment in scene space
type Segment struct {
	A, B geom.Vec2
}

// RayResult is one ray of a cast fan: its unit direction plus the
// intersection outcome against the occluder.
type RayResult struct {
	Direction geom.Vec2
	Hit       Hit
	OK        bool
}
