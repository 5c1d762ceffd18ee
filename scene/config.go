// Package scene holds the scene constants and the light-drag state machine.
package scene

import (
	"chosenoffset.com/raylight/geom"
	"chosenoffset.com/raylight/raycast"
)

// Config holds the fixed scene constants. There is deliberately no file or
// flag configuration for these; DefaultConfig is the one scene that exists.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	OccluderCenter geom.Vec2
	OccluderRadius float64

	// PickRadius is the distance within which a pointer press grabs the light.
	PickRadius float64

	// RayCount rays are cast per frame, evenly spaced over the full circle.
	RayCount int

	// RayInfinity is the drawn length of rays that miss the occluder.
	RayInfinity float64

	// CircleSegments is the tessellation count for circle outlines.
	CircleSegments int
}

// DefaultConfig returns the recognized scene constants.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    800,
		ScreenHeight:   600,
		OccluderCenter: geom.NewVec2(400, 300),
		OccluderRadius: 50,
		PickRadius:     20,
		RayCount:       360,
		RayInfinity:    1000,
		CircleSegments: 32,
	}
}

// Occluder returns the scene's occluder as the raycast package sees it.
func (c Config) Occluder() raycast.Occluder {
	return raycast.Occluder{Center: c.OccluderCenter, Radius: c.OccluderRadius}
}
