package raycast

import (
	"math"
	"testing"

	"chosenoffset.com/raylight/geom"
)

func TestTessellateCircle(t *testing.T) {
	center := geom.NewVec2(400, 300)
	radius := 50.0
	segments := TessellateCircle(center, radius, 32)

	if len(segments) != 32 {
		t.Fatalf("expected 32 segments, got %d", len(segments))
	}

	for i, seg := range segments {
		// Both endpoints on the circle.
		for _, p := range []geom.Vec2{seg.A, seg.B} {
			if d := p.Sub(center).Length(); math.Abs(d-radius) > 1e-9 {
				t.Fatalf("segment %d endpoint %v is %f from center, expected %f", i, p, d, radius)
			}
		}

		// Closed loop: each segment starts where the previous one ended.
		next := segments[(i+1)%len(segments)]
		if seg.B.Sub(next.A).Length() > 1e-9 {
			t.Fatalf("segment %d does not connect to segment %d: %v vs %v",
				i, (i+1)%len(segments), seg.B, next.A)
		}
	}
}

func TestTessellateCircle_SegmentCount(t *testing.T) {
	for _, n := range []int{3, 8, 64} {
		if got := len(TessellateCircle(geom.NewVec2(0, 0), 10, n)); got != n {
			t.Errorf("expected %d segments, got %d", n, got)
		}
	}
}
