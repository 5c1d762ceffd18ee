package raycast

import (
	"math"
	"testing"

	"chosenoffset.com/raylight/geom"
)

func TestIntersect_Miss(t *testing.T) {
	occ := Occluder{Center: geom.NewVec2(400, 300), Radius: 50}

	tests := []struct {
		name   string
		origin geom.Vec2
		dir    geom.Vec2
	}{
		{"line passes above the disk", geom.NewVec2(300, 200), geom.NewVec2(1, 0)},
		{"occluder entirely behind the ray", geom.NewVec2(300, 300), geom.NewVec2(-1, 0)},
		{"perpendicular offset greater than radius", geom.NewVec2(300, 360), geom.NewVec2(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := Intersect(tt.origin, tt.dir, occ); ok {
				t.Errorf("expected miss, got hit at t=%f", hit.Distance)
			}
		})
	}
}

func TestIntersect_Hit(t *testing.T) {
	occ := Occluder{Center: geom.NewVec2(400, 300), Radius: 50}

	tests := []struct {
		name      string
		origin    geom.Vec2
		dir       geom.Vec2
		expectedT float64
	}{
		{"secant entering the near edge", geom.NewVec2(300, 300), geom.NewVec2(1, 0), 50},
		{"secant from above", geom.NewVec2(400, 100), geom.NewVec2(0, 1), 150},
		{"tangent at perpendicular offset equal to radius", geom.NewVec2(300, 250), geom.NewVec2(1, 0), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Intersect(tt.origin, tt.dir, occ)
			if !ok {
				t.Fatal("expected hit, got miss")
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}

			// The hit point must lie on the circle boundary.
			boundary := hit.Point.Sub(occ.Center).Length()
			if math.Abs(boundary-occ.Radius) > 1e-3 {
				t.Errorf("hit point %v is %f from center, expected %f", hit.Point, boundary, occ.Radius)
			}
		})
	}
}

func TestIntersect_OriginInsideOccluder(t *testing.T) {
	// Only the near root is tested, so a ray starting inside the occluder
	// reports no hit. Origin exactly at the center is the extreme case:
	// the near root is -radius, well below epsilon.
	occ := Occluder{Center: geom.NewVec2(400, 300), Radius: 50}

	if hit, ok := Intersect(geom.NewVec2(400, 300), geom.NewVec2(1, 0), occ); ok {
		t.Errorf("expected no hit from occluder center, got hit at t=%f", hit.Distance)
	}
}

func TestIntersect_Idempotent(t *testing.T) {
	occ := Occluder{Center: geom.NewVec2(400, 300), Radius: 50}
	origin := geom.NewVec2(250, 280)
	dir := geom.NewVec2(1, 0.1).Normalize()

	first, firstOK := Intersect(origin, dir, occ)
	second, secondOK := Intersect(origin, dir, occ)

	if firstOK != secondOK || first != second {
		t.Errorf("identical inputs produced different results: %v/%t vs %v/%t",
			first, firstOK, second, secondOK)
	}
}

func TestCastFan_LightOutsideOccluder(t *testing.T) {
	occ := Occluder{Center: geom.NewVec2(400, 300), Radius: 50}
	results := CastFan(geom.NewVec2(300, 300), 360, occ)

	if len(results) != 360 {
		t.Fatalf("expected 360 rays, got %d", len(results))
	}

	// Ray 0 points along +x straight at the occluder and must enter the
	// near edge at distance 50. Ray 180 points along -x, away from it.
	toward := results[0]
	if !toward.OK {
		t.Fatal("ray at angle 0 should hit the occluder")
	}
	if math.Abs(toward.Hit.Distance-50) > 1e-9 {
		t.Errorf("ray at angle 0: expected t=50, got t=%f", toward.Hit.Distance)
	}

	if away := results[180]; away.OK {
		t.Errorf("ray at angle pi should miss, hit at t=%f", away.Hit.Distance)
	}

	// Every hit point must lie on the boundary, every direction must be unit.
	for i, r := range results {
		if math.Abs(r.Direction.Length()-1) > 1e-12 {
			t.Fatalf("ray %d direction is not unit length: %v", i, r.Direction)
		}
		if r.OK {
			boundary := r.Hit.Point.Sub(occ.Center).Length()
			if math.Abs(boundary-occ.Radius) > 1e-3 {
				t.Fatalf("ray %d hit point off boundary by %g", i, boundary-occ.Radius)
			}
		}
	}
}

func TestCastFan_LightAtOccluderCenter(t *testing.T) {
	// Origin at the center is inside the occluder for every ray in the fan,
	// so all 360 report no hit (near-root-only policy).
	occ := Occluder{Center: geom.NewVec2(400, 300), Radius: 50}
	results := CastFan(geom.NewVec2(400, 300), 360, occ)

	for i, r := range results {
		if r.OK {
			t.Fatalf("ray %d: expected no hit from inside occluder, got t=%f", i, r.Hit.Distance)
		}
	}
}
