// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"testing"

	"qportal/math/vec"
)

func TestProject(t *testing.T) {
	v := lookPosX(vec.Vec3{0, 0, 0})

	tests := []struct {
		name   string
		p      vec.Vec3
		sx, sy float32
		depth  float32
	}{
		{"center", vec.Vec3{2, 0, 0}, 320, 240, 2},
		{"right edge", vec.Vec3{2, -2, 0}, 640, 240, 2},
		{"left edge", vec.Vec3{2, 2, 0}, 0, 240, 2},
		{"top edge", vec.Vec3{2, 0, 2}, 320, 0, 2},
		{"bottom edge", vec.Vec3{2, 0, -2}, 320, 480, 2},
	}
	for _, tc := range tests {
		sx, sy, depth, ok := v.project(tc.p)
		if !ok {
			t.Errorf("%s: project(%v) not ok", tc.name, tc.p)
			continue
		}
		if !close32(sx, tc.sx) || !close32(sy, tc.sy) || !close32(depth, tc.depth) {
			t.Errorf("%s: project(%v) = (%v,%v,%v), want (%v,%v,%v)",
				tc.name, tc.p, sx, sy, depth, tc.sx, tc.sy, tc.depth)
		}
	}
}

func TestProjectBehindEye(t *testing.T) {
	v := lookPosX(vec.Vec3{0, 0, 0})
	for _, p := range []vec.Vec3{{-1, 0, 0}, {0, 0, 0}, {0, 5, 5}} {
		if _, _, _, ok := v.project(p); ok {
			t.Errorf("project(%v) ok, want behind-eye rejection", p)
		}
	}
}

func TestFrustumContainment(t *testing.T) {
	v := lookPosX(vec.Vec3{0, 0, 0})
	planes := v.Frustum()
	if len(planes) != 6 {
		t.Fatalf("got %d planes, want 6", len(planes))
	}

	inside := func(p vec.Vec3) bool {
		for i := range planes {
			if planes[i].Distance(p) < 0 {
				return false
			}
		}
		return true
	}

	if !inside(vec.Vec3{5, 0, 0}) {
		t.Errorf("point on the view axis rejected")
	}
	if inside(vec.Vec3{-1, 0, 0}) {
		t.Errorf("point behind the eye accepted")
	}
	if inside(vec.Vec3{5, 10, 0}) {
		t.Errorf("point outside the side planes accepted")
	}
	if inside(vec.Vec3{2 * defaultFarClip, 0, 0}) {
		t.Errorf("point past the far clip accepted")
	}
}

func TestFrustumCullsBox(t *testing.T) {
	v := lookPosX(vec.Vec3{0, 0, 0})
	planes := v.Frustum()

	if cullBox(planes, vec.Vec3{4, -1, -1}, vec.Vec3{6, 1, 1}) {
		t.Errorf("box ahead of the view culled")
	}
	if !cullBox(planes, vec.Vec3{-6, -1, -1}, vec.Vec3{-4, 1, 1}) {
		t.Errorf("box behind the view not culled")
	}
	if !cullBox(planes, vec.Vec3{2, 20, -1}, vec.Vec3{4, 22, 1}) {
		t.Errorf("box far off to the side not culled")
	}
}

func close32(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}
