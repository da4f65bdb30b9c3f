// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"testing"

	"qportal/math/vec"
)

func TestTypeForNormal(t *testing.T) {
	tests := []struct {
		n    vec.Vec3
		want byte
	}{
		{vec.Vec3{1, 0, 0}, PlaneX},
		{vec.Vec3{-1, 0, 0}, PlaneX},
		{vec.Vec3{0, 1, 0}, PlaneY},
		{vec.Vec3{0, 0, -1}, PlaneZ},
		{vec.Vec3{0.707, 0.707, 0}, PlaneNonAxial},
	}
	for _, tc := range tests {
		if got := TypeForNormal(tc.n); got != tc.want {
			t.Errorf("TypeForNormal(%v) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestSignBits(t *testing.T) {
	tests := []struct {
		n    vec.Vec3
		want uint8
	}{
		{vec.Vec3{1, 1, 1}, 0},
		{vec.Vec3{-1, 1, 1}, 1},
		{vec.Vec3{1, -1, 1}, 2},
		{vec.Vec3{1, 1, -1}, 4},
		{vec.Vec3{-1, -1, -1}, 7},
	}
	for _, tc := range tests {
		p := Plane{Normal: tc.n}
		p.UpdateSignBits()
		if p.SignBits != tc.want {
			t.Errorf("SignBits(%v) = %d, want %d", tc.n, p.SignBits, tc.want)
		}
	}
}

func TestCullsBox(t *testing.T) {
	// plane x = 1, front side towards +x
	p := Plane{Normal: vec.Vec3{1, 0, 0}, Dist: 1}
	p.UpdateSignBits()

	tests := []struct {
		mins, maxs vec.Vec3
		want       bool
	}{
		{vec.Vec3{2, 0, 0}, vec.Vec3{3, 1, 1}, false},  // fully in front
		{vec.Vec3{-3, 0, 0}, vec.Vec3{-2, 1, 1}, true}, // fully behind
		{vec.Vec3{0, 0, 0}, vec.Vec3{2, 1, 1}, false},  // straddling
	}
	for _, tc := range tests {
		if got := p.CullsBox(tc.mins, tc.maxs); got != tc.want {
			t.Errorf("CullsBox(%v,%v) = %v, want %v", tc.mins, tc.maxs, got, tc.want)
		}
	}

	// negated normal flips the culled side
	n := Plane{Normal: vec.Vec3{-1, 0, 0}, Dist: -1}
	n.UpdateSignBits()
	if !n.CullsBox(vec.Vec3{2, 0, 0}, vec.Vec3{3, 1, 1}) {
		t.Errorf("box in front of x=1 not culled by the flipped plane")
	}
	if n.CullsBox(vec.Vec3{-3, 0, 0}, vec.Vec3{-2, 1, 1}) {
		t.Errorf("box behind x=1 culled by the flipped plane")
	}
}

func TestPlaneDistance(t *testing.T) {
	p := Plane{Normal: vec.Vec3{0, 0, 1}, Dist: 2}
	if d := p.Distance(vec.Vec3{0, 0, 5}); d != 3 {
		t.Errorf("Distance = %v, want 3", d)
	}
	if d := p.Distance(vec.Vec3{7, -3, 0}); d != -2 {
		t.Errorf("Distance = %v, want -2", d)
	}
}
