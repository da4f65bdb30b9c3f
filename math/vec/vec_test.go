// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Errorf("Vector construction is not obvious")
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, NULL)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if v != got {
		t.Errorf("Substracting a null vector changed the vector")
	}
	got = Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Scale(2, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Scale(2,%v) = %v want %v", v, got, want)
	}
	got = Scale(0, v)
	if got != NULL {
		t.Errorf("Scale(0,%v) = %v want %v", v, got, NULL)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	got := Dot(a, b)
	var want float32 = 12
	if got != want {
		t.Errorf("Dot(%v,%v) = %v want %v", a, b, got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := Cross(x, y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Cross(%v,%v) = %v want %v", x, y, got, want)
	}
	got = Cross(y, x)
	want = Vec3{0, 0, -1}
	if got != want {
		t.Errorf("Cross(%v,%v) = %v want %v", y, x, got, want)
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, 5, 3}
	b := Vec3{4, 2, 3}
	gotMin, gotMax := MinMax(a, b)
	wantMin := Vec3{1, 2, 3}
	wantMax := Vec3{4, 5, 3}
	if gotMin != wantMin || gotMax != wantMax {
		t.Errorf("MinMax(%v,%v) = %v,%v want %v,%v",
			a, b, gotMin, gotMax, wantMin, wantMax)
	}
}

func TestEqual(t *testing.T) {
	v1 := Vec3{2, 3, 4}
	v2 := Vec3{4, 3, 2}
	if v1 != v1 {
		t.Errorf("Vectors are not considered equal to them self")
	}
	if v1 == v2 {
		t.Errorf("Vectors %v and %v are considered equal", v1, v2)
	}
}
