// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/chewxy/math32"

	"qportal/math/vec"
)

// View carries the per-view camera parameters the view-setup stage
// produces. Axes must be orthonormal, the fields of view are in
// degrees.
type View struct {
	Origin  vec.Vec3
	Forward vec.Vec3
	Right   vec.Vec3
	Up      vec.Vec3

	FovX, FovY float32
	Near, Far  float32

	Width, Height int
}

const defaultFarClip = 16384

func deg2rad(a float32) float32 {
	a /= 180
	a *= math32.Pi
	return a
}

// turnVector builds a frustum side plane by rotating forward towards
// side by angle degrees.
func (v *View) turnVector(forward, side vec.Vec3, angle float32) Plane {
	ar := deg2rad(angle)
	scaleSide, scaleForward := math32.Sincos(ar)

	var p Plane
	p.Normal = vec.Add(vec.Scale(scaleForward, forward), vec.Scale(scaleSide, side))
	p.Dist = vec.Dot(v.Origin, p.Normal)
	p.Type = TypeForNormal(p.Normal)
	p.UpdateSignBits()
	return p
}

// Frustum returns the six base planes of the view volume. Everything
// inside the volume is on the front side of every plane.
func (v *View) Frustum() []Plane {
	planes := make([]Plane, 6)
	planes[0] = v.turnVector(v.Forward, v.Right, v.FovX/2-90) // left
	planes[1] = v.turnVector(v.Forward, v.Right, 90-v.FovX/2) // right
	planes[2] = v.turnVector(v.Forward, v.Up, 90-v.FovY/2)    // bottom
	planes[3] = v.turnVector(v.Forward, v.Up, v.FovY/2-90)    // top

	near := &planes[4]
	near.Normal = v.Forward
	near.Dist = vec.Dot(v.Origin, v.Forward) + v.Near
	near.Type = TypeForNormal(near.Normal)
	near.UpdateSignBits()

	farClip := v.Far
	if farClip <= 0 {
		farClip = defaultFarClip
	}
	far := &planes[5]
	far.Normal = vec.Scale(-1, v.Forward)
	far.Dist = vec.Dot(far.Normal, v.Origin) - farClip
	far.Type = TypeForNormal(far.Normal)
	far.UpdateSignBits()

	return planes
}

// project maps a world point to pixel coordinates. The depth return is
// the distance along the view forward axis. ok is false for points at
// or behind the eye plane, those have no meaningful projection.
func (v *View) project(p vec.Vec3) (sx, sy, depth float32, ok bool) {
	d := vec.Sub(p, v.Origin)
	df := vec.Dot(d, v.Forward)
	limit := v.Near
	if limit <= 0 {
		limit = 0.001
	}
	if df < limit {
		return 0, 0, 0, false
	}
	dr := vec.Dot(d, v.Right)
	du := vec.Dot(d, v.Up)

	tx := math32.Tan(deg2rad(v.FovX) / 2)
	ty := math32.Tan(deg2rad(v.FovY) / 2)
	sx = (0.5 + 0.5*dr/(df*tx)) * float32(v.Width)
	sy = (0.5 - 0.5*du/(df*ty)) * float32(v.Height)
	return sx, sy, df, true
}
