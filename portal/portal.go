// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"image"

	"qportal/math/vec"
)

// Portal states. Only an Open portal permits traversal; the other
// states are carried for doors, mirror views and teleporter views.
type State int

const (
	Open State = iota
	Closed
	Blocked // temporarily blocked by a door or entity
	Mirror
	Remote // teleporter or remote view
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Blocked:
		return "blocked"
	case Mirror:
		return "mirror"
	case Remote:
		return "remote"
	}
	return "unknown"
}

// Portal is a convex boundary polygon shared by exactly two areas.
type Portal struct {
	ID PortalID

	Points     []vec.Vec3
	Plane      Plane
	Mins, Maxs vec.Vec3
	Center     vec.Vec3
	Radius     float32

	Areas [2]AreaID

	State      State
	Visibility float32 // 0-1 transparency/openness
	TwoSided   bool

	// Scissor and depth range are cached from the most recent
	// traversal that reached this portal.
	Scissor  image.Rectangle
	MinDepth float32
	MaxDepth float32

	visFrame uint64
}

// otherArea returns the endpoint on the far side of from.
func (p *Portal) otherArea(from AreaID) AreaID {
	if p.Areas[0] == from {
		return p.Areas[1]
	}
	return p.Areas[0]
}

const planarEpsilon = 0.1

// checkWinding verifies the polygon is planar and convex. The frustum
// and scissor narrowing assume both, so malformed windings are refused
// at construction instead of producing bad culling during traversal.
func checkWinding(points []vec.Vec3, plane *Plane) bool {
	for _, pt := range points {
		d := vec.Dot(pt, plane.Normal) - plane.Dist
		if d > planarEpsilon || d < -planarEpsilon {
			return false
		}
	}
	n := len(points)
	for i := 0; i < n; i++ {
		e1 := vec.Sub(points[(i+1)%n], points[i])
		e2 := vec.Sub(points[(i+2)%n], points[(i+1)%n])
		c := vec.Cross(e1, e2)
		// all turns must agree with the winding normal
		if vec.Dot(c, plane.Normal) < -planarEpsilon {
			return false
		}
	}
	return true
}
