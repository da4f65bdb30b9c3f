// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"qportal/math/vec"
)

// AreaID, PortalID and SurfaceID are stable integer handles. They stay
// valid across queries and survive serialization, unlike pointers into
// the system's storage.
type (
	AreaID    int32
	PortalID  int32
	SurfaceID int32
)

// Area is a convex region of the level and the unit of visibility
// grouping. It only knows its own boundary portals, not the full graph.
type Area struct {
	ID AreaID

	Mins, Maxs vec.Vec3
	Center     vec.Vec3
	Radius     float32

	Portals  []PortalID
	Surfaces []SurfaceID

	SkyArea     bool
	OutsideArea bool
	FogNum      int // -1 for none

	// sound properties, carried for the audio stage
	SoundAbsorption float32
	Reverb          vec.Vec3

	NumEntities int
	NumLights   int

	visFrame   uint64
	queryFrame uint64
}

// Contains reports whether the point is inside the area bounds.
func (a *Area) Contains(p vec.Vec3) bool {
	return p[0] >= a.Mins[0] && p[0] <= a.Maxs[0] &&
		p[1] >= a.Mins[1] && p[1] <= a.Maxs[1] &&
		p[2] >= a.Mins[2] && p[2] <= a.Maxs[2]
}

// Distance returns the distance from the point to the area bounds,
// zero if the point is inside.
func (a *Area) Distance(p vec.Vec3) float32 {
	var closest vec.Vec3
	for i := 0; i < 3; i++ {
		switch {
		case p[i] < a.Mins[i]:
			closest[i] = a.Mins[i]
		case p[i] > a.Maxs[i]:
			closest[i] = a.Maxs[i]
		default:
			closest[i] = p[i]
		}
	}
	d := vec.Sub(p, closest)
	return d.Length()
}

func (a *Area) updateExtents() {
	c := vec.Add(a.Mins, a.Maxs)
	a.Center = vec.Scale(0.5, c)
	e := vec.Sub(a.Maxs, a.Mins)
	a.Radius = e.Length() * 0.5
}

func overlaps(aMins, aMaxs, bMins, bMaxs vec.Vec3) bool {
	return aMins[0] <= bMaxs[0] && aMaxs[0] >= bMins[0] &&
		aMins[1] <= bMaxs[1] && aMaxs[1] >= bMins[1] &&
		aMins[2] <= bMaxs[2] && aMaxs[2] >= bMins[2]
}
