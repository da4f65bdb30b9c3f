// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"qportal/math/vec"
)

// cullBox returns true if the box is completely outside the frustum.
func cullBox(frustum []Plane, mins, maxs vec.Vec3) bool {
	for i := range frustum {
		if frustum[i].CullsBox(mins, maxs) {
			return true
		}
	}
	return false
}

// portalInFrustum checks the portal polygon against the current plane
// set. The portal is rejected only if all vertices are behind one
// plane, so an actually visible portal is never discarded.
func portalInFrustum(p *Portal, frustum []Plane) bool {
	if cullBox(frustum, p.Mins, p.Maxs) {
		return false
	}
	for i := range frustum {
		pl := &frustum[i]
		behind := 0
		for _, pt := range p.Points {
			if pl.Distance(pt) < 0 {
				behind++
			}
		}
		if behind == len(p.Points) {
			return false
		}
	}
	return true
}

const edgePlaneEpsilon = 0.001

// portalFrustum returns the frustum narrowed through the portal: the
// parent planes plus up to maxPortalPlanes clip planes built from the
// portal edges and the eye, oriented so the portal interior is on the
// front side. The parent slice is never modified.
func portalFrustum(p *Portal, frustum []Plane, eye vec.Vec3) []Plane {
	out := make([]Plane, len(frustum), len(frustum)+maxPortalPlanes)
	copy(out, frustum)

	added := 0
	n := len(p.Points)
	for i := 0; i < n && added < maxPortalPlanes; i++ {
		v1 := vec.Sub(p.Points[i], eye)
		v2 := vec.Sub(p.Points[(i+1)%n], eye)
		normal := vec.Cross(v1, v2)
		if l := normal.Length(); l < edgePlaneEpsilon {
			continue // eye is on the edge line
		}
		normal = normal.Normalize()

		pl := Plane{
			Normal: normal,
			Dist:   vec.Dot(normal, eye),
		}
		side := pl.Distance(p.Center)
		if side < 0 {
			pl.Normal = vec.Scale(-1, pl.Normal)
			pl.Dist = -pl.Dist
			side = -side
		}
		if side < edgePlaneEpsilon {
			continue // eye lies in the portal plane, no useful wedge
		}
		pl.Type = TypeForNormal(pl.Normal)
		pl.UpdateSignBits()
		out = append(out, pl)
		added++
	}
	return out
}
