// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"qportal/math/vec"
)

// Plane types, axial planes can use a single component compare.
const (
	PlaneX = iota
	PlaneY
	PlaneZ
	PlaneNonAxial
)

type Plane struct {
	Normal   vec.Vec3
	Dist     float32
	Type     byte
	SignBits uint8
}

func TypeForNormal(n vec.Vec3) byte {
	switch {
	case n[0] == 1 || n[0] == -1:
		return PlaneX
	case n[1] == 1 || n[1] == -1:
		return PlaneY
	case n[2] == 1 || n[2] == -1:
		return PlaneZ
	default:
		return PlaneNonAxial
	}
}

func (p *Plane) UpdateSignBits() {
	p.SignBits = 0
	if p.Normal[0] < 0 {
		p.SignBits |= 1 << 0
	}
	if p.Normal[1] < 0 {
		p.SignBits |= 1 << 1
	}
	if p.Normal[2] < 0 {
		p.SignBits |= 1 << 2
	}
}

// Distance returns the signed distance of point to the plane. Positive
// values are on the front side.
func (p *Plane) Distance(point vec.Vec3) float32 {
	return vec.Dot(point, p.Normal) - p.Dist
}

// CullsBox returns true if the box is completely on the back side of
// the plane. The signbits select the box corner nearest to the front.
func (p *Plane) CullsBox(mins, maxs vec.Vec3) bool {
	n := p.Normal
	switch p.SignBits {
	case 0:
		return n[0]*maxs[0]+n[1]*maxs[1]+n[2]*maxs[2] < p.Dist
	case 1:
		return n[0]*mins[0]+n[1]*maxs[1]+n[2]*maxs[2] < p.Dist
	case 2:
		return n[0]*maxs[0]+n[1]*mins[1]+n[2]*maxs[2] < p.Dist
	case 3:
		return n[0]*mins[0]+n[1]*mins[1]+n[2]*maxs[2] < p.Dist
	case 4:
		return n[0]*maxs[0]+n[1]*maxs[1]+n[2]*mins[2] < p.Dist
	case 5:
		return n[0]*mins[0]+n[1]*maxs[1]+n[2]*mins[2] < p.Dist
	case 6:
		return n[0]*maxs[0]+n[1]*mins[1]+n[2]*mins[2] < p.Dist
	case 7:
		return n[0]*mins[0]+n[1]*mins[1]+n[2]*mins[2] < p.Dist
	}
	return false
}
