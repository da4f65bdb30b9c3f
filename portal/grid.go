// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"qportal/math/vec"
)

const (
	maxGridAxis  = 64
	gridCellSize = 128 // world units, before clamping to maxGridAxis
)

// areaGrid caches a likely containing area per cell. It is sized from
// the actual level bounds at build time. Cells are hints only; lookups
// must re-verify against the exact area bounds.
type areaGrid struct {
	mins  vec.Vec3
	cell  vec.Vec3 // cell extent per axis
	dim   [3]int
	cells []int32 // area index per cell, -1 for none
}

// BuildAreaGrid rebuilds the point-to-area lookup grid from the current
// area bounds. Call after all areas are added or after bounds changed.
func (s *System) BuildAreaGrid() {
	if len(s.areas) == 0 {
		s.grid = areaGrid{}
		return
	}

	mins := s.areas[0].Mins
	maxs := s.areas[0].Maxs
	for i := range s.areas[1:] {
		a := &s.areas[i+1]
		mins, _ = vec.MinMax(mins, a.Mins)
		_, maxs = vec.MinMax(maxs, a.Maxs)
	}

	g := areaGrid{mins: mins}
	size := vec.Sub(maxs, mins)
	for i := 0; i < 3; i++ {
		d := int(size[i]/gridCellSize) + 1
		if d > maxGridAxis {
			d = maxGridAxis
		}
		g.dim[i] = d
		g.cell[i] = size[i] / float32(d)
		if g.cell[i] <= 0 {
			g.cell[i] = 1
		}
	}
	g.cells = make([]int32, g.dim[0]*g.dim[1]*g.dim[2])
	for i := range g.cells {
		g.cells[i] = -1
	}

	// first area covering a cell wins, ties are resolved by the exact
	// containment test on lookup
	for i := range s.areas {
		a := &s.areas[i]
		lo, _ := g.coords(a.Mins)
		hi, _ := g.coords(a.Maxs)
		for z := lo[2]; z <= hi[2]; z++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for x := lo[0]; x <= hi[0]; x++ {
					c := g.index(x, y, z)
					if g.cells[c] < 0 {
						g.cells[c] = int32(i)
					}
				}
			}
		}
	}
	s.grid = g
}

func (g *areaGrid) index(x, y, z int) int {
	return (z*g.dim[1]+y)*g.dim[0] + x
}

// coords clamps the point into grid range; ok is false if the point is
// outside the grid on any axis.
func (g *areaGrid) coords(p vec.Vec3) ([3]int, bool) {
	var c [3]int
	ok := true
	for i := 0; i < 3; i++ {
		v := int((p[i] - g.mins[i]) / g.cell[i])
		if v < 0 {
			v, ok = 0, false
		}
		if v >= g.dim[i] {
			v, ok = g.dim[i]-1, false
		}
		c[i] = v
	}
	return c, ok
}

// lookup returns the cached area index for the cell containing p.
func (g *areaGrid) lookup(p vec.Vec3) (int32, bool) {
	if len(g.cells) == 0 {
		return -1, false
	}
	c, ok := g.coords(p)
	if !ok {
		return -1, false
	}
	idx := g.cells[g.index(c[0], c[1], c[2])]
	if idx < 0 {
		return -1, false
	}
	return idx, true
}
