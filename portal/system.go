// SPDX-License-Identifier: GPL-2.0-or-later

// Package portal implements portal-based visibility determination.
// A level is partitioned into convex areas connected by portal
// polygons; each frame a query walks the portal graph outward from the
// camera's area, narrowing the view frustum and a screen-space scissor
// rectangle at every portal crossing. Only areas reached this way are
// handed to surface submission.
package portal

import (
	"github.com/google/uuid"

	"qportal/conlog"
	"qportal/cvars"
	"qportal/math/vec"
)

const (
	MaxAreas        = 1024
	MaxPortals      = 2048
	MaxAreaPortals  = 32
	MaxAreaSurfaces = 1024
	MaxPortalPoints = 32
	MaxPortalDepth  = 16
	MaxVisibleAreas = 256
	maxPortalPlanes = 4 // clip planes added per portal crossing
)

// System owns all area and portal storage for one loaded level plus
// the spatial lookup grid. The graph is written during level load and
// read-only during traversal.
type System struct {
	areas   []Area
	portals []Portal
	grid    areaGrid

	// levelID changes on every Clear so queries prepared against an
	// unloaded level can be detected.
	levelID uuid.UUID

	frameCount uint64
	lockedArea AreaID // debug PVS lock, -1 for none

	totalAreasVisible     int
	totalPortalsTraversed int
	maxDepthReached       int
}

func NewSystem() *System {
	s := &System{
		// backing arrays are never reallocated so area and portal
		// pointers handed out stay valid for the level lifetime
		areas:      make([]Area, 0, MaxAreas),
		portals:    make([]Portal, 0, MaxPortals),
		levelID:    uuid.Must(uuid.NewV7()),
		lockedArea: -1,
	}
	return s
}

// Clear drops all areas and portals, typically between level loads.
// The backing storage is kept.
func (s *System) Clear() {
	for i := range s.areas {
		a := &s.areas[i]
		a.Portals = a.Portals[:0]
		a.Surfaces = a.Surfaces[:0]
	}
	s.areas = s.areas[:0]
	s.portals = s.portals[:0]
	s.grid = areaGrid{}
	s.levelID = uuid.Must(uuid.NewV7())
	s.lockedArea = -1
	s.totalAreasVisible = 0
	s.totalPortalsTraversed = 0
	s.maxDepthReached = 0
}

// LevelID identifies the currently loaded level generation.
func (s *System) LevelID() uuid.UUID {
	return s.levelID
}

func (s *System) NumAreas() int {
	return len(s.areas)
}

func (s *System) NumPortals() int {
	return len(s.portals)
}

// Area resolves an area handle, nil if out of range.
func (s *System) Area(id AreaID) *Area {
	if id < 0 || int(id) >= len(s.areas) {
		return nil
	}
	return &s.areas[id]
}

// Portal resolves a portal handle, nil if out of range.
func (s *System) Portal(id PortalID) *Portal {
	if id < 0 || int(id) >= len(s.portals) {
		return nil
	}
	return &s.portals[id]
}

// AddArea adds an area with the given bounds. Returns nil if the area
// table is full.
func (s *System) AddArea(mins, maxs vec.Vec3) *Area {
	if len(s.areas) >= MaxAreas {
		conlog.Printf("AddArea: MaxAreas reached\n")
		return nil
	}
	mins, maxs = vec.MinMax(mins, maxs)
	s.areas = append(s.areas, Area{
		ID:     AreaID(len(s.areas)),
		Mins:   mins,
		Maxs:   maxs,
		FogNum: -1,
	})
	a := &s.areas[len(s.areas)-1]
	a.updateExtents()
	return a
}

// CreatePortal creates a portal polygon connecting two areas and
// registers it with both. All failures warn and return nil, the system
// keeps running with the portals it has.
func (s *System) CreatePortal(points []vec.Vec3, area1, area2 AreaID) *Portal {
	if len(s.portals) >= MaxPortals {
		conlog.Printf("CreatePortal: MaxPortals reached\n")
		return nil
	}
	if s.Area(area1) == nil || s.Area(area2) == nil {
		conlog.Printf("CreatePortal: invalid area numbers %d,%d\n", area1, area2)
		return nil
	}
	if area1 == area2 {
		conlog.Printf("CreatePortal: portal connects area %d to itself\n", area1)
		return nil
	}
	if len(points) < 3 {
		conlog.Printf("CreatePortal: degenerate winding with %d points\n", len(points))
		return nil
	}
	if len(points) > MaxPortalPoints {
		conlog.Printf("CreatePortal: winding with %d points exceeds MaxPortalPoints\n", len(points))
		return nil
	}

	var plane Plane
	v1 := vec.Sub(points[1], points[0])
	v2 := vec.Sub(points[2], points[0])
	n := vec.Cross(v1, v2)
	if n.Length() == 0 {
		conlog.Printf("CreatePortal: colinear winding\n")
		return nil
	}
	plane.Normal = n.Normalize()
	plane.Dist = vec.Dot(plane.Normal, points[0])
	plane.Type = TypeForNormal(plane.Normal)
	plane.UpdateSignBits()

	if !checkWinding(points, &plane) {
		conlog.Printf("CreatePortal: winding is not planar convex\n")
		return nil
	}

	s.portals = append(s.portals, Portal{
		ID:         PortalID(len(s.portals)),
		Points:     append([]vec.Vec3(nil), points...),
		Plane:      plane,
		Areas:      [2]AreaID{area1, area2},
		State:      Open,
		Visibility: 1,
		TwoSided:   true,
	})
	p := &s.portals[len(s.portals)-1]

	p.Mins = points[0]
	p.Maxs = points[0]
	var center vec.Vec3
	for _, pt := range points {
		p.Mins, _ = vec.MinMax(p.Mins, pt)
		_, p.Maxs = vec.MinMax(p.Maxs, pt)
		center = vec.Add(center, pt)
	}
	p.Center = vec.Scale(1/float32(len(points)), center)
	for _, pt := range points {
		d := vec.Sub(pt, p.Center)
		if l := d.Length(); l > p.Radius {
			p.Radius = l
		}
	}

	s.linkPortal(p, area1)
	s.linkPortal(p, area2)
	return p
}

func (s *System) linkPortal(p *Portal, id AreaID) {
	a := s.Area(id)
	if len(a.Portals) >= MaxAreaPortals {
		conlog.Printf("CreatePortal: area %d has MaxAreaPortals portals, dropping\n", id)
		return
	}
	a.Portals = append(a.Portals, p.ID)
}

// SetPortalState changes the traversal state of a portal.
func (s *System) SetPortalState(id PortalID, state State) {
	p := s.Portal(id)
	if p == nil {
		conlog.Printf("SetPortalState: invalid portal %d\n", id)
		return
	}
	p.State = state
}

func (s *System) OpenPortal(id PortalID) {
	s.SetPortalState(id, Open)
}

func (s *System) ClosePortal(id PortalID) {
	s.SetPortalState(id, Closed)
}

// UsePortalCulling reports whether traversal can do better than the
// mark-everything fallback.
func (s *System) UsePortalCulling() bool {
	return cvars.RUsePortals.Bool() && len(s.areas) > 0 && len(s.portals) > 0
}

// PointInArea finds the area containing a point, nil if the point lies
// in no area. The grid is only a cache; a hit is re-verified against
// the exact bounds because cells near boundaries can touch several
// areas.
func (s *System) PointInArea(point vec.Vec3) *Area {
	if idx, ok := s.grid.lookup(point); ok {
		a := &s.areas[idx]
		if a.Contains(point) {
			return a
		}
	}
	for i := range s.areas {
		if s.areas[i].Contains(point) {
			return &s.areas[i]
		}
	}
	return nil
}

// BoxInAreas collects up to maxAreas areas whose bounds intersect the
// box.
func (s *System) BoxInAreas(mins, maxs vec.Vec3, maxAreas int) []*Area {
	var out []*Area
	for i := range s.areas {
		if len(out) >= maxAreas {
			break
		}
		a := &s.areas[i]
		if overlaps(mins, maxs, a.Mins, a.Maxs) {
			out = append(out, a)
		}
	}
	return out
}

// LinkSurfaceToArea assigns a surface to the area containing the center
// of its bounds. Returns the chosen area, nil if the center lies
// outside all areas.
func (s *System) LinkSurfaceToArea(surf SurfaceID, mins, maxs vec.Vec3) *Area {
	c := vec.Scale(0.5, vec.Add(mins, maxs))
	a := s.PointInArea(c)
	if a == nil {
		return nil
	}
	if len(a.Surfaces) >= MaxAreaSurfaces {
		conlog.Printf("LinkSurfaceToArea: area %d surface list full, dropping\n", a.ID)
		return a
	}
	a.Surfaces = append(a.Surfaces, surf)
	return a
}

// UpdateAreaBounds recomputes an area's bounds as the union of the
// given surface bounds. No-op when the list is empty. The caller is
// expected to rebuild the area grid afterwards.
func (s *System) UpdateAreaBounds(id AreaID, surfBounds []Bounds) {
	a := s.Area(id)
	if a == nil || len(surfBounds) == 0 {
		return
	}
	mins, maxs := surfBounds[0].Mins, surfBounds[0].Maxs
	for _, b := range surfBounds[1:] {
		mins, _ = vec.MinMax(mins, b.Mins)
		_, maxs = vec.MinMax(maxs, b.Maxs)
	}
	a.Mins, a.Maxs = mins, maxs
	a.updateExtents()
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Mins, Maxs vec.Vec3
}

// LockedArea returns the debug PVS-locked area, nil when unlocked.
func (s *System) LockedArea() *Area {
	return s.Area(s.lockedArea)
}

// UnlockArea drops the debug PVS lock.
func (s *System) UnlockArea() {
	s.lockedArea = -1
}
