// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"image"

	"qportal/conlog"
	"qportal/cvars"
)

// FindVisibleAreas runs the visibility pass for the view the query was
// set up with. The camera's own area is always visible; everything
// else must be reached through open portals that survive both the
// frustum and the scissor test.
func (q *Query) FindVisibleAreas() {
	s := q.sys
	if s == nil {
		return
	}
	if q.level != s.levelID {
		conlog.Printf("FindVisibleAreas: query is stale, level was reloaded\n")
		return
	}

	viewArea := q.resolveViewArea()
	if viewArea == nil {
		return // no areas to render
	}

	q.markAreaVisible(viewArea, nil)

	if s.UsePortalCulling() {
		q.recursePortals(viewArea, 0, q.frustum, q.scissorStack[0])
	} else {
		// no culling, mark every area visible
		for i := range s.areas {
			q.markAreaVisible(&s.areas[i], nil)
		}
	}

	s.totalAreasVisible = len(q.visibleAreas)
	s.totalPortalsTraversed = len(q.visiblePortals)
	if q.maxDepthReached > s.maxDepthReached {
		s.maxDepthReached = q.maxDepthReached
	}
}

// resolveViewArea finds the area the camera is in. A camera outside all
// areas falls back to the nearest area by bounds distance; that is a
// heuristic and can pick an occluded area.
func (q *Query) resolveViewArea() *Area {
	s := q.sys

	if cvars.RLockPVS.Bool() {
		if locked := s.LockedArea(); locked != nil {
			return locked
		}
	}

	viewArea := s.PointInArea(q.View.Origin)
	if viewArea == nil {
		minDist := float32(0)
		for i := range s.areas {
			d := s.areas[i].Distance(q.View.Origin)
			if viewArea == nil || d < minDist {
				minDist = d
				viewArea = &s.areas[i]
			}
		}
	}

	if cvars.RLockPVS.Bool() {
		if viewArea != nil {
			s.lockedArea = viewArea.ID
		}
	}
	return viewArea
}

// recursePortals walks outward through the portals of area. The frustum
// and scissor for this call frame are values; children get narrowed
// copies so siblings are always evaluated against the parent state.
func (q *Query) recursePortals(area *Area, depth int, frustum []Plane, scissor image.Rectangle) {
	if depth > q.maxDepthReached {
		q.maxDepthReached = depth
	}
	if depth >= q.maxDepth {
		return // pruned, not an error
	}
	q.areasChecked++

	for _, pid := range area.Portals {
		p := q.sys.Portal(pid)
		if p == nil || p.State != Open {
			continue
		}
		// a one-sided portal is only traversable from its front side
		if !p.TwoSided && p.Plane.Distance(q.View.Origin) < 0 {
			continue
		}
		q.portalsChecked++

		if !portalInFrustum(p, frustum) {
			continue
		}

		next := q.sys.Area(p.otherArea(area.ID))
		if next == nil || next.visFrame == q.frame {
			continue // already processed, breaks graph cycles
		}

		// the scissor test is stricter than the plane test: a portal
		// can be inside the frustum yet project to an empty rectangle
		childScissor, minDepth, maxDepth := q.portalScissor(p, scissor)
		if childScissor.Empty() {
			continue
		}

		childFrustum := portalFrustum(p, frustum, q.View.Origin)

		q.chain[depth] = p
		q.scissorStack[depth+1] = childScissor

		p.Scissor = childScissor
		p.MinDepth = minDepth
		p.MaxDepth = maxDepth
		p.visFrame = q.frame
		if len(q.visiblePortals) < MaxPortals {
			q.visiblePortals = append(q.visiblePortals, p)
		}

		q.markAreaVisible(next, p)

		q.recursePortals(next, depth+1, childFrustum, childScissor)
	}
}

// markAreaVisible tags the area with the current frame generation and
// appends it to the result set.
func (q *Query) markAreaVisible(a *Area, through *Portal) {
	if a == nil || a.visFrame == q.frame {
		return
	}
	a.visFrame = q.frame
	a.queryFrame = q.frame

	if len(q.visibleAreas) < MaxVisibleAreas {
		q.visibleAreas = append(q.visibleAreas, a)
	} else if !q.overflowWarned {
		conlog.Printf("FindVisibleAreas: MaxVisibleAreas reached, dropping\n")
		q.overflowWarned = true
	}
	q.surfacesChecked += len(a.Surfaces)
}
