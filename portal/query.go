// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"image"

	"github.com/google/uuid"

	"qportal/cvars"
)

// Query is the transient state of one visibility pass. It is owned by a
// single view-render step; two in-flight views need two queries. The
// zero value is unusable, call (*System).SetupQuery.
type Query struct {
	sys   *System
	level uuid.UUID
	View  View

	frustum  []Plane // the 6 base planes of the view
	maxDepth int
	frame    uint64

	// bookkeeping per recursion depth, for consumers and debugging
	chain        [MaxPortalDepth]*Portal
	scissorStack [MaxPortalDepth + 1]image.Rectangle

	visibleAreas   []*Area
	visiblePortals []*Portal

	areasChecked    int
	portalsChecked  int
	surfacesChecked int
	maxDepthReached int

	overflowWarned bool
}

// SetupQuery prepares q for one visibility pass with the given view.
// Allocations from a previous pass are reused. The frame generation is
// advanced so results of earlier passes do not leak into this one.
func (s *System) SetupQuery(q *Query, v View) {
	s.frameCount++

	q.sys = s
	q.level = s.levelID
	q.View = v
	q.frustum = append(q.frustum[:0], v.Frustum()...)

	q.maxDepth = int(cvars.RMaxPortalDepth.Value())
	if q.maxDepth < 1 {
		q.maxDepth = 1
	}
	if q.maxDepth > MaxPortalDepth {
		q.maxDepth = MaxPortalDepth
	}

	q.frame = s.frameCount
	for i := range q.chain {
		q.chain[i] = nil
	}
	q.scissorStack = [MaxPortalDepth + 1]image.Rectangle{}
	q.scissorStack[0] = image.Rect(0, 0, v.Width, v.Height)

	q.visibleAreas = q.visibleAreas[:0]
	q.visiblePortals = q.visiblePortals[:0]
	q.areasChecked = 0
	q.portalsChecked = 0
	q.surfacesChecked = 0
	q.maxDepthReached = 0
	q.overflowWarned = false
}

// VisibleAreas returns the areas reached by the last FindVisibleAreas
// pass, in traversal order. Valid until the next SetupQuery.
func (q *Query) VisibleAreas() []*Area {
	return q.visibleAreas
}

// VisiblePortals returns the portals crossed by the last pass. Each
// carries the scissor rectangle computed when it was reached.
func (q *Query) VisiblePortals() []*Portal {
	return q.visiblePortals
}

// VisibleSurfaces collects the surface handles of all visible areas for
// the surface-submission stage. Each surface is linked to exactly one
// area, so the result carries no duplicates.
func (q *Query) VisibleSurfaces() []SurfaceID {
	var out []SurfaceID
	for _, a := range q.visibleAreas {
		out = append(out, a.Surfaces...)
	}
	return out
}

// PortalChain returns the portal crossed at the given recursion depth
// of the deepest remaining traversal branch, nil at depths not reached.
func (q *Query) PortalChain(depth int) *Portal {
	if depth < 0 || depth >= MaxPortalDepth {
		return nil
	}
	return q.chain[depth]
}

// Scissor returns the scissor rectangle at the given recursion depth;
// depth 0 is the full viewport.
func (q *Query) Scissor(depth int) image.Rectangle {
	if depth < 0 || depth > MaxPortalDepth {
		return image.Rectangle{}
	}
	return q.scissorStack[depth]
}
