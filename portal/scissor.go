// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"image"
)

// portalScissor projects the portal corners to screen space, takes
// their bounding rectangle and intersects it with the parent scissor.
// An empty result means the portal has no screen area under the parent
// scissor. When a corner has no projection (at or behind the eye
// plane) the portal can cover anything under the parent rectangle, so
// the parent is returned unchanged; shrinking on partial data could
// cut off visible geometry.
func (q *Query) portalScissor(p *Portal, parent image.Rectangle) (image.Rectangle, float32, float32) {
	var (
		minX, minY float32
		maxX, maxY float32
		minD, maxD float32
		first      = true
	)
	for _, pt := range p.Points {
		sx, sy, depth, ok := q.View.project(pt)
		if !ok {
			return parent, 0, 0
		}
		if first {
			minX, maxX = sx, sx
			minY, maxY = sy, sy
			minD, maxD = depth, depth
			first = false
			continue
		}
		minX = min(minX, sx)
		maxX = max(maxX, sx)
		minY = min(minY, sy)
		maxY = max(maxY, sy)
		minD = min(minD, depth)
		maxD = max(maxD, depth)
	}
	if first {
		// no points, nothing to draw through
		return image.Rectangle{}, 0, 0
	}
	r := image.Rect(int(minX), int(minY), int(maxX)+1, int(maxY)+1)
	return r.Intersect(parent), minD, maxD
}
