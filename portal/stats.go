// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"fmt"
)

// Per-query counters. Diagnostic only, they never influence the
// traversal outcome.

func (q *Query) AreasChecked() int {
	return q.areasChecked
}

func (q *Query) PortalsChecked() int {
	return q.portalsChecked
}

func (q *Query) SurfacesChecked() int {
	return q.surfacesChecked
}

// MaxDepthReached is the deepest recursion level the last pass entered.
func (q *Query) MaxDepthReached() int {
	return q.maxDepthReached
}

// StatsString summarizes the system state for the console.
func (s *System) StatsString() string {
	return fmt.Sprintf(
		"Portal System Statistics:\n"+
			"  Areas: %d / %d\n"+
			"  Portals: %d / %d\n"+
			"  Visible areas: %d\n"+
			"  Portals traversed: %d\n"+
			"  Max depth reached: %d\n",
		len(s.areas), MaxAreas,
		len(s.portals), MaxPortals,
		s.totalAreasVisible,
		s.totalPortalsTraversed,
		s.maxDepthReached)
}
