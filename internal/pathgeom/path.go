package pathgeom

import (
	"sort"

	"github.com/san-kum/trajplan/internal/vecn"
)

// segmentJoinTolerance is the gap below which a linear lead-in to a blend
// is considered zero-length and skipped.
const segmentJoinTolerance = 1e-6

// SwitchingPoint marks an arc length at which the active kinematic
// constraint may change: either a smooth minimum of a limit curve
// (Discontinuous == false) or a curvature discontinuity at a segment
// boundary (Discontinuous == true).
type SwitchingPoint struct {
	Pos           float64
	Discontinuous bool
}

// Path is an ordered, arc-length parameterised sequence of Segments built
// from a polyline of waypoints, optionally rounded at interior corners by
// circular blends bounded by a maximum deviation tolerance.
type Path struct {
	Segments        []Segment
	Length          float64
	switchingPoints []SwitchingPoint
}

// Build constructs a Path from waypoints. Waypoints with fewer than two
// entries produce an empty, zero-length Path. maxDeviation == 0 disables
// blending entirely: the path is the exact polyline through waypoints,
// coming to a geometric corner (not necessarily a velocity stop, that is
// decided later by the phase-plane solver) at every interior waypoint.
func Build(waypoints []vecn.Vector, maxDeviation float64) *Path {
	p := &Path{}
	n := len(waypoints)
	if n < 2 {
		return p
	}

	startConfig := waypoints[0].Clone()
	for i := 1; i < n; i++ {
		if i < n-1 && maxDeviation > 0 {
			blend := NewCircularBlend(waypoints[i-1], waypoints[i], waypoints[i+1], maxDeviation)
			blendEntry := blend.Config(0)
			if startConfig.Sub(blendEntry).Norm() > segmentJoinTolerance {
				p.Segments = append(p.Segments, NewLinear(startConfig, blendEntry))
			}
			p.Segments = append(p.Segments, blend)
			startConfig = blend.Config(blend.Length)
		} else {
			p.Segments = append(p.Segments, NewLinear(startConfig, waypoints[i]))
			startConfig = waypoints[i].Clone()
		}
	}

	p.finalize()
	return p
}

// finalize assigns cumulative segment positions and builds the merged,
// strictly increasing switching-point list.
func (p *Path) finalize() {
	pos := 0.0
	var pts []SwitchingPoint

	for i := range p.Segments {
		seg := &p.Segments[i]
		seg.Position = pos

		for _, local := range seg.LocalSwitchingPoints() {
			pts = append(pts, SwitchingPoint{Pos: pos + local})
		}

		boundary := pos + seg.Length
		for len(pts) > 0 && pts[len(pts)-1].Pos >= boundary {
			pts = pts[:len(pts)-1]
		}
		pts = append(pts, SwitchingPoint{Pos: boundary, Discontinuous: true})

		pos = boundary
	}

	// The path's own end is not a switching point.
	if len(pts) > 0 {
		pts = pts[:len(pts)-1]
	}

	p.Length = pos
	p.switchingPoints = pts
}

// GetPathSegment locates the segment containing absolute arc length s and
// returns it alongside the corresponding local arc length. s is clamped
// into [0, Length] first. Segments are sorted by Position, so this uses
// binary search rather than the reference's linear scan (permitted by
// spec).
func (p *Path) GetPathSegment(s float64) (Segment, float64) {
	s = clamp(s, 0, p.Length)
	idx := sort.Search(len(p.Segments), func(i int) bool {
		return p.Segments[i].Position+p.Segments[i].Length > s
	})
	if idx >= len(p.Segments) {
		idx = len(p.Segments) - 1
	}
	seg := p.Segments[idx]
	return seg, s - seg.Position
}

// Config returns the configuration at absolute arc length s.
func (p *Path) Config(s float64) vecn.Vector {
	seg, local := p.GetPathSegment(s)
	return seg.Config(local)
}

// Tangent returns the unit tangent at absolute arc length s.
func (p *Path) Tangent(s float64) vecn.Vector {
	seg, local := p.GetPathSegment(s)
	return seg.Tangent(local)
}

// Curvature returns the curvature vector at absolute arc length s.
func (p *Path) Curvature(s float64) vecn.Vector {
	seg, local := p.GetPathSegment(s)
	return seg.Curvature(local)
}

// GetNextSwitchingPoint returns the first switching point strictly beyond
// s, or (Length, true) if s is at or past the last one.
func (p *Path) GetNextSwitchingPoint(s float64) SwitchingPoint {
	for _, sp := range p.switchingPoints {
		if sp.Pos > s {
			return sp
		}
	}
	return SwitchingPoint{Pos: p.Length, Discontinuous: true}
}

// GetSwitchingPoints returns a read-only view of the path's switching
// points, strictly increasing in arc length.
func (p *Path) GetSwitchingPoints() []SwitchingPoint {
	return p.switchingPoints
}
