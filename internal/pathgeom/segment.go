// Package pathgeom builds a C1-continuous, arc-length parameterised
// geometric path out of waypoints, following Kunz & Stilman's linear
// segments with circular corner blends.
//
// Segment is a tagged union rather than an interface with heap-allocated
// implementations: Path owns a contiguous slice of Segment values, and
// cloning a Path is a plain slice copy.
package pathgeom

import (
	"math"

	"github.com/san-kum/trajplan/internal/vecn"
)

// Kind discriminates the two Segment variants.
type Kind int

const (
	// KindLinear is a straight run between two configurations.
	KindLinear Kind = iota
	// KindCircular is a circular blend inserted at a waypoint corner.
	KindCircular
)

// blendDegenerateThreshold is the distance/direction tolerance below
// which a requested circular blend collapses to zero length.
const blendDegenerateThreshold = 1e-6

// Segment is one piece of a Path: either a straight Linear run or a
// Circular blend. Length and Position are common to both variants;
// Position is the cumulative arc length at which this segment starts
// within its owning Path, and is assigned by Path, not by the
// constructors below.
type Segment struct {
	Kind     Kind
	Length   float64
	Position float64

	// Linear fields.
	Start, End vecn.Vector

	// Circular fields. X and Y are an orthonormal basis of the blend's
	// plane; Config/Tangent/Curvature are expressed in terms of them.
	Center, X, Y vecn.Vector
	Radius       float64
}

// NewLinear builds a straight segment from start to end.
func NewLinear(start, end vecn.Vector) Segment {
	return Segment{
		Kind:   KindLinear,
		Start:  start.Clone(),
		End:    end.Clone(),
		Length: end.Sub(start).Norm(),
	}
}

// NewCircularBlend builds the circular arc that rounds the corner at
// intersection, bounded so its maximum deviation from intersection does
// not exceed maxDeviation. If the corner geometry is degenerate (near-zero
// incoming/outgoing edges, or edges that are already collinear), the
// blend collapses to a zero-length segment centred at intersection.
func NewCircularBlend(start, intersection, end vecn.Vector, maxDeviation float64) Segment {
	d1 := intersection.Sub(start)
	d2 := end.Sub(intersection)
	n1, n2 := d1.Norm(), d2.Norm()

	degenerate := func() Segment {
		dim := len(intersection)
		return Segment{
			Kind:   KindCircular,
			Length: 0,
			Radius: 1,
			Center: intersection.Clone(),
			X:      vecn.New(dim),
			Y:      vecn.New(dim),
		}
	}

	if n1 < blendDegenerateThreshold || n2 < blendDegenerateThreshold {
		return degenerate()
	}

	startDir := d1.Scale(1 / n1)
	endDir := d2.Scale(1 / n2)
	if startDir.Sub(endDir).Norm() < blendDegenerateThreshold {
		return degenerate()
	}

	cosAngle := startDir.Dot(endDir)
	cosAngle = clamp(cosAngle, -1, 1)
	angle := math.Acos(cosAngle)

	half := angle / 2
	// Cap at the edge midpoints, not the full edge lengths: this is what
	// guarantees two adjacent blends never consume more than half of the
	// edge they share, so consecutive blends cannot overlap.
	radiusLimit := maxDeviation * math.Sin(half) / (1 - math.Cos(half))
	distance := math.Min(n1/2, math.Min(n2/2, radiusLimit))
	radius := distance / math.Tan(half)
	length := angle * radius

	dirDiff := endDir.Sub(startDir)
	center := intersection.Add(dirDiff.Normalize().Scale(radius / math.Cos(half)))

	x := intersection.Sub(startDir.Scale(distance)).Sub(center).Normalize()
	y := startDir

	return Segment{
		Kind:   KindCircular,
		Length: length,
		Center: center,
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Config returns the configuration-space position at local arc length s.
func (seg Segment) Config(s float64) vecn.Vector {
	switch seg.Kind {
	case KindLinear:
		u := clamp(s/seg.Length, 0, 1)
		return seg.Start.Scale(1 - u).Add(seg.End.Scale(u))
	default:
		cs, sn := math.Cos(s/seg.Radius), math.Sin(s/seg.Radius)
		return seg.Center.Add(seg.X.Scale(cs).Add(seg.Y.Scale(sn)).Scale(seg.Radius))
	}
}

// Tangent returns the unit configuration-space derivative with respect to
// arc length at local arc length s.
func (seg Segment) Tangent(s float64) vecn.Vector {
	switch seg.Kind {
	case KindLinear:
		if seg.Length == 0 {
			return vecn.New(len(seg.Start))
		}
		return seg.End.Sub(seg.Start).Scale(1 / seg.Length)
	default:
		cs, sn := math.Cos(s/seg.Radius), math.Sin(s/seg.Radius)
		return seg.X.Scale(-sn).Add(seg.Y.Scale(cs))
	}
}

// Curvature returns the second derivative of Config with respect to arc
// length at local arc length s. Zero for Linear segments.
func (seg Segment) Curvature(s float64) vecn.Vector {
	switch seg.Kind {
	case KindLinear:
		return vecn.New(len(seg.Start))
	default:
		cs, sn := math.Cos(s/seg.Radius), math.Sin(s/seg.Radius)
		return seg.X.Scale(cs).Add(seg.Y.Scale(sn)).Scale(-1 / seg.Radius)
	}
}

// LocalSwitchingPoints returns the sorted arc lengths inside (0, Length)
// where a coordinate axis of the circular arc's curvature direction has a
// zero-derivative event. Linear segments have none.
func (seg Segment) LocalSwitchingPoints() []float64 {
	if seg.Kind == KindLinear || seg.Radius == 0 {
		return nil
	}
	points := make([]float64, 0, len(seg.X))
	for i := range seg.X {
		phi := math.Atan2(seg.Y[i], seg.X[i])
		if phi < 0 {
			phi += math.Pi
		}
		s := phi * seg.Radius
		if s > 0 && s < seg.Length {
			points = append(points, s)
		}
	}
	sortFloats(points)
	return points
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
