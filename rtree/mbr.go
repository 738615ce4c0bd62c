package rtree

import (
	"fmt"
	"math"
)

// Point is a location in space and time: two spatial coordinates and a
// timestamp. Points are immutable once inserted into an RTree.
type Point struct {
	X, Y, T float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.T)
}

// MBR is an axis-aligned minimum bounding box in (x, y, t). Each pair of
// bounds is stored min-first.
type MBR struct {
	X1, X2 float64
	Y1, Y2 float64
	T1, T2 float64
}

// NewMBR builds the box spanned by two arbitrary corners. The corners may be
// given in any order; the bounds are normalized.
func NewMBR(a, b Point) MBR {
	return MBR{
		X1: math.Min(a.X, b.X), X2: math.Max(a.X, b.X),
		Y1: math.Min(a.Y, b.Y), Y2: math.Max(a.Y, b.Y),
		T1: math.Min(a.T, b.T), T2: math.Max(a.T, b.T),
	}
}

// MBRFromPoints gives the tightest box enclosing all points. An empty input
// has no bounds and yields ErrNoBounds.
func MBRFromPoints(points []Point) (MBR, error) {
	if len(points) == 0 {
		return MBR{}, ErrNoBounds
	}
	box := pointBox(points[0])
	for _, p := range points[1:] {
		box = box.extend(p)
	}
	return box, nil
}

// Intersects reports whether the two boxes share at least one point.
// Touching boundaries count as intersecting.
func (m MBR) Intersects(other MBR) bool {
	return (m.X1 <= other.X2) && (m.X2 >= other.X1) &&
		(m.Y1 <= other.Y2) && (m.Y2 >= other.Y1) &&
		(m.T1 <= other.T2) && (m.T2 >= other.T1)
}

// ContainsPoint is an inclusive bounds test on all three axes.
func (m MBR) ContainsPoint(p Point) bool {
	return m.X1 <= p.X && p.X <= m.X2 &&
		m.Y1 <= p.Y && p.Y <= m.Y2 &&
		m.T1 <= p.T && p.T <= m.T2
}

// Volume is the product of the three extents. It is zero for a flat box.
func (m MBR) Volume() float64 {
	return (m.X2 - m.X1) * (m.Y2 - m.Y1) * (m.T2 - m.T1)
}

// Perimeter is the sum of all twelve edge lengths of the box.
func (m MBR) Perimeter() float64 {
	return 4 * ((m.X2 - m.X1) + (m.Y2 - m.Y1) + (m.T2 - m.T1))
}

// Union gives the smallest box containing both m and other.
func (m MBR) Union(other MBR) MBR {
	return MBR{
		X1: math.Min(m.X1, other.X1), X2: math.Max(m.X2, other.X2),
		Y1: math.Min(m.Y1, other.Y1), Y2: math.Max(m.Y2, other.Y2),
		T1: math.Min(m.T1, other.T1), T2: math.Max(m.T2, other.T2),
	}
}

func (m MBR) String() string {
	return fmt.Sprintf("x[%g,%g] y[%g,%g] t[%g,%g]", m.X1, m.X2, m.Y1, m.Y2, m.T1, m.T2)
}

// extend gives the smallest box containing both m and p.
func (m MBR) extend(p Point) MBR {
	return MBR{
		X1: math.Min(m.X1, p.X), X2: math.Max(m.X2, p.X),
		Y1: math.Min(m.Y1, p.Y), Y2: math.Max(m.Y2, p.Y),
		T1: math.Min(m.T1, p.T), T2: math.Max(m.T2, p.T),
	}
}

// enlargement returns how much additional volume the existing box would have
// to grow by to accommodate p.
func enlargement(existing MBR, p Point) float64 {
	return existing.extend(p).Volume() - existing.Volume()
}

func pointBox(p Point) MBR {
	return MBR{X1: p.X, X2: p.X, Y1: p.Y, Y2: p.Y, T1: p.T, T2: p.T}
}

// lower returns the lower bound of the box along an axis.
func (m MBR) lower(axis Axis) float64 {
	switch axis {
	case AxisY:
		return m.Y1
	case AxisT:
		return m.T1
	}
	return m.X1
}

// extent returns the length of the box along an axis.
func (m MBR) extent(axis Axis) float64 {
	switch axis {
	case AxisY:
		return m.Y2 - m.Y1
	case AxisT:
		return m.T2 - m.T1
	}
	return m.X2 - m.X1
}
