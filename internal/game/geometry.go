package game

import (
	"fmt"
	"math"
)

// Point is a position in world (pixel) space. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Direction names the side of a solid tile that a bounce line faces.
// A ray striking the line arrived from that side.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Vertical reports whether lines with this direction run vertically,
// i.e. reflect the horizontal component of a ray.
func (d Direction) Vertical() bool {
	return d == DirLeft || d == DirRight
}

// Segment is a wall boundary used for ray reflection. Also known as a bounce line.
type Segment struct {
	Start     Point
	End       Point
	Direction Direction
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

func (s Segment) String() string {
	return fmt.Sprintf("%s->%s %s", s.Start, s.End, s.Direction)
}

// Collision is one ray/segment intersection found during a single cast.
type Collision struct {
	Line  Segment
	Point Point
}

// boundsEpsilon widens the inclusive box test just enough to absorb rounding
// on rays that are almost, but not exactly, axis aligned.
const boundsEpsilon = 1e-9

// pointOnLine reports whether p lies inside the inclusive bounding box of the
// segment l1->l2. Callers use it on points already known to be on the
// infinite line, so the box test is enough.
func pointOnLine(l1, l2, p Point) bool {
	minX, maxX := minMax(l1.X, l2.X)
	minY, maxY := minMax(l1.Y, l2.Y)
	return minX-boundsEpsilon <= p.X && p.X <= maxX+boundsEpsilon &&
		minY-boundsEpsilon <= p.Y && p.Y <= maxY+boundsEpsilon
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// LineIntersection returns the point where segment a->b crosses segment c->d.
// The bool is false when the lines are parallel or coincident (zero
// determinant) or when the crossing of the infinite lines falls outside
// either segment's bounds.
func LineIntersection(a, b, c, d Point) (Point, bool) {
	a1 := b.Y - a.Y
	b1 := a.X - b.X
	c1 := a1*a.X + b1*a.Y

	a2 := d.Y - c.Y
	b2 := c.X - d.X
	c2 := a2*c.X + b2*c.Y

	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, false
	}

	p := Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	// Axis-aligned inputs have one exact coordinate; drop the rounding noise
	// so the inclusive box tests stay stable at tile edges.
	p = snapToAxis(p, a, b)
	p = snapToAxis(p, c, d)
	if !pointOnLine(a, b, p) || !pointOnLine(c, d, p) {
		return Point{}, false
	}
	return p, true
}

// snapToAxis pins p onto the line through s and e when that line is axis aligned.
func snapToAxis(p, s, e Point) Point {
	if s.X == e.X {
		p.X = s.X
	}
	if s.Y == e.Y {
		p.Y = s.Y
	}
	return p
}
