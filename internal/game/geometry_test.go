package game

import (
	"math"
	"testing"
)

func TestLineIntersection_XCrossing(t *testing.T) {
	p, ok := LineIntersection(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	if !ok {
		t.Fatal("crossing diagonals should intersect")
	}
	if p.X != 5 || p.Y != 5 {
		t.Fatalf("expected (5,5), got %s", p)
	}
}

func TestLineIntersection_OffCentreCrossing(t *testing.T) {
	// y = x/2 from (0,0) to (8,4) against the vertical x = 6 from (6,-10) to (6,10).
	p, ok := LineIntersection(Point{0, 0}, Point{8, 4}, Point{6, -10}, Point{6, 10})
	if !ok {
		t.Fatal("expected an intersection")
	}
	if p.X != 6 || math.Abs(p.Y-3) > 1e-12 {
		t.Fatalf("expected (6,3), got %s", p)
	}
}

func TestLineIntersection_ParallelNoOverlap(t *testing.T) {
	if _, ok := LineIntersection(Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}); ok {
		t.Fatal("parallel horizontal segments must not intersect")
	}
}

func TestLineIntersection_CollinearReportsNone(t *testing.T) {
	// Overlapping collinear segments have a zero determinant: reported as no hit.
	if _, ok := LineIntersection(Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{15, 0}); ok {
		t.Fatal("collinear segments should report no intersection")
	}
}

func TestLineIntersection_OutsideSegmentBounds(t *testing.T) {
	// The infinite lines cross at (20,0) but the first segment stops at x=10.
	if _, ok := LineIntersection(Point{0, 0}, Point{10, 0}, Point{20, -5}, Point{20, 5}); ok {
		t.Fatal("crossing outside the first segment must be rejected")
	}
	// Crossing at (5,0) lies beyond the second segment's y range.
	if _, ok := LineIntersection(Point{0, 0}, Point{10, 0}, Point{5, 1}, Point{5, 9}); ok {
		t.Fatal("crossing outside the second segment must be rejected")
	}
}

func TestLineIntersection_EndpointIsInclusive(t *testing.T) {
	p, ok := LineIntersection(Point{0, 0}, Point{10, 0}, Point{10, -5}, Point{10, 5})
	if !ok {
		t.Fatal("touching at the ray's end point should count")
	}
	if p.X != 10 || p.Y != 0 {
		t.Fatalf("expected (10,0), got %s", p)
	}
}

func TestLineIntersection_NearVerticalRayLandsOnWall(t *testing.T) {
	// Aim 0 produces a ray with a tiny X drift from cos(π/2).
	dx, dy := ByteAngle(0).Heading()
	from := Point{192, 128}
	to := from.Add(dx*500, dy*500)
	p, ok := LineIntersection(from, to, Point{32, 32}, Point{352, 32})
	if !ok {
		t.Fatal("expected the ray to reach the wall")
	}
	if p.Y != 32 {
		t.Fatalf("hit should sit exactly on y=32, got %v", p.Y)
	}
	if math.Abs(p.X-192) > 1e-9 {
		t.Fatalf("hit x drifted: %v", p.X)
	}
}

func TestPoint_LerpAndDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{6, 8}
	if d := a.DistanceTo(b); d != 10 {
		t.Fatalf("expected distance 10, got %v", d)
	}
	if m := a.Lerp(b, 0.5); m != (Point{3, 4}) {
		t.Fatalf("expected midpoint (3,4), got %s", m)
	}
}

func TestDirection_Vertical(t *testing.T) {
	if !DirLeft.Vertical() || !DirRight.Vertical() {
		t.Fatal("left/right lines are vertical")
	}
	if DirTop.Vertical() || DirBottom.Vertical() {
		t.Fatal("top/bottom lines are horizontal")
	}
}
