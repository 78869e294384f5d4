package game

import (
	"math"
	"slices"
)

// DefaultRayLength is how far a single cast reaches, in pixels.
const DefaultRayLength = 500.0

// minHitDistance discards hits at the cast origin. After a bounce the origin
// lies on the wall just struck, which would otherwise win every time.
const minHitDistance = 1e-6

// cornerTolerance is how close two hits on perpendicular lines must be to
// count as one strike on a corner.
const cornerTolerance = 1e-6

// TraceOptions bounds a bounce-path plan.
type TraceOptions struct {
	Legs      int     // bounce budget: number of legs to build
	RayLength float64 // length of each cast
}

// Cast records one ray and the hits found on it, for the debug overlay.
type Cast struct {
	From Point
	To   Point
	Hits []Collision
}

// PathPlan is the precomputed trajectory for one bullet.
type PathPlan struct {
	Legs  []Path
	Casts []Cast
}

// TracePaths casts a ray from origin along the math angle radians, reflects
// it off the nearest bounce line and repeats until opts.Legs legs are built.
// The bool is false when any cast finds nothing to hit; the plan then holds
// only the casts made so far and must not be fired.
func TracePaths(origin Point, radians float64, lines *BounceLines, opts TraceOptions) (PathPlan, bool) {
	var plan PathPlan
	if opts.Legs <= 0 {
		return plan, false
	}
	dx, dy := HeadingOf(radians)
	current := origin
	for len(plan.Legs) < opts.Legs {
		rayEnd := current.Add(dx*opts.RayLength, dy*opts.RayLength)
		hits := CastRay(current, rayEnd, lines)
		plan.Casts = append(plan.Casts, Cast{From: current, To: rayEnd, Hits: hits})

		hit, dist, ok := nearestCollision(current, hits)
		if !ok {
			return plan, false
		}
		plan.Legs = append(plan.Legs, Path{
			Start:         current,
			End:           hit.Point,
			TotalDistance: dist,
		})
		dx, dy = reflectHit(dx, dy, current, hit, dist, hits)
		current = hit.Point
	}
	return plan, true
}

// CastRay returns every bounce line crossed by the segment from->to, skipping
// crossings at from itself.
func CastRay(from, to Point, lines *BounceLines) []Collision {
	var hits []Collision
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		p, ok := LineIntersection(from, to, line.Start, line.End)
		if !ok || from.DistanceTo(p) < minHitDistance {
			continue
		}
		hits = append(hits, Collision{Line: line, Point: p})
	}
	return hits
}

// nearestCollision picks the hit closest to origin. Earlier hits win ties.
func nearestCollision(origin Point, hits []Collision) (Collision, float64, bool) {
	if len(hits) == 0 {
		return Collision{}, 0, false
	}
	best := hits[0]
	bestDist := origin.DistanceTo(best.Point)
	for _, h := range hits[1:] {
		if d := origin.DistanceTo(h.Point); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, bestDist, true
}

// reflectHit reflects off the chosen hit. When a perpendicular line is struck
// at the same distance the ray has met a corner and both components flip;
// flipping one would send the next cast straight into the other wall.
func reflectHit(dx, dy float64, origin Point, hit Collision, dist float64, hits []Collision) (float64, float64) {
	dx, dy = Reflect(dx, dy, hit.Line.Direction)
	for _, h := range hits {
		if h.Line.Direction.Vertical() == hit.Line.Direction.Vertical() {
			continue
		}
		if math.Abs(origin.DistanceTo(h.Point)-dist) <= cornerTolerance {
			return Reflect(dx, dy, h.Line.Direction)
		}
	}
	return dx, dy
}

// cloneCasts copies casts along with their hit slices.
func cloneCasts(casts []Cast) []Cast {
	if casts == nil {
		return nil
	}
	out := make([]Cast, len(casts))
	for i, c := range casts {
		out[i] = Cast{From: c.From, To: c.To, Hits: slices.Clone(c.Hits)}
	}
	return out
}

// Reflect mirrors the direction (dx, dy) off an axis-aligned line. Vertical
// lines (left/right) flip the horizontal component; horizontal lines
// (top/bottom) flip the vertical one.
func Reflect(dx, dy float64, d Direction) (float64, float64) {
	if d.Vertical() {
		return -dx, dy
	}
	return dx, -dy
}
