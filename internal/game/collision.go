package game

import "fmt"

const (
	DefaultTileSize  = 32.0
	DefaultTankSize  = DefaultTileSize / 2
	DefaultMoveSpeed = 1.0
)

// box is an axis-aligned rectangle in world space.
type box struct {
	x, y, w, h float64
}

// overlaps is strict: boxes that only share an edge do not overlap.
func (b box) overlaps(o box) bool {
	return b.x < o.x+o.w && b.x+b.w > o.x &&
		b.y < o.y+o.h && b.y+b.h > o.y
}

func tankBox(center Point, size float64) box {
	half := size / 2
	return box{x: center.X - half, y: center.Y - half, w: size, h: size}
}

func tileBox(tm *TileMap, col, row int) box {
	s := tm.TileSize
	return box{x: float64(col) * s, y: float64(row) * s, w: s, h: s}
}

// TileEdge names one side of a tile.
type TileEdge uint8

const (
	EdgeTop TileEdge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e TileEdge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return fmt.Sprintf("edge(%d)", uint8(e))
	}
}

// nearestEdge returns the tile edge whose midpoint is closest to p. Ties go to
// the first edge in top, bottom, left, right order.
func nearestEdge(p Point, t box) TileEdge {
	midX := t.x + t.w/2
	midY := t.y + t.h/2
	mids := [4]Point{
		EdgeTop:    {X: midX, Y: t.y},
		EdgeBottom: {X: midX, Y: t.y + t.h},
		EdgeLeft:   {X: t.x, Y: midY},
		EdgeRight:  {X: t.x + t.w, Y: midY},
	}
	best := EdgeTop
	bestDist := p.DistanceTo(mids[EdgeTop])
	for e := EdgeBottom; e <= EdgeRight; e++ {
		if d := p.DistanceTo(mids[e]); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// pushOut moves center along one axis so a tank of the given size sits flush
// against edge e of t.
func pushOut(center Point, t box, e TileEdge, size float64) Point {
	half := size / 2
	switch e {
	case EdgeTop:
		center.Y = t.y - half
	case EdgeBottom:
		center.Y = t.y + t.h + half
	case EdgeLeft:
		center.X = t.x - half
	case EdgeRight:
		center.X = t.x + t.w + half
	}
	return center
}

// ResolveTankCollisions pushes a tank centred at pos out of every blocking
// tile in the 3×3 neighbourhood of its cell. Tiles are handled one at a time
// in column-major scan order, each against the position left by the previous
// push. It is a cheap approximation, not an exact solver.
func ResolveTankCollisions(pos Point, tm *TileMap, tankSize float64) Point {
	col, row := tm.CellOf(pos)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c, r := col+dx, row+dy
			if !tm.At(c, r).BlocksTank() {
				continue
			}
			t := tileBox(tm, c, r)
			if !tankBox(pos, tankSize).overlaps(t) {
				continue
			}
			pos = pushOut(pos, t, nearestEdge(pos, t), tankSize)
		}
	}
	return pos
}
