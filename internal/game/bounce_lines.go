package game

import (
	"log/slog"
	"math"
	"slices"
)

// DefaultMergeTolerance is how far apart (per axis, in pixels) two line ends
// may be and still count as touching.
const DefaultMergeTolerance = 5.0

// ExtractBounceLines emits one tile-edge segment for every edge shared by a
// passable cell (air or fence) and an orthogonally adjacent wall. Cells
// outside the grid read as TileInvalid and never produce a line.
//
// Horizontal lines run left to right and vertical lines top to bottom, which
// is the orientation MergeBounceLines chains along.
func ExtractBounceLines(tm *TileMap) []Segment {
	var lines []Segment
	s := tm.TileSize
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			if !tm.At(col, row).IsBounceSource() {
				continue
			}
			left := float64(col) * s
			right := float64(col+1) * s
			top := float64(row) * s
			bottom := float64(row+1) * s

			if tm.At(col-1, row).IsSolidWall() {
				lines = append(lines, Segment{
					Start:     Point{X: left, Y: top},
					End:       Point{X: left, Y: bottom},
					Direction: DirRight,
				})
			}
			if tm.At(col+1, row).IsSolidWall() {
				lines = append(lines, Segment{
					Start:     Point{X: right, Y: top},
					End:       Point{X: right, Y: bottom},
					Direction: DirLeft,
				})
			}
			if tm.At(col, row-1).IsSolidWall() {
				lines = append(lines, Segment{
					Start:     Point{X: left, Y: top},
					End:       Point{X: right, Y: top},
					Direction: DirBottom,
				})
			}
			if tm.At(col, row+1).IsSolidWall() {
				lines = append(lines, Segment{
					Start:     Point{X: left, Y: bottom},
					End:       Point{X: right, Y: bottom},
					Direction: DirTop,
				})
			}
		}
	}
	return lines
}

// MergeBounceLines fuses chains of same-direction lines whose ends touch
// within tolerance. Each fusion restarts the scan because the longer line may
// now touch another one. The input slice is not modified.
func MergeBounceLines(lines []Segment, tolerance float64) []Segment {
	merged := slices.Clone(lines)
	// Every fusion removes a line, so the loop runs at most len(lines) times.
	for {
		i, j, ok := findFusiblePair(merged, tolerance)
		if !ok {
			return merged
		}
		merged[i].End = merged[j].End
		merged = slices.Delete(merged, j, j+1)
	}
}

func findFusiblePair(lines []Segment, tolerance float64) (int, int, bool) {
	for i := range lines {
		for j := range lines {
			if i != j && fusible(lines[i], lines[j], tolerance) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// fusible reports whether b continues a. A pair that closes a loop (b ends
// where a starts) would collapse into a zero-length line and is refused.
func fusible(a, b Segment, tolerance float64) bool {
	if a.Direction != b.Direction {
		return false
	}
	if !near(a.End, b.Start, tolerance) {
		return false
	}
	return !near(b.End, a.Start, tolerance)
}

func near(p, q Point, tolerance float64) bool {
	return math.Abs(p.X-q.X) < tolerance && math.Abs(p.Y-q.Y) < tolerance
}

// BounceLines is the frozen segment set rays are cast against. It is built
// once per level load and replaced wholesale, never edited in place.
type BounceLines struct {
	lines []Segment
}

// NewBounceLines freezes a copy of lines.
func NewBounceLines(lines []Segment) *BounceLines {
	return &BounceLines{lines: slices.Clip(slices.Clone(lines))}
}

// LoadBounceLines extracts and merges the bounce lines of tm.
func LoadBounceLines(tm *TileMap, tolerance float64) *BounceLines {
	raw := ExtractBounceLines(tm)
	merged := MergeBounceLines(raw, tolerance)
	slog.Debug("bounce lines loaded",
		"cols", tm.Cols,
		"rows", tm.Rows,
		"extracted", len(raw),
		"merged", len(merged))
	return NewBounceLines(merged)
}

// Len returns the number of lines. A nil set is empty.
func (bl *BounceLines) Len() int {
	if bl == nil {
		return 0
	}
	return len(bl.lines)
}

// At returns the i-th line.
func (bl *BounceLines) At(i int) Segment {
	return bl.lines[i]
}

// All returns a copy of every line, for the debug overlay and reports.
func (bl *BounceLines) All() []Segment {
	if bl == nil {
		return nil
	}
	return slices.Clone(bl.lines)
}
