package game

import (
	"fmt"
	"slices"
)

const (
	DefaultMaxBullets    = 5
	DefaultBulletBounces = 1
	DefaultBulletSpeed   = 2.0
	DefaultBulletRadius  = 2.0
	freeSlot             = -1
)

// Path is one straight leg of a bullet's precomputed trajectory.
type Path struct {
	Start           Point
	End             Point
	TotalDistance   float64 // fixed leg length
	CurrentDistance float64 // distance travelled along this leg
}

// Done reports whether the leg has been fully travelled.
func (p Path) Done() bool {
	return p.CurrentDistance >= p.TotalDistance
}

// BulletState is a bullet slot's lifecycle stage.
type BulletState uint8

const (
	BulletFree      BulletState = iota // slot unused
	BulletPlanned                      // path built, nothing travelled yet
	BulletAdvancing                    // moving along its legs
)

func (s BulletState) String() string {
	switch s {
	case BulletFree:
		return "free"
	case BulletPlanned:
		return "planned"
	case BulletAdvancing:
		return "advancing"
	default:
		return fmt.Sprintf("bullet-state(%d)", uint8(s))
	}
}

// Bullet is one projectile slot. PathIndex is -1 while the slot is free.
type Bullet struct {
	Pos       Point
	Paths     []Path // length == bounce budget, allocated once
	PathIndex int
}

// Active reports whether the slot holds a live bullet.
func (b Bullet) Active() bool {
	return b.PathIndex != freeSlot
}

// State derives the lifecycle stage from the path progress.
func (b Bullet) State() BulletState {
	switch {
	case !b.Active():
		return BulletFree
	case b.PathIndex == 0 && b.Paths[0].CurrentDistance == 0:
		return BulletPlanned
	default:
		return BulletAdvancing
	}
}

// BulletPool is a fixed set of bullet slots. A slot's index is the bullet's
// identity for its whole flight.
type BulletPool struct {
	bullets []Bullet
	speed   float64
}

// NewBulletPool allocates capacity slots, each holding legs paths.
func NewBulletPool(capacity, legs int, speed float64) *BulletPool {
	bullets := make([]Bullet, capacity)
	for i := range bullets {
		bullets[i] = Bullet{
			Paths:     make([]Path, legs),
			PathIndex: freeSlot,
		}
	}
	return &BulletPool{bullets: bullets, speed: speed}
}

// Cap returns the number of slots.
func (bp *BulletPool) Cap() int {
	return len(bp.bullets)
}

// Legs returns the bounce budget every slot is sized for.
func (bp *BulletPool) Legs() int {
	if len(bp.bullets) == 0 {
		return 0
	}
	return len(bp.bullets[0].Paths)
}

// FreeSlot returns the lowest free slot index.
func (bp *BulletPool) FreeSlot() (int, bool) {
	for i := range bp.bullets {
		if !bp.bullets[i].Active() {
			return i, true
		}
	}
	return 0, false
}

// Fire places a bullet on legs in the lowest free slot. It returns false and
// leaves the pool untouched when every slot is busy or legs does not match
// the bounce budget.
func (bp *BulletPool) Fire(legs []Path) (int, bool) {
	if len(legs) == 0 || len(legs) != bp.Legs() {
		return 0, false
	}
	slot, ok := bp.FreeSlot()
	if !ok {
		return 0, false
	}
	b := &bp.bullets[slot]
	copy(b.Paths, legs)
	for i := range b.Paths {
		b.Paths[i].CurrentDistance = 0
	}
	b.PathIndex = 0
	b.Pos = legs[0].Start
	return slot, true
}

// Advance moves every live bullet one tick and returns the slots retired
// during this tick.
func (bp *BulletPool) Advance() []int {
	var retired []int
	for i := range bp.bullets {
		b := &bp.bullets[i]
		if !b.Active() {
			continue
		}
		if bp.advanceBullet(b) {
			retired = append(retired, i)
		}
	}
	return retired
}

// advanceBullet moves b by one speed step. A finished leg hands over to the
// next one within the same tick, and that leg gets its own step.
func (bp *BulletPool) advanceBullet(b *Bullet) bool {
	for {
		path := &b.Paths[b.PathIndex]
		path.CurrentDistance += bp.speed
		if !path.Done() {
			b.Pos = path.Start.Lerp(path.End, path.CurrentDistance/path.TotalDistance)
			return false
		}
		b.PathIndex++
		if b.PathIndex == len(b.Paths) {
			b.PathIndex = freeSlot
			return true
		}
		b.Paths[b.PathIndex].CurrentDistance = 0
	}
}

// Bullet returns a copy of slot i.
func (bp *BulletPool) Bullet(i int) Bullet {
	b := bp.bullets[i]
	b.Paths = slices.Clone(b.Paths)
	return b
}

// ActiveCount returns the number of live bullets.
func (bp *BulletPool) ActiveCount() int {
	n := 0
	for i := range bp.bullets {
		if bp.bullets[i].Active() {
			n++
		}
	}
	return n
}

// Positions returns the positions of live bullets in slot order.
func (bp *BulletPool) Positions() []Point {
	var out []Point
	for i := range bp.bullets {
		if bp.bullets[i].Active() {
			out = append(out, bp.bullets[i].Pos)
		}
	}
	return out
}

// Reset frees every slot.
func (bp *BulletPool) Reset() {
	for i := range bp.bullets {
		bp.bullets[i].PathIndex = freeSlot
	}
}
