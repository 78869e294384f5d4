package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func straightLeg(from, to Point) Path {
	return Path{Start: from, End: to, TotalDistance: from.DistanceTo(to)}
}

func TestBulletPool_Lifecycle(t *testing.T) {
	bp := NewBulletPool(2, 1, 2)
	if s := bp.Bullet(0).State(); s != BulletFree {
		t.Fatalf("new slot should be free, got %s", s)
	}

	slot, ok := bp.Fire([]Path{straightLeg(Point{0, 0}, Point{10, 0})})
	if !ok || slot != 0 {
		t.Fatalf("expected slot 0, got %d (ok=%v)", slot, ok)
	}
	b := bp.Bullet(0)
	if b.State() != BulletPlanned || b.Pos != (Point{0, 0}) {
		t.Fatalf("fresh bullet should be planned at its start, got %s at %s", b.State(), b.Pos)
	}

	for tick := 1; tick <= 4; tick++ {
		if retired := bp.Advance(); len(retired) != 0 {
			t.Fatalf("tick %d: retired too early", tick)
		}
		b = bp.Bullet(0)
		if b.State() != BulletAdvancing {
			t.Fatalf("tick %d: expected advancing, got %s", tick, b.State())
		}
		if want := (Point{float64(2 * tick), 0}); b.Pos != want {
			t.Fatalf("tick %d: expected %s, got %s", tick, want, b.Pos)
		}
	}
	if retired := bp.Advance(); !cmp.Equal(retired, []int{0}) {
		t.Fatalf("slot 0 should retire on tick 5, got %v", retired)
	}
	if bp.Bullet(0).State() != BulletFree || bp.ActiveCount() != 0 {
		t.Fatal("slot should be free again")
	}
}

func TestBulletPool_ExhaustedPoolRejectsShot(t *testing.T) {
	bp := NewBulletPool(2, 1, 2)
	leg := []Path{straightLeg(Point{0, 0}, Point{100, 0})}
	for i := 0; i < 2; i++ {
		if _, ok := bp.Fire(leg); !ok {
			t.Fatalf("shot %d should fit", i)
		}
	}
	before := []Bullet{bp.Bullet(0), bp.Bullet(1)}
	if _, ok := bp.Fire(leg); ok {
		t.Fatal("third shot must be rejected")
	}
	after := []Bullet{bp.Bullet(0), bp.Bullet(1)}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("rejected shot changed the pool (-before +after):\n%s", diff)
	}
	if _, ok := bp.FreeSlot(); ok {
		t.Fatal("no slot should be free")
	}
}

func TestBulletPool_LowestFreeSlotIsReused(t *testing.T) {
	bp := NewBulletPool(3, 1, 2)
	short := []Path{straightLeg(Point{0, 0}, Point{2, 0})}
	long := []Path{straightLeg(Point{0, 0}, Point{100, 0})}
	bp.Fire(short)
	bp.Fire(long)
	if retired := bp.Advance(); !cmp.Equal(retired, []int{0}) {
		t.Fatalf("short shot should retire first, got %v", retired)
	}
	slot, ok := bp.Fire(long)
	if !ok || slot != 0 {
		t.Fatalf("expected slot 0 to be reused, got %d", slot)
	}
}

func TestBulletPool_LegHandOverInSameTick(t *testing.T) {
	bp := NewBulletPool(1, 2, 2)
	legs := []Path{
		straightLeg(Point{0, 0}, Point{1, 0}),
		straightLeg(Point{1, 0}, Point{1, 10}),
	}
	if _, ok := bp.Fire(legs); !ok {
		t.Fatal("fire failed")
	}
	bp.Advance()
	b := bp.Bullet(0)
	if b.PathIndex != 1 {
		t.Fatalf("short first leg should hand over this tick, index %d", b.PathIndex)
	}
	if b.Paths[1].CurrentDistance != 2 {
		t.Fatalf("new leg should get its own step, got %v", b.Paths[1].CurrentDistance)
	}
	if b.Pos != (Point{1, 2}) {
		t.Fatalf("expected (1,2), got %s", b.Pos)
	}
}

func TestBulletPool_RetiresThroughAllLegsInOneTick(t *testing.T) {
	bp := NewBulletPool(1, 3, 2)
	legs := []Path{
		straightLeg(Point{0, 0}, Point{1, 0}),
		straightLeg(Point{1, 0}, Point{1, 1}),
		straightLeg(Point{1, 1}, Point{0, 1}),
	}
	bp.Fire(legs)
	if retired := bp.Advance(); !cmp.Equal(retired, []int{0}) {
		t.Fatalf("every leg is shorter than one step, expected retirement, got %v", retired)
	}
}

func TestBulletPool_WrongLegCountRejected(t *testing.T) {
	bp := NewBulletPool(1, 2, 2)
	if _, ok := bp.Fire([]Path{straightLeg(Point{0, 0}, Point{10, 0})}); ok {
		t.Fatal("a plan shorter than the bounce budget must be rejected")
	}
	if _, ok := bp.Fire(nil); ok {
		t.Fatal("an empty plan must be rejected")
	}
	if bp.ActiveCount() != 0 {
		t.Fatal("rejected shots must not occupy a slot")
	}
}

func TestBulletPool_FireResetsProgress(t *testing.T) {
	bp := NewBulletPool(1, 1, 2)
	leg := straightLeg(Point{0, 0}, Point{10, 0})
	leg.CurrentDistance = 7
	bp.Fire([]Path{leg})
	if got := bp.Bullet(0).Paths[0].CurrentDistance; got != 0 {
		t.Fatalf("fired leg should start at 0, got %v", got)
	}
}

func TestBulletPool_PositionsAndReset(t *testing.T) {
	bp := NewBulletPool(3, 1, 2)
	bp.Fire([]Path{straightLeg(Point{0, 0}, Point{100, 0})})
	bp.Fire([]Path{straightLeg(Point{0, 50}, Point{100, 50})})
	bp.Advance()
	want := []Point{{2, 0}, {2, 50}}
	if diff := cmp.Diff(want, bp.Positions()); diff != "" {
		t.Fatalf("positions (-want +got):\n%s", diff)
	}
	bp.Reset()
	if bp.ActiveCount() != 0 || len(bp.Positions()) != 0 {
		t.Fatal("reset should free every slot")
	}
}

func TestBulletPool_BulletReturnsCopy(t *testing.T) {
	bp := NewBulletPool(1, 1, 2)
	bp.Fire([]Path{straightLeg(Point{0, 0}, Point{10, 0})})
	b := bp.Bullet(0)
	b.Paths[0].CurrentDistance = 99
	if bp.Bullet(0).Paths[0].CurrentDistance != 0 {
		t.Fatal("Bullet must not expose the pool's paths")
	}
}
