package screen

import (
	"testing"

	"github.com/Garsondee/ricochet/internal/game"
)

func TestEventFeed_KeepsNewestInOrder(t *testing.T) {
	f := NewEventFeed()
	total := feedMaxEntries + 7
	for i := 0; i < total; i++ {
		f.Add(game.SimLogEntry{Tick: i})
	}
	recent := f.Recent()
	if len(recent) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(recent))
	}
	if recent[0].Tick != 7 || recent[len(recent)-1].Tick != total-1 {
		t.Fatalf("expected ticks 7..%d, got %d..%d", total-1, recent[0].Tick, recent[len(recent)-1].Tick)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Tick != recent[i-1].Tick+1 {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestEventFeed_PullIsIncremental(t *testing.T) {
	log := game.NewSimLog(false)
	f := NewEventFeed()

	log.Add(1, "tank", game.CatBullet, game.KeyFire, "", 0)
	f.Pull(log)
	f.Pull(log)
	if n := len(f.Recent()); n != 1 {
		t.Fatalf("pulling twice must not duplicate, got %d", n)
	}

	log.Add(2, "b0", game.CatBullet, game.KeyRetire, "", 0)
	log.Add(3, "--", game.CatSim, game.KeyQuit, "", 0)
	f.Pull(log)
	recent := f.Recent()
	if len(recent) != 3 || recent[2].Key != game.KeyQuit {
		t.Fatalf("expected 3 entries ending in quit, got %+v", recent)
	}
}

func TestEventFeed_EmptyFeed(t *testing.T) {
	if n := len(NewEventFeed().Recent()); n != 0 {
		t.Fatalf("new feed should be empty, got %d", n)
	}
}
