package screen

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/ricochet/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 40
	feedLineHeight = 12
	feedTitleH     = 16
)

// EventFeed is a ring buffer of recent simulation events rendered beside
// the arena.
type EventFeed struct {
	entries []game.SimLogEntry
	head    int
	count   int
	seen    int // number of SimLog entries already pulled
}

// NewEventFeed creates an empty feed.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]game.SimLogEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(e game.SimLogEntry) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Pull copies every SimLog entry recorded since the previous call.
func (f *EventFeed) Pull(log *game.SimLog) {
	entries := log.Entries()
	if f.seen > len(entries) {
		f.seen = 0
	}
	for _, e := range entries[f.seen:] {
		f.Add(e)
	}
	f.seen = len(entries)
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []game.SimLogEntry {
	result := make([]game.SimLogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel at panelX, full height.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, feedPanelWidth, float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1, colornames.Darkslategray, false)

	vector.FillRect(screen, px, 0, feedPanelWidth, feedTitleH, colornames.Midnightblue, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 1)

	entries := f.Recent()
	maxVisible := (panelH - feedTitleH - 4) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := feedTitleH + 4
	for i, e := range entries {
		// Highlight the newest few.
		if i >= len(entries)-3 {
			vector.FillRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 30, B: 48, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+3), 3, 5, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %-4s %s", e.Tick, e.Subject, e.Key), panelX+12, y-2)
		y += feedLineHeight
	}
}

func categoryColor(category string) color.RGBA {
	switch category {
	case game.CatBullet:
		return colornames.Orange
	case game.CatTank:
		return colornames.Limegreen
	case game.CatLevel:
		return colornames.Deepskyblue
	default:
		return colornames.Lightgray
	}
}
