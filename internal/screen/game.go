// Package screen is the ebiten frontend: it polls the keyboard, steps the
// arena simulation once per frame and draws it with the camera on the tank.
package screen

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/Garsondee/ricochet/internal/game"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	// ViewWidth and ViewHeight are the logical size of the arena viewport.
	ViewWidth  = 640
	ViewHeight = 480
	hitMarker  = 3
)

var (
	backgroundColor = colornames.Black
	floorColor      = color.RGBA{R: 24, G: 26, B: 30, A: 255}
	wallColor       = colornames.Slategray
	fenceColor      = colornames.Saddlebrown
	roofColor       = color.RGBA{R: 60, G: 70, B: 60, A: 200}
	tankColor       = colornames.Forestgreen
	barrelColor     = colornames.Darkolivegreen
	bulletColor     = colornames.Gold
	lineColor       = colornames.Yellow
	rayColor        = color.RGBA{R: 255, G: 60, B: 60, A: 160}
	hitColor        = colornames.Red
)

// Keys maps physical keys to arena controls. Each control accepts any of its
// keys.
type Keys struct {
	Up, Down, Left, Right   []ebiten.Key
	RotateLeft, RotateRight []ebiten.Key
	Fire, Quit, Debug, Copy []ebiten.Key
}

// DefaultKeys is the stock layout: arrows or WASD to drive, Q/E to turn the
// barrel, Space or Enter to fire, Escape or Delete to quit.
func DefaultKeys() Keys {
	return Keys{
		Up:          []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:        []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Left:        []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:       []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		RotateLeft:  []ebiten.Key{ebiten.KeyQ},
		RotateRight: []ebiten.Key{ebiten.KeyE},
		Fire:        []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		Quit:        []ebiten.Key{ebiten.KeyEscape, ebiten.KeyDelete},
		Debug:       []ebiten.Key{ebiten.KeyF1},
		Copy:        []ebiten.Key{ebiten.KeyC},
	}
}

// Input turns the set of held keys into one tick of arena input.
func (k Keys) Input(pressed func(ebiten.Key) bool) game.Input {
	held := func(keys []ebiten.Key) bool {
		for _, key := range keys {
			if pressed(key) {
				return true
			}
		}
		return false
	}
	return game.Input{
		RotateLeft:  held(k.RotateLeft),
		RotateRight: held(k.RotateRight),
		Up:          held(k.Up),
		Down:        held(k.Down),
		Left:        held(k.Left),
		Right:       held(k.Right),
		Fire:        held(k.Fire),
		Quit:        held(k.Quit),
	}
}

// Game implements ebiten.Game around a Sim.
type Game struct {
	sim       *game.Sim
	keys      Keys
	feed      *EventFeed
	showDebug bool
	width     int
	height    int
}

// New wraps sim. showDebug starts with the bounce-line overlay visible.
func New(sim *game.Sim, showDebug bool) *Game {
	return &Game{
		sim:       sim,
		keys:      DefaultKeys(),
		feed:      NewEventFeed(),
		showDebug: showDebug,
		width:     ViewWidth + feedPanelWidth,
		height:    ViewHeight,
	}
}

// Size returns the logical screen size including the event panel.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

// Update runs one simulation tick. It returns ebiten.Termination once the
// player quits.
func (g *Game) Update() error {
	if g.justPressed(g.keys.Debug) {
		g.showDebug = !g.showDebug
	}
	if g.justPressed(g.keys.Copy) {
		if err := clipboard.WriteAll(DebugText(g.sim.Snapshot())); err != nil {
			slog.Warn("copy snapshot", "err", err)
		}
	}

	running := g.sim.Step(g.keys.Input(ebiten.IsKeyPressed))
	g.feed.Pull(g.sim.Log)
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) justPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Camera returns the world-to-screen offset that keeps the tank centred in
// the viewport.
func Camera(tank game.Point) (float64, float64) {
	return ViewWidth/2 - tank.X, ViewHeight/2 - tank.Y
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.sim.Snapshot()
	camX, camY := Camera(snap.Tank)

	g.drawTiles(screen, camX, camY)
	g.drawTank(screen, snap, camX, camY)
	r := float32(g.sim.Config().BulletRadius)
	for _, b := range snap.Bullets {
		vector.FillCircle(screen, float32(b.X+camX), float32(b.Y+camY), r, bulletColor, true)
	}
	if g.showDebug {
		drawDebug(screen, snap, camX, camY)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  aim %3d  bullets %d/%d",
		snap.Tick, snap.Aim, len(snap.Bullets), g.sim.Bullets().Cap()), 6, ViewHeight-18)

	g.feed.Draw(screen, ViewWidth, g.height)
}

func (g *Game) drawTiles(screen *ebiten.Image, camX, camY float64) {
	tm := g.sim.Level().Map
	s := float32(tm.TileSize)
	vector.FillRect(screen, float32(camX), float32(camY), float32(tm.Width()), float32(tm.Height()), floorColor, false)
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			x := float32(float64(col)*tm.TileSize + camX)
			y := float32(float64(row)*tm.TileSize + camY)
			switch tm.At(col, row) {
			case game.TileWall:
				vector.FillRect(screen, x, y, s, s, wallColor, false)
			case game.TileFence:
				vector.StrokeRect(screen, x+2, y+2, s-4, s-4, 2, fenceColor, false)
			case game.TileRoof, game.TilePlayerRoofSpawn, game.TileEnemyRoofSpawn:
				vector.FillRect(screen, x, y, s, s, roofColor, false)
			}
		}
	}
}

func (g *Game) drawTank(screen *ebiten.Image, snap game.Snapshot, camX, camY float64) {
	size := g.sim.Config().TankSize
	cx, cy := snap.Tank.X+camX, snap.Tank.Y+camY
	vector.FillRect(screen, float32(cx-size/2), float32(cy-size/2), float32(size), float32(size), tankColor, false)
	dx, dy := snap.Aim.Heading()
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+dx*size), float32(cy+dy*size), 3, barrelColor, true)
}

func drawDebug(screen *ebiten.Image, snap game.Snapshot, camX, camY float64) {
	for _, l := range snap.Lines {
		vector.StrokeLine(screen,
			float32(l.Start.X+camX), float32(l.Start.Y+camY),
			float32(l.End.X+camX), float32(l.End.Y+camY),
			1, lineColor, false)
	}
	for _, c := range snap.Casts {
		vector.StrokeLine(screen,
			float32(c.From.X+camX), float32(c.From.Y+camY),
			float32(c.To.X+camX), float32(c.To.Y+camY),
			1, rayColor, false)
		for _, h := range c.Hits {
			vector.FillCircle(screen, float32(h.Point.X+camX), float32(h.Point.Y+camY), hitMarker, hitColor, true)
		}
	}
}

// Layout reports a fixed logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// DebugText renders a snapshot as plain text for the clipboard.
func DebugText(snap game.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tick=%d tank=%s aim=%d\n", snap.Tick, snap.Tank, snap.Aim)
	fmt.Fprintf(&sb, "bullets=%d\n", len(snap.Bullets))
	for _, b := range snap.Bullets {
		fmt.Fprintf(&sb, "  %s\n", b)
	}
	fmt.Fprintf(&sb, "lines=%d\n", len(snap.Lines))
	for _, l := range snap.Lines {
		fmt.Fprintf(&sb, "  %s\n", l)
	}
	for i, c := range snap.Casts {
		fmt.Fprintf(&sb, "cast %d %s->%s hits=%d\n", i, c.From, c.To, len(c.Hits))
		for _, h := range c.Hits {
			fmt.Fprintf(&sb, "  %s on %s\n", h.Point, h.Line)
		}
	}
	return sb.String()
}
