package game

import (
	"fmt"
	"math"
)

// TileID identifies the contents of one grid cell.
type TileID uint8

const (
	TileAir             TileID = iota // Open floor
	TileWall                          // Solid wall, reflects bullets
	TileFence                         // Blocks tanks, bullets pass through
	TileRoof                          // Overhead cover, drawn above tanks
	TilePlayerSpawn                   // Player start position
	TilePlayerRoofSpawn               // Player start under a roof
	TileEnemySpawn                    // Enemy start position
	TileEnemyRoofSpawn                // Enemy start under a roof
	TileWeaponSpawn                   // Weapon pickup location
	tileIDCount                       // sentinel
)

// TileInvalid is returned for lookups outside the grid. It is never solid.
const TileInvalid TileID = 0xFF

func (t TileID) String() string {
	switch t {
	case TileAir:
		return "air"
	case TileWall:
		return "wall"
	case TileFence:
		return "fence"
	case TileRoof:
		return "roof"
	case TilePlayerSpawn:
		return "player-spawn"
	case TilePlayerRoofSpawn:
		return "player-roof-spawn"
	case TileEnemySpawn:
		return "enemy-spawn"
	case TileEnemyRoofSpawn:
		return "enemy-roof-spawn"
	case TileWeaponSpawn:
		return "weapon-spawn"
	case TileInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the known tile codes.
func (t TileID) Valid() bool {
	return t < tileIDCount
}

// IsSolidWall reports whether bullets reflect off the tile.
func (t TileID) IsSolidWall() bool {
	return t == TileWall
}

// BlocksTank reports whether a tank may not enter the tile.
func (t TileID) BlocksTank() bool {
	return t == TileWall || t == TileFence
}

// IsBounceSource reports whether extraction probes the tile's neighbours.
// Only air and fence cells contribute bounce lines; roof and spawn codes are
// placement hints handled elsewhere.
func (t TileID) IsBounceSource() bool {
	return t == TileAir || t == TileFence
}

// TileMap is the arena grid. It is read-only once a level is loaded.
type TileMap struct {
	Cols     int
	Rows     int
	TileSize float64
	Tiles    []TileID // row-major: index = row*Cols + col
}

// NewTileMap creates an all-air map.
func NewTileMap(cols, rows int, tileSize float64) *TileMap {
	return &TileMap{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Tiles:    make([]TileID, cols*rows),
	}
}

// inBounds returns true if (col, row) is within the tile map.
func (tm *TileMap) inBounds(col, row int) bool {
	return col >= 0 && col < tm.Cols && row >= 0 && row < tm.Rows
}

// At returns the tile at (col, row), or TileInvalid if out of bounds.
func (tm *TileMap) At(col, row int) TileID {
	if !tm.inBounds(col, row) {
		return TileInvalid
	}
	return tm.Tiles[row*tm.Cols+col]
}

// Set places a tile. Out-of-range writes are ignored.
func (tm *TileMap) Set(col, row int, t TileID) {
	if !tm.inBounds(col, row) {
		return
	}
	tm.Tiles[row*tm.Cols+col] = t
}

// Width returns the map width in world pixels.
func (tm *TileMap) Width() float64 {
	return float64(tm.Cols) * tm.TileSize
}

// Height returns the map height in world pixels.
func (tm *TileMap) Height() float64 {
	return float64(tm.Rows) * tm.TileSize
}

// Center returns the world-space centre of the whole map.
func (tm *TileMap) Center() Point {
	return Point{X: tm.Width() / 2, Y: tm.Height() / 2}
}

// CellOf returns the grid cell containing world point p.
func (tm *TileMap) CellOf(p Point) (col, row int) {
	return int(math.Floor(p.X / tm.TileSize)), int(math.Floor(p.Y / tm.TileSize))
}

// CellCenter returns the world-space centre of (col, row).
func (tm *TileMap) CellCenter(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * tm.TileSize,
		Y: (float64(row) + 0.5) * tm.TileSize,
	}
}

// Find returns the first cell holding t in row-major order.
func (tm *TileMap) Find(t TileID) (col, row int, ok bool) {
	for i, v := range tm.Tiles {
		if v == t {
			return i % tm.Cols, i / tm.Cols, true
		}
	}
	return 0, 0, false
}

// SpawnPoint returns where the player tank starts: the centre of the first
// player spawn tile, or the map centre when the level has none.
func (tm *TileMap) SpawnPoint() Point {
	for _, t := range []TileID{TilePlayerSpawn, TilePlayerRoofSpawn} {
		if col, row, ok := tm.Find(t); ok {
			return tm.CellCenter(col, row)
		}
	}
	return tm.Center()
}
