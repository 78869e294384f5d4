package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyLevel  = errors.New("level has no tiles")
	ErrRaggedLevel = errors.New("level rows differ in length")
	ErrBadTile     = errors.New("unknown tile code")
)

// sampleRows is the stock 12×8 arena. Digits are tile codes.
var sampleRows = []string{
	"111111111111",
	"100000000001",
	"101100001101",
	"100000000001",
	"100000000001",
	"100102201001",
	"100100001001",
	"111111111111",
}

// Level is a named tile map.
type Level struct {
	Name string
	Map  *TileMap
}

type levelFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// SampleLevel returns the built-in arena.
func SampleLevel(tileSize float64) *Level {
	lvl, err := parseRows("sample", sampleRows, tileSize)
	if err != nil {
		panic(fmt.Sprintf("sample level: %v", err))
	}
	return lvl
}

// ParseLevel decodes a YAML level document:
//
//	name: courtyard
//	rows:
//	  - "1111"
//	  - "1001"
//	  - "1111"
//
// Whitespace inside a row is ignored, so "1 0 0 1" also works.
func ParseLevel(data []byte, tileSize float64) (*Level, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return parseRows(lf.Name, lf.Rows, tileSize)
}

// LoadLevel reads a YAML level file. An empty path yields the sample level.
func LoadLevel(path string, tileSize float64) (*Level, error) {
	if path == "" {
		return SampleLevel(tileSize), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := ParseLevel(data, tileSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = path
	}
	return lvl, nil
}

func parseRows(name string, rows []string, tileSize float64) (*Level, error) {
	cleaned := make([]string, 0, len(rows))
	for _, r := range rows {
		cleaned = append(cleaned, strings.Join(strings.Fields(r), ""))
	}
	if len(cleaned) == 0 || len(cleaned[0]) == 0 {
		return nil, ErrEmptyLevel
	}
	cols := len(cleaned[0])
	tm := NewTileMap(cols, len(cleaned), tileSize)
	for row, r := range cleaned {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedLevel, row, len(r), cols)
		}
		for col, ch := range []byte(r) {
			t := TileID(ch - '0')
			if ch < '0' || !t.Valid() {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadTile, ch, row, col)
			}
			tm.Set(col, row, t)
		}
	}
	return &Level{Name: name, Map: tm}, nil
}
