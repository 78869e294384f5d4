package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Garsondee/ricochet/internal/game"
	"github.com/Garsondee/ricochet/internal/screen"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var configPath, levelPath string
	var debug bool
	var scale int

	flag.StringVar(&configPath, "config", "", "YAML config file (defaults when empty)")
	flag.StringVar(&levelPath, "level", "", "YAML level file (built-in sample when empty)")
	flag.BoolVar(&debug, "debug", false, "debug logging and bounce-line overlay")
	flag.IntVar(&scale, "scale", 2, "window scale factor")
	flag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if scale <= 0 {
		log.Fatalf("-scale must be > 0, got %d", scale)
	}
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	lvl, err := game.LoadLevel(levelPath, cfg.TileSize)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := game.NewSim(cfg, lvl)
	if err != nil {
		log.Fatal(err)
	}

	g := screen.New(sim, debug)
	w, h := g.Size()
	ebiten.SetWindowTitle("Ricochet")
	ebiten.SetWindowSize(w*scale, h*scale)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
