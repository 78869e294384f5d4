package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/ricochet/internal/game"
)

type shotStats struct {
	aim      game.ByteAngle
	fired    bool
	reason   string // why the shot was dropped
	legs     int
	distance float64
	end      game.Point
	// flightTicks counts the fire tick through the retire tick; -1 while the
	// bullet is still in the air when the tick budget runs out.
	flightTicks int
}

type aggregate struct {
	shots     int
	fired     int
	dropped   int
	inFlight  int // fired but still flying at the end of the run
	avgDist   float64
	avgFlight float64
	longest   shotStats
}

func main() {
	var configPath, levelPath string
	var step, ticks, bounces int
	var debug bool

	flag.StringVar(&configPath, "config", "", "YAML config file (defaults when empty)")
	flag.StringVar(&levelPath, "level", "", "YAML level file (built-in sample when empty)")
	flag.IntVar(&step, "step", 8, "byte-angle step between shots (1..255)")
	flag.IntVar(&ticks, "ticks", 2000, "tick budget per shot")
	flag.IntVar(&bounces, "bounces", 0, "override bullet_bounces when > 0")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if step <= 0 || step > 255 {
		fmt.Println("error: -step must be in 1..255")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if bounces > 0 {
		cfg.BulletBounces = bounces
	}
	lvl, err := game.LoadLevel(levelPath, cfg.TileSize)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Ricochet Report ===\n")
	fmt.Printf("level=%s size=%dx%d bounces=%d step=%d ticks=%d\n\n",
		lvl.Name, lvl.Map.Cols, lvl.Map.Rows, cfg.BulletBounces, step, ticks)

	all := make([]shotStats, 0, 256/step+1)
	for _, aim := range sweep(step) {
		s, err := runShot(cfg, lvl, aim, ticks)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		all = append(all, s)
		printShot(s)
	}
	printAggregate(all)
}

// sweep returns every aim from 0 in increments of step, without wrapping.
func sweep(step int) []game.ByteAngle {
	var out []game.ByteAngle
	for a := 0; a < 256; a += step {
		out = append(out, game.ByteAngle(a))
	}
	return out
}

func runShot(cfg game.Config, lvl *game.Level, aim game.ByteAngle, ticks int) (shotStats, error) {
	ts, err := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithLevel(lvl),
		game.WithAim(aim),
	)
	if err != nil {
		return shotStats{}, err
	}
	s := shotStats{aim: aim, flightTicks: -1}

	ts.Sim.Step(game.Input{Fire: true})
	fire, ok := ts.SimLog.LastOf(game.CatBullet, game.KeyFire)
	if !ok {
		if e, dropped := ts.SimLog.LastOf(game.CatBullet, ""); dropped {
			s.reason = e.Key
		}
		return s, nil
	}
	s.fired = true

	b := ts.Sim.Bullets().Bullet(0)
	s.legs = len(b.Paths)
	for _, p := range b.Paths {
		s.distance += p.TotalDistance
	}
	s.end = b.Paths[len(b.Paths)-1].End

	if ts.Sim.Bullets().ActiveCount() > 0 {
		ts.RunUntil(func(ts *game.TestSim) bool {
			return ts.Sim.Bullets().ActiveCount() == 0
		}, ticks)
	}
	if retire, ok := ts.SimLog.LastOf(game.CatBullet, game.KeyRetire); ok {
		s.flightTicks = retire.Tick - fire.Tick + 1
	}
	return s, nil
}

func summarize(all []shotStats) aggregate {
	agg := aggregate{shots: len(all)}
	var distSum float64
	flightSum, flightN := 0, 0
	for _, s := range all {
		if !s.fired {
			agg.dropped++
			continue
		}
		agg.fired++
		distSum += s.distance
		if s.flightTicks < 0 {
			agg.inFlight++
		} else {
			flightSum += s.flightTicks
			flightN++
		}
		if s.distance > agg.longest.distance {
			agg.longest = s
		}
	}
	if agg.fired > 0 {
		agg.avgDist = distSum / float64(agg.fired)
	}
	if flightN > 0 {
		agg.avgFlight = float64(flightSum) / float64(flightN)
	}
	return agg
}

func printShot(s shotStats) {
	if !s.fired {
		fmt.Printf("aim=%3d dropped (%s)\n", s.aim, s.reason)
		return
	}
	flight := "n/a"
	if s.flightTicks >= 0 {
		flight = fmt.Sprintf("%d", s.flightTicks)
	}
	fmt.Printf("aim=%3d legs=%d distance=%7.1f end=%s flight_ticks=%s\n",
		s.aim, s.legs, s.distance, s.end, flight)
}

func printAggregate(all []shotStats) {
	agg := summarize(all)
	fmt.Println("\n=== Aggregate ===")
	fmt.Printf("shots=%d fired=%d dropped=%d still_flying=%d\n", agg.shots, agg.fired, agg.dropped, agg.inFlight)
	fmt.Printf("avg_distance=%.1f avg_flight_ticks=%.1f\n", agg.avgDist, agg.avgFlight)
	if agg.fired > 0 {
		fmt.Printf("longest: aim=%d distance=%.1f end=%s\n", agg.longest.aim, agg.longest.distance, agg.longest.end)
	}
	if agg.dropped > 0 {
		fmt.Printf("drop_reasons: %s\n", strings.Join(dropReasons(all), ","))
	}
}

// dropReasons counts dropped shots per reason, sorted by reason.
func dropReasons(all []shotStats) []string {
	counts := map[string]int{}
	for _, s := range all {
		if !s.fired {
			counts[s.reason]++
		}
	}
	out := make([]string, 0, len(counts))
	for r, n := range counts {
		out = append(out, fmt.Sprintf("%s=%d", r, n))
	}
	sort.Strings(out)
	return out
}
