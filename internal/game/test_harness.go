package game

import "fmt"

// TestSim is a headless arena harness used by tests and the headless report.
// It wraps a Sim built from options and drives it with scripted input.
type TestSim struct {
	Sim    *Sim
	SimLog *SimLog

	cfg     Config
	level   *Level
	verbose bool
	err     error
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra     simOptionKind = iota // config, level, verbose: applied before the Sim exists
	simOptPlacement                      // tank position and aim: applied to the built Sim
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithBounces sets the bounce budget (legs per bullet).
func WithBounces(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.BulletBounces = n
	}}
}

// WithMaxBullets sets the bullet pool capacity.
func WithMaxBullets(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.MaxBullets = n
	}}
}

// WithLevel uses lvl instead of the sample arena.
func WithLevel(lvl *Level) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.level = lvl
	}}
}

// WithRows builds the level from digit rows at the configured tile size.
func WithRows(rows ...string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		lvl, err := parseRows("test", rows, ts.cfg.TileSize)
		if err != nil {
			ts.err = err
			return
		}
		ts.level = lvl
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithTank places the tank centre at (x, y).
func WithTank(x, y float64) SimOption {
	return SimOption{simOptPlacement, func(ts *TestSim) {
		ts.Sim.SetTank(Point{X: x, Y: y})
	}}
}

// WithAim points the barrel.
func WithAim(a ByteAngle) SimOption {
	return SimOption{simOptPlacement, func(ts *TestSim) {
		ts.Sim.SetAim(a)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (config, level, verbose)
//  2. Build the Sim
//  3. Placement (tank, aim)
//
// Construction errors (bad rows, invalid config) are returned.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{cfg: DefaultConfig()}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.err != nil {
		return nil, ts.err
	}
	if ts.level == nil {
		ts.level = SampleLevel(ts.cfg.TileSize)
	}
	sim, err := NewSim(ts.cfg, ts.level)
	if err != nil {
		return nil, fmt.Errorf("build sim: %w", err)
	}
	sim.Log.verbose = ts.verbose
	ts.Sim = sim
	ts.SimLog = sim.Log
	for _, o := range opts {
		if o.kind == simOptPlacement {
			o.fn(ts)
		}
	}
	return ts, nil
}

// RunTicks advances the simulation n idle ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Sim.Step(Input{})
	}
}

// RunUntil advances idle ticks up to maxTicks, stopping early once predicate
// returns true. It returns the tick at which the predicate held, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Sim.Step(Input{})
		if predicate(ts) {
			return ts.Sim.Tick()
		}
	}
	return -1
}

// Hold steps n ticks with the same input held down.
func (ts *TestSim) Hold(in Input, n int) {
	for i := 0; i < n; i++ {
		ts.Sim.Step(in)
	}
}

// Shoot presses and releases fire over two ticks and reports whether a
// bullet was launched.
func (ts *TestSim) Shoot() bool {
	before := ts.SimLog.CountCategory(CatBullet, KeyFire)
	ts.Sim.Step(Input{Fire: true})
	ts.Sim.Step(Input{})
	return ts.SimLog.CountCategory(CatBullet, KeyFire) > before
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Sim.Tick()
}

// Snapshot returns the renderer view of the current state.
func (ts *TestSim) Snapshot() Snapshot {
	return ts.Sim.Snapshot()
}
