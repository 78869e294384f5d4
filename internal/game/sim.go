package game

import (
	"fmt"
	"log/slog"
)

// DefaultAimStep is how many byte-angle steps the barrel turns per tick.
const DefaultAimStep = 2

// Input is the per-tick control state. Fire is level-sensitive here; the Sim
// turns it into a single shot per press.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Up          bool
	Down        bool
	Left        bool
	Right       bool
	Fire        bool
	Quit        bool
}

// Snapshot is a read-only copy of what the renderer needs for one frame.
type Snapshot struct {
	Tick    int
	Tank    Point
	Aim     ByteAngle
	Bullets []Point
	Lines   []Segment // debug overlay
	Casts   []Cast    // debug overlay: rays and hits of the last fire
}

// Sim owns all mutable arena state. One Step is one simulation tick.
type Sim struct {
	cfg     Config
	level   *Level
	lines   *BounceLines
	bullets *BulletPool

	tank        Point
	aim         ByteAngle
	firePressed bool
	lastCasts   []Cast
	tick        int

	Log *SimLog
}

// NewSim builds a simulation for lvl. The level's tile size must match cfg.
func NewSim(cfg Config, lvl *Level) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		cfg: cfg,
		Log: NewSimLog(false),
	}
	if err := s.LoadLevel(lvl); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel swaps in a new level: bounce lines are rebuilt wholesale, every
// bullet is dropped and the tank returns to the spawn point.
func (s *Sim) LoadLevel(lvl *Level) error {
	if lvl == nil || lvl.Map == nil {
		return ErrEmptyLevel
	}
	if lvl.Map.TileSize != s.cfg.TileSize {
		return fmt.Errorf("%w: level tile size %v, config tile size %v",
			ErrBadConfig, lvl.Map.TileSize, s.cfg.TileSize)
	}
	s.level = lvl
	s.lines = LoadBounceLines(lvl.Map, s.cfg.MergeTolerance)
	if s.bullets != nil && s.bullets.Cap() == s.cfg.MaxBullets && s.bullets.Legs() == s.cfg.BulletBounces {
		s.bullets.Reset()
	} else {
		s.bullets = NewBulletPool(s.cfg.MaxBullets, s.cfg.BulletBounces, s.cfg.BulletSpeed)
	}
	s.tank = lvl.Map.SpawnPoint()
	s.aim = 0
	s.firePressed = false
	s.lastCasts = nil
	s.Log.Add(s.tick, subjectSim, CatLevel, KeyLoaded,
		fmt.Sprintf("%s %dx%d, %d bounce lines", lvl.Name, lvl.Map.Cols, lvl.Map.Rows, s.lines.Len()),
		float64(s.lines.Len()))
	slog.Info("level loaded", "name", lvl.Name, "bounce_lines", s.lines.Len())
	return nil
}

// Step advances one tick. It returns false once Quit is seen; nothing else
// happens on that tick.
func (s *Sim) Step(in Input) bool {
	if in.Quit {
		s.Log.Add(s.tick, subjectSim, CatSim, KeyQuit, "quit requested", 0)
		slog.Info("quit requested", "tick", s.tick)
		return false
	}
	s.tick++

	if in.RotateRight {
		s.aim = s.aim.Rotate(s.cfg.AimStep)
	}
	if in.RotateLeft {
		s.aim = s.aim.Rotate(-s.cfg.AimStep)
	}

	s.moveTank(in)

	if in.Fire {
		if !s.firePressed {
			s.firePressed = true
			s.Fire()
		}
	} else {
		s.firePressed = false
	}

	for _, slot := range s.bullets.Advance() {
		s.Log.Add(s.tick, bulletLabel(slot), CatBullet, KeyRetire, "path complete", 0)
	}

	before := s.tank
	s.tank = ResolveTankCollisions(s.tank, s.level.Map, s.cfg.TankSize)
	if s.tank != before {
		s.Log.AddVerbose(s.tick, subjectTank, CatTank, KeyPushOut,
			fmt.Sprintf("%s -> %s", before, s.tank), before.DistanceTo(s.tank))
	}
	return true
}

func (s *Sim) moveTank(in Input) {
	v := s.cfg.MoveSpeed
	if in.Up {
		s.tank.Y -= v
	}
	if in.Down {
		s.tank.Y += v
	}
	if in.Left {
		s.tank.X -= v
	}
	if in.Right {
		s.tank.X += v
	}
}

// Fire plans a bullet from the tank along the current aim and launches it.
// A full pool or a plan that finds no wall drops the shot silently; the
// return value only reports whether a bullet left the barrel.
func (s *Sim) Fire() bool {
	if _, ok := s.bullets.FreeSlot(); !ok {
		s.Log.Add(s.tick, subjectTank, CatBullet, KeyNoSlot, "all slots busy", 0)
		slog.Debug("shot dropped", "reason", "no free slot", "tick", s.tick)
		return false
	}
	plan, ok := TracePaths(s.tank, s.aim.Radians(), s.lines, TraceOptions{
		Legs:      s.bullets.Legs(),
		RayLength: s.cfg.RayLength,
	})
	s.lastCasts = plan.Casts
	if !ok {
		s.Log.Add(s.tick, subjectTank, CatBullet, KeyNoHit,
			fmt.Sprintf("aim %d: no wall within %.0fpx", s.aim, s.cfg.RayLength), float64(len(plan.Legs)))
		slog.Debug("shot dropped", "reason", "no wall in range", "aim", uint8(s.aim), "tick", s.tick)
		return false
	}
	slot, _ := s.bullets.Fire(plan.Legs)
	total := 0.0
	for _, leg := range plan.Legs {
		total += leg.TotalDistance
	}
	s.Log.Add(s.tick, bulletLabel(slot), CatBullet, KeyFire,
		fmt.Sprintf("%d legs, %.1fpx, ends %s", len(plan.Legs), total, plan.Legs[len(plan.Legs)-1].End), total)
	slog.Debug("bullet fired", "slot", slot, "aim", uint8(s.aim), "legs", len(plan.Legs), "distance", total)
	return true
}

// Tick returns the number of completed ticks.
func (s *Sim) Tick() int { return s.tick }

// Tank returns the tank centre.
func (s *Sim) Tank() Point { return s.tank }

// SetTank places the tank centre without collision resolution.
func (s *Sim) SetTank(p Point) { s.tank = p }

// Aim returns the barrel angle.
func (s *Sim) Aim() ByteAngle { return s.aim }

// SetAim points the barrel.
func (s *Sim) SetAim(a ByteAngle) { s.aim = a }

// Config returns the settings the sim was built with.
func (s *Sim) Config() Config { return s.cfg }

// Level returns the loaded level.
func (s *Sim) Level() *Level { return s.level }

// BounceLines returns the frozen segment set of the current level.
func (s *Sim) BounceLines() *BounceLines { return s.lines }

// Bullets returns the bullet pool.
func (s *Sim) Bullets() *BulletPool { return s.bullets }

// Snapshot copies the state the renderer reads.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Tank:    s.tank,
		Aim:     s.aim,
		Bullets: s.bullets.Positions(),
		Lines:   s.lines.All(),
		Casts:   cloneCasts(s.lastCasts),
	}
}
