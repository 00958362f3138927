package loop

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cixl/status"
)

// ErrNotInitialized is returned by Run when Init has not been called.
var ErrNotInitialized = errors.New("loop: Run called before Init")

// ErrNoCurrentGame is returned by the package-level default-handle
// functions when no default Game has been set.
var ErrNoCurrentGame = errors.New("loop: no current game")

// Config holds the scheduler's pacing parameters.
type Config struct {
	IsFixedTimeStep bool
	TargetElapsedMS uint32
	MaxElapsedMS    uint32
	ClocksPerSecond int64
}

// DefaultConfig returns the reference configuration: fixed-step at 16ms
// (roughly 60Hz) with a 500ms catch-up ceiling, ticks counted in
// nanoseconds (time.Second's tick count).
func DefaultConfig() Config {
	return Config{
		IsFixedTimeStep: true,
		TargetElapsedMS: 16,
		MaxElapsedMS:    500,
		ClocksPerSecond: int64(time.Second),
	}
}

// GameTime is the timing snapshot passed to every Update/Draw callback.
type GameTime struct {
	TotalTicks      time.Duration
	ElapsedTicks    time.Duration
	ElapsedMS       uint32
	IsRunningSlowly bool
	CurrentFPS      uint32
	FrameLag        int
	StepCount       int
}

// Game is the scheduler handle: configuration, callback slots, and the
// running timing state. The design notes call for threading a shared-state
// reference through Update/Draw rather than a process-wide mutable slot;
// Game.shared carries exactly that reference.
type Game struct {
	Config       Config
	Exit         func()
	Update       func(gt *GameTime, shared any)
	Draw         func(gt *GameTime, shared any)
	TimeProvider TimeProvider

	// Metrics, if non-nil, receives loop.ticks / loop.frame_lag / loop.fps /
	// loop.running_slowly on every tick. A nil Metrics is a no-op, checked
	// once per tick rather than scattered throughout.
	Metrics *status.Registry

	initialized bool
	shared      any
	shouldExit  atomic.Bool

	targetTicks time.Duration
	maxTicks    time.Duration

	previousTime time.Time
	accumulator  time.Duration
	frameLag     int
	fpsCounter   int
	fpsWindow    time.Duration

	gameTime GameTime
}

// NewGame constructs a Game with the given configuration, a built-in Exit
// that sets the should-exit flag, and a real monotonic clock. The host may
// override Exit, Update, Draw, and TimeProvider before calling Init.
func NewGame(cfg Config) *Game {
	g := &Game{
		Config:       cfg,
		TimeProvider: NewMonotonicTimeProvider(),
	}
	g.Exit = g.RequestExit
	return g
}

// ShouldExit reports whether the loop has been asked to stop.
func (g *Game) ShouldExit() bool {
	return g.shouldExit.Load()
}

// RequestExit sets the should-exit flag. Safe to call from Update or Draw
// without external synchronization, since the loop itself is
// single-threaded and only reads the flag cooperatively.
func (g *Game) RequestExit() {
	g.shouldExit.Store(true)
}

// Init captures the shared-state reference and converts the configured
// target/max elapsed milliseconds to ticks.
func (g *Game) Init(shared any) error {
	g.shared = shared
	g.targetTicks = MSToTicks(g.Config.TargetElapsedMS, g.Config.ClocksPerSecond)
	g.maxTicks = MSToTicks(g.Config.MaxElapsedMS, g.Config.ClocksPerSecond)
	g.initialized = true
	return nil
}

// Run requires Init to have been called, records the current wall-clock
// reading, then iterates tick until ShouldExit becomes true.
func (g *Game) Run() error {
	if !g.initialized {
		return ErrNotInitialized
	}
	g.previousTime = g.now()
	for !g.shouldExit.Load() {
		if err := g.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) now() time.Time {
	return g.TimeProvider.Now()
}

// ticksFromElapsed converts a real wall-clock duration into ticks at the
// configured clocks-per-second rate. When ClocksPerSecond is
// int64(time.Second) (the default), this is the identity conversion and
// ticks are plain nanoseconds.
func ticksFromElapsed(d time.Duration, clocksPerSecond int64) time.Duration {
	return time.Duration(int64(d) * clocksPerSecond / int64(time.Second))
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// tick implements the tick algorithm of spec.md §4.F: accumulator update,
// paced-wait retry loop, catch-up clamp, fixed-step inner update loop with
// frame-lag/running-slowly hysteresis, the variable-step branch, and the
// draw call plus FPS bookkeeping. tick never fails on its own; overshooting
// the target is only observable through IsRunningSlowly.
func (g *Game) tick() error {
	current := g.now()
	g.accumulator += ticksFromElapsed(current.Sub(g.previousTime), g.Config.ClocksPerSecond)
	g.previousTime = current

	if g.Config.IsFixedTimeStep {
		for g.accumulator < g.targetTicks {
			waitMS := TicksToMS(g.targetTicks-g.accumulator, g.Config.ClocksPerSecond)
			if waitMS < 1 {
				waitMS = 1
			}
			time.Sleep(time.Duration(waitMS) * time.Millisecond)

			current = g.now()
			g.accumulator += ticksFromElapsed(current.Sub(g.previousTime), g.Config.ClocksPerSecond)
			g.previousTime = current
		}
	}

	if g.accumulator > g.maxTicks {
		g.accumulator = g.maxTicks
	}

	gt := &g.gameTime

	if g.Config.IsFixedTimeStep {
		gt.ElapsedTicks = g.targetTicks
		gt.ElapsedMS = g.Config.TargetElapsedMS
		gt.StepCount = 0

		stepCount := 0
		for g.accumulator >= g.targetTicks && !g.shouldExit.Load() {
			g.accumulator -= g.targetTicks
			gt.TotalTicks += g.targetTicks
			stepCount++
			gt.StepCount = stepCount

			g.fpsWindow += g.targetTicks
			if g.fpsWindow > time.Duration(g.Config.ClocksPerSecond) {
				gt.CurrentFPS = uint32(g.fpsCounter)
				g.fpsCounter = 0
				g.fpsWindow -= time.Duration(g.Config.ClocksPerSecond)
			}

			if g.Update != nil {
				g.Update(gt, g.shared)
			}
		}

		g.frameLag += max0(stepCount - 1)
		if gt.IsRunningSlowly && g.frameLag == 0 {
			gt.IsRunningSlowly = false
		} else if g.frameLag >= 5 {
			gt.IsRunningSlowly = true
		}
		if stepCount == 1 && g.frameLag > 0 {
			g.frameLag--
		}

		gt.ElapsedTicks = g.targetTicks * time.Duration(stepCount)
		gt.ElapsedMS = TicksToMS(gt.ElapsedTicks, g.Config.ClocksPerSecond)
		gt.FrameLag = g.frameLag
	} else {
		gt.ElapsedTicks = g.accumulator
		gt.ElapsedMS = TicksToMS(g.accumulator, g.Config.ClocksPerSecond)
		gt.TotalTicks += g.accumulator
		g.accumulator = 0
		gt.StepCount = 1
		if g.Update != nil {
			g.Update(gt, g.shared)
		}
	}

	if g.Draw != nil {
		g.Draw(gt, g.shared)
	}
	g.fpsCounter++

	g.publishMetrics(gt)
	return nil
}

func (g *Game) publishMetrics(gt *GameTime) {
	if g.Metrics == nil {
		return
	}
	g.Metrics.Ints.Get("loop.ticks").Store(int64(gt.TotalTicks))
	g.Metrics.Ints.Get("loop.frame_lag").Store(int64(gt.FrameLag))
	g.Metrics.Ints.Get("loop.fps").Store(int64(gt.CurrentFPS))
	g.Metrics.Bools.Get("loop.running_slowly").Store(gt.IsRunningSlowly)
}

var defaultGame *Game

// SetDefault installs g as the default-handle Game used by the
// package-level Init/Run compatibility functions.
func SetDefault(g *Game) {
	defaultGame = g
}

// Init calls Init on the default Game, or returns ErrNoCurrentGame if none
// has been set via SetDefault.
func Init(shared any) error {
	if defaultGame == nil {
		return ErrNoCurrentGame
	}
	return defaultGame.Init(shared)
}

// Run calls Run on the default Game, or returns ErrNoCurrentGame if none
// has been set via SetDefault.
func Run() error {
	if defaultGame == nil {
		return ErrNoCurrentGame
	}
	return defaultGame.Run()
}
