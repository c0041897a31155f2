package bounce

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Surface is the presentation layer the loop draws through. Implementations
// own the window or terminal and the logo texture.
type Surface interface {
	// SetTint sets the color multiplier applied to the logo.
	SetTint(c Color)
	// Clear fills the canvas with the clear color.
	Clear()
	// DrawLogo draws the tinted logo into dst.
	DrawLogo(dst Rect)
	// Present shows the frame. It is the loop's only blocking point when
	// the surface syncs to the display.
	Present() error
}

// QuitFunc reports whether the user asked to quit since the last poll.
type QuitFunc func() bool

// LoopState is the lifecycle state of a Loop.
type LoopState uint8

const (
	Running       LoopState = iota // ticking every frame
	QuitRequested                  // quit observed, teardown pending
	Terminated                     // resources released
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case QuitRequested:
		return "quit-requested"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("LoopState(%d)", uint8(s))
	}
}

// Loop drives the bounce state machine and a Surface once per frame. It is
// the explicit application context: position, color and tint state live here
// rather than at package scope, and main owns the Loop for the program's
// lifetime.
type Loop struct {
	Fly    FlyState
	Colors ColorState

	// OnRecolor is called once per collided axis with the newly selected
	// color, after the tint has been retargeted.
	OnRecolor func(axis Axis, c ColorState)
	// OnCorner is called when both axes collide in the same tick.
	OnCorner func()

	// Log receives debug output. Defaults to stderr.
	Log io.Writer

	state   LoopState
	bounds  Bounds
	logoW   int
	logoH   int
	surface Surface
	quit    QuitFunc
	rng     *rand.Rand
	tint    *Tint
	debug   bool
	ticks   uint64
}

// NewLoop creates a running loop for cfg. The logo starts at a random
// position inside the canvas, tinted with InitialColor. cfg must be valid.
func NewLoop(cfg Config, surface Surface, quit QuitFunc, rng *rand.Rand) *Loop {
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	b := cfg.Bounds()
	return &Loop{
		Fly:     NewFlyState(b, rng),
		Colors:  NoColor,
		Log:     os.Stderr,
		state:   Running,
		bounds:  b,
		logoW:   cfg.LogoWidth,
		logoH:   cfg.LogoHeight,
		surface: surface,
		quit:    quit,
		rng:     rng,
		tint:    NewTint(InitialColor.Color(), cfg.TintFade, nil),
		debug:   cfg.Debug,
	}
}

// NewRand returns a PCG source seeded with seed, or with a random seed when
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State returns the current lifecycle state.
func (l *Loop) State() LoopState {
	return l.state
}

// Bounds returns the box the logo moves in.
func (l *Loop) Bounds() Bounds {
	return l.bounds
}

// Tint returns the tint driver.
func (l *Loop) Tint() *Tint {
	return l.tint
}

// Ticks returns the number of completed Update calls.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Update polls for quit and, while running, advances one tick: move, one
// recolor per collided axis, then step the tint by dt seconds. It returns
// the axes that collided. After a quit request it does nothing.
func (l *Loop) Update(dt float32) Axis {
	if l.state != Running {
		return AxisNone
	}
	if l.quit != nil && l.quit() {
		l.state = QuitRequested
		l.logf("quit requested after %d ticks", l.ticks)
		return AxisNone
	}

	var hit Axis
	l.Fly, hit = l.Fly.Advance(l.bounds)
	for _, axis := range [...]Axis{AxisX, AxisY} {
		if hit.Has(axis) {
			l.recolor(axis)
		}
	}
	if hit == AxisX|AxisY && l.OnCorner != nil {
		l.OnCorner()
	}

	if c, changed := l.tint.Update(dt); changed {
		l.surface.SetTint(c)
	}
	l.ticks++
	return hit
}

func (l *Loop) recolor(axis Axis) {
	l.Colors = NextColor(l.Colors, l.rng)
	l.tint.Retarget(l.Colors.Color())
	l.logf("hit %s wall at (%d, %d) -> %s", axis, l.Fly.X, l.Fly.Y, l.Colors)
	if l.OnRecolor != nil {
		l.OnRecolor(axis, l.Colors)
	}
}

// Render clears the surface, draws the logo at the current position and
// presents the frame.
func (l *Loop) Render() error {
	l.surface.Clear()
	l.surface.DrawLogo(l.Fly.Rect(l.logoW, l.logoH))
	return l.surface.Present()
}

// Terminate releases res and moves the loop to Terminated. It is safe to call
// more than once and from any state; later calls release nothing twice.
func (l *Loop) Terminate(res *Resources) error {
	err := res.Release()
	if l.state != Terminated {
		l.logf("terminated")
	}
	l.state = Terminated
	return err
}

func (l *Loop) logf(format string, args ...any) {
	if !l.debug || l.Log == nil {
		return
	}
	_, _ = fmt.Fprintf(l.Log, "[bounce] "+format+"\n", args...)
}
