// Package tty runs a bounce.Loop inside a terminal using tcell. The canvas
// and logo are measured in cells.
package tty

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/audio"
)

// FrameInterval paces the terminal loop. Terminals have no vsync.
const FrameInterval = 16 * time.Millisecond

const logoRune = '█'

// surface draws into a tcell.Screen.
type surface struct {
	screen tcell.Screen
	mask   *Mask
	canvas tcell.Style
	logo   tcell.Style
}

func newSurface(screen tcell.Screen, mask *Mask, clearColor bounce.Color) *surface {
	bg := styleColor(clearColor)
	return &surface{
		screen: screen,
		mask:   mask,
		canvas: tcell.StyleDefault.Background(bg),
		logo:   tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite),
	}
}

func styleColor(c bounce.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func (s *surface) SetTint(c bounce.Color) {
	s.logo = s.logo.Foreground(styleColor(c))
}

func (s *surface) Clear() {
	s.screen.Fill(' ', s.canvas)
}

// DrawLogo draws the mask at dst. The mask was rasterized at the configured
// logo size, so dst only supplies the position.
func (s *surface) DrawLogo(dst bounce.Rect) {
	for y := 0; y < s.mask.Height; y++ {
		for x := 0; x < s.mask.Width; x++ {
			if s.mask.At(x, y) {
				s.screen.SetContent(dst.X+x, dst.Y+y, logoRune, nil, s.logo)
			}
		}
	}
}

func (s *surface) Present() error {
	s.screen.Show()
	return nil
}

// isQuit reports whether ev asks to leave: a quit key or an interrupt posted
// by Stop.
func isQuit(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return isQuitKey(ev.Key(), ev.Rune())
	case *tcell.EventInterrupt:
		return true
	}
	return false
}

// isQuitKey reports whether the key is Escape, Ctrl-C or q.
func isQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// Terminal owns the screen, its event pump and the loop.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
	loop   *bounce.Loop
}

// New wraps an initialized screen. The event pump starts immediately and
// runs until Close. cfg must be valid (see bounce.NewLoop).
func New(cfg bounce.Config, screen tcell.Screen, mask *Mask) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go t.pump()
	t.loop = bounce.NewLoop(cfg, newSurface(screen, mask, cfg.ClearColor), t.quitRequested, nil)
	return t
}

// Loop returns the loop the terminal drives.
func (t *Terminal) Loop() *bounce.Loop {
	return t.loop
}

func (t *Terminal) pump() {
	defer close(t.exited)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Stop asks the loop to quit on its next frame. Safe to call from any
// goroutine.
func (t *Terminal) Stop() error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Close finalizes the screen and waits for the event pump to exit. Extra
// calls are no-ops.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
		<-t.exited
	})
}

// quitRequested drains pending events without blocking. A resize forces a
// full repaint.
func (t *Terminal) quitRequested() bool {
	for {
		select {
		case ev := <-t.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				t.screen.Sync()
				continue
			}
			if isQuit(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// Frame runs one Update and Render. It reports false once quit was requested.
func (t *Terminal) Frame(dt float32) (bool, error) {
	t.loop.Update(dt)
	if t.loop.State() != bounce.Running {
		return false, nil
	}
	return true, t.loop.Render()
}

// Run takes over the terminal and animates until the user quits. Failures
// are wrapped in bounce.ErrSetup or bounce.ErrAsset; acquired resources are
// released on every path.
func Run(cfg bounce.Config) (err error) {
	var res bounce.Resources
	defer func() {
		if rerr := res.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	if err := cfg.Validate(); err != nil {
		return err
	}
	mask, err := LoadMask(cfg.LogoPath, cfg.LogoWidth, cfg.LogoHeight)
	if err != nil {
		return err
	}

	var chime *audio.Chime
	if cfg.Chime {
		var cerr error
		if chime, cerr = audio.NewChime(&res); cerr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[bounce] audio disabled: %v\n", cerr)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return bounce.SetupError("create screen", err)
	}
	if err := screen.Init(); err != nil {
		return bounce.SetupError("init screen", err)
	}
	screen.HideCursor()

	t := New(cfg, screen, mask)
	res.Acquire("screen", func() error {
		t.Close()
		return nil
	})
	if chime != nil {
		t.loop.OnCorner = chime.Play
	}

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	dt := float32(FrameInterval.Seconds())
	for range ticker.C {
		running, ferr := t.Frame(dt)
		if ferr != nil {
			return errors.Join(bounce.SetupError("render", ferr), t.loop.Terminate(&res))
		}
		if !running {
			break
		}
	}
	return t.loop.Terminate(&res)
}
