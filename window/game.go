// Package window runs a bounce.Loop in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/audio"
)

// Game adapts a bounce.Loop to ebiten.Game. Update polls and advances the
// loop; Draw renders into the frame Ebitengine presents.
type Game struct {
	loop    *bounce.Loop
	surface *surface
	width   int
	height  int
	last    time.Time
	now     func() time.Time
}

// Loop returns the loop the game drives.
func (g *Game) Loop() *bounce.Loop {
	return g.loop
}

// Update implements ebiten.Game. It returns ebiten.Termination once quit has
// been requested so RunGame returns normally.
func (g *Game) Update() error {
	now := g.now()
	dt := float32(1.0 / 60)
	if !g.last.IsZero() {
		dt = float32(now.Sub(g.last).Seconds())
	}
	g.last = now

	g.loop.Update(dt)
	if g.loop.State() != bounce.Running {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	if err := g.loop.Render(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] render: %v\n", err)
	}
}

// Layout implements ebiten.Game. The canvas keeps its size regardless of the
// window; Ebitengine scales it to fit.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// quitRequested is the window's quit signal: the close button or Escape.
func quitRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// NewGame builds a Game around an already loaded logo texture. An invalid
// cfg is reported as bounce.ErrSetup.
func NewGame(cfg bounce.Config, logo *ebiten.Image, quit bounce.QuitFunc) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := newSurface(logo, cfg.ClearColor, cfg.ShowFPS)
	return &Game{
		loop:    bounce.NewLoop(cfg, s, quit, nil),
		surface: s,
		width:   cfg.Width,
		height:  cfg.Height,
		now:     time.Now,
	}, nil
}

// Run opens the window and animates until the user quits. Setup and asset
// failures are fatal and returned wrapped in bounce.ErrSetup or
// bounce.ErrAsset; every resource acquired before the failure is released
// before Run returns.
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

	logo, err := LoadLogo(cfg.LogoPath)
	if err != nil {
		return err
	}
	res.Acquire("logo texture", func() error {
		logo.Deallocate()
		return nil
	})

	game, err := NewGame(cfg, logo, quitRequested)
	if err != nil {
		return err
	}
	if game.surface.fps != nil {
		res.Acquire("fps overlay", func() error {
			game.surface.fps.dispose()
			return nil
		})
	}

	if cfg.Chime {
		chime, cerr := audio.NewChime(&res)
		if cerr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[bounce] audio disabled: %v\n", cerr)
		}
		game.loop.OnCorner = chime.Play
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if cfg.VSync {
		// One Update per presented frame: the display refresh paces the loop.
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	res.Acquire("window", nil)
	if rerr := ebiten.RunGame(game); rerr != nil {
		return errors.Join(bounce.SetupError("run game", rerr), game.loop.Terminate(&res))
	}
	return game.loop.Terminate(&res)
}
