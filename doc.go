// Package bounce animates a logo bouncing around a fixed-size canvas, the
// way a DVD player's screensaver does.
//
// The package holds the presentation-independent parts: the per-tick
// [FlyState.Advance] state machine, the no-repeat color selector
// [NextColor], the [Tint] fade driver, ordered teardown with [Resources], and
// the [Loop] that ties them to a [Surface]. Front ends live in subpackages:
// window renders with [Ebitengine], tty renders into a terminal with [tcell].
//
// # Quick start
//
//	cfg := bounce.DefaultConfig()
//	if err := window.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// To drive a custom surface, create a loop and call Update and Render once
// per frame:
//
//	loop := bounce.NewLoop(cfg, surface, quitPressed, nil)
//	for loop.State() == bounce.Running {
//		loop.Update(1.0 / 60)
//		if err := loop.Render(); err != nil {
//			break
//		}
//	}
//	loop.Terminate(&res)
//
// # Collisions
//
// Each tick checks X then Y. A position at or below zero turns that axis's
// direction positive, a position at or beyond the bound turns it negative,
// and only then do both positions move one unit. Every axis that hit a wall
// produces its own recolor event, so a corner hit recolors twice; the
// selector never picks the color it picked last.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
package bounce
