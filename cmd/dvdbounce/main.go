// Dvdbounce bounces the DVD logo around a 640×480 window, recoloring it every
// time it hits a wall. Close the window or press Escape to quit.
//
// Run from the repository root so the logo at png/dvd.svg.png is found.
package main

import (
	"log"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/window"
)

const (
	windowTitle = "DVD Bounce"
	screenW     = 640
	screenH     = 480
	logoW       = 128
	logoH       = 76
	logoPath    = "png/dvd.svg.png"
	showFPS     = false
	debug       = false
	tintFade    = 0 // seconds; 0 switches colors instantly
	chime       = true
)

func main() {
	cfg := bounce.DefaultConfig()
	cfg.Title = windowTitle
	cfg.Width, cfg.Height = screenW, screenH
	cfg.LogoWidth, cfg.LogoHeight = logoW, logoH
	cfg.LogoPath = logoPath
	cfg.ShowFPS = showFPS
	cfg.Debug = debug
	cfg.TintFade = tintFade
	cfg.Chime = chime

	if err := window.Run(cfg); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
