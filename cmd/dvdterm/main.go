// Dvdterm bounces the DVD logo around an 80×24 terminal grid. Press Escape,
// Ctrl-C or q to quit.
//
// Run from the repository root so the logo at png/dvd.svg.png is found.
package main

import (
	"log"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/tty"
)

const (
	gridW    = 80
	gridH    = 24
	logoW    = 20 // cells are about twice as tall as wide
	logoH    = 6
	logoPath = "png/dvd.svg.png"
	tintFade = 0.25
	chime    = false
)

func main() {
	cfg := bounce.DefaultConfig()
	cfg.Width, cfg.Height = gridW, gridH
	cfg.LogoWidth, cfg.LogoHeight = logoW, logoH
	cfg.LogoPath = logoPath
	cfg.TintFade = tintFade
	cfg.Chime = chime

	if err := tty.Run(cfg); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
