package bounce

import (
	"errors"
	"fmt"
)

// Config holds the values a front end is built with. Binaries fill it from
// constants; nothing is read from flags, files or the environment.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the canvas size in surface units (pixels for the
	// window, cells for the terminal).
	Width, Height int
	// LogoWidth and LogoHeight are the size the logo is drawn at.
	LogoWidth, LogoHeight int
	// LogoPath is the image file decoded into the logo texture.
	LogoPath string
	// ClearColor fills the canvas before the logo is drawn.
	ClearColor Color
	// VSync paces frames to the display refresh.
	VSync bool
	// ShowFPS draws an FPS/TPS overlay.
	ShowFPS bool
	// Debug logs every collision to stderr.
	Debug bool
	// TintFade is the recolor fade duration in seconds; zero recolors instantly.
	TintFade float32
	// Chime plays a short tone whenever both walls are hit in the same tick.
	Chime bool
	// Seed seeds the random source; zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the classic 640×480 canvas with a 128×76 logo.
func DefaultConfig() Config {
	return Config{
		Title:      "DVD Bounce",
		Width:      640,
		Height:     480,
		LogoWidth:  128,
		LogoHeight: 76,
		LogoPath:   "png/dvd.svg.png",
		ClearColor: ColorBlack,
		VSync:      true,
	}
}

// Bounds returns the box the logo's top-left corner moves in.
func (c Config) Bounds() Bounds {
	return BoundsFor(c.Width, c.Height, c.LogoWidth, c.LogoHeight)
}

// Validate checks that the logo fits the canvas with room to move on both
// axes and that an asset path is set.
func (c Config) Validate() error {
	if c.LogoWidth <= 0 || c.LogoHeight <= 0 {
		return SetupError("config", fmt.Errorf("logo size %dx%d must be positive", c.LogoWidth, c.LogoHeight))
	}
	b := c.Bounds()
	if b.MaxX < 2 || b.MaxY < 2 {
		return SetupError("config", fmt.Errorf("logo %dx%d leaves no room to move in a %dx%d canvas",
			c.LogoWidth, c.LogoHeight, c.Width, c.Height))
	}
	if c.LogoPath == "" {
		return SetupError("config", errors.New("logo path is empty"))
	}
	if c.TintFade < 0 {
		return SetupError("config", fmt.Errorf("tint fade %v is negative", c.TintFade))
	}
	return nil
}
