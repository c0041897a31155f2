package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 500 * time.Millisecond

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// The text is redrawn every ~0.5 seconds into its own image.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate time.Time
	now        func() time.Time
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), now: time.Now}
}

// refresh redraws the text when the refresh interval has elapsed and reports
// whether it did.
func (o *fpsOverlay) refresh() bool {
	now := o.now()
	if !o.lastUpdate.IsZero() && now.Sub(o.lastUpdate) < fpsRefresh {
		return false
	}
	o.lastUpdate = now

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	return true
}

func (o *fpsOverlay) draw(target *ebiten.Image) {
	o.refresh()
	target.DrawImage(o.img, nil)
}

func (o *fpsOverlay) dispose() {
	if o.img != nil {
		o.img.Deallocate()
		o.img = nil
	}
}
