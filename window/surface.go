package window

import (
	"errors"
	"image/color"
	_ "image/png" // logo assets are PNG
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/bounce"
)

// LoadLogo decodes the image at path into a texture. A missing file, an
// undecodable file and an empty image are all reported as bounce.ErrAsset.
func LoadLogo(path string) (*ebiten.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, bounce.AssetError("load logo "+path, err)
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, bounce.AssetError("decode logo "+path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		img.Deallocate()
		return nil, bounce.AssetError("create texture "+path, errors.New("image is empty"))
	}
	return img, nil
}

// surface draws the logo onto the frame Ebitengine hands to Game.Draw.
// Presenting is implicit: Ebitengine shows the frame when Draw returns and,
// with vsync on, blocks until the display refresh.
type surface struct {
	logo   *ebiten.Image
	clear  color.RGBA
	tint   bounce.Color
	target *ebiten.Image
	op     ebiten.DrawImageOptions
	fps    *fpsOverlay
}

func newSurface(logo *ebiten.Image, clearColor bounce.Color, showFPS bool) *surface {
	s := &surface{
		logo:  logo,
		clear: clearColor.RGBA(),
		tint:  bounce.ColorWhite,
	}
	if showFPS {
		s.fps = newFPSOverlay()
	}
	return s
}

// bind sets the image the next Clear, DrawLogo and Present act on.
func (s *surface) bind(target *ebiten.Image) {
	s.target = target
}

func (s *surface) SetTint(c bounce.Color) {
	s.tint = c
}

func (s *surface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.clear)
}

func (s *surface) DrawLogo(dst bounce.Rect) {
	if s.target == nil {
		return
	}
	s.op.GeoM = logoGeoM(s.logo.Bounds().Dx(), s.logo.Bounds().Dy(), dst)
	s.op.ColorScale.Reset()
	s.op.ColorScale.Scale(
		float32(s.tint.R*s.tint.A),
		float32(s.tint.G*s.tint.A),
		float32(s.tint.B*s.tint.A),
		float32(s.tint.A),
	)
	s.op.Filter = ebiten.FilterLinear
	s.target.DrawImage(s.logo, &s.op)
}

func (s *surface) Present() error {
	if s.fps != nil && s.target != nil {
		s.fps.draw(s.target)
	}
	s.target = nil
	return nil
}

// logoGeoM scales a srcW×srcH texture to fill dst and moves it into place.
func logoGeoM(srcW, srcH int, dst bounce.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	if srcW > 0 && srcH > 0 {
		m.Scale(float64(dst.Width)/float64(srcW), float64(dst.Height)/float64(srcH))
	}
	m.Translate(float64(dst.X), float64(dst.Y))
	return m
}
