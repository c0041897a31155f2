package tty

import (
	"errors"
	"image"
	_ "image/png" // logo assets are PNG
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/phanxgames/bounce"
)

// alphaThreshold is the minimum 8-bit alpha for a cell to be lit.
const alphaThreshold = 0x80

// Mask is a logo rasterized to terminal cells. Lit cells are drawn with the
// tint; the rest show the canvas.
type Mask struct {
	Width, Height int
	lit           []bool
}

// At reports whether the cell at (x, y) is part of the logo.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.lit[y*m.Width+x]
}

// Lit returns the number of lit cells.
func (m *Mask) Lit() int {
	n := 0
	for _, on := range m.lit {
		if on {
			n++
		}
	}
	return n
}

// LoadMask decodes the image at path and downsamples it to w×h cells.
// Missing and undecodable files are reported as bounce.ErrAsset.
func LoadMask(path string, w, h int) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bounce.AssetError("load logo "+path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, bounce.AssetError("decode logo "+path, err)
	}
	return NewMask(src, w, h)
}

// NewMask downsamples src to w×h cells with bilinear filtering and lights
// every cell whose alpha reaches the threshold.
func NewMask(src image.Image, w, h int) (*Mask, error) {
	if b := src.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, bounce.AssetError("rasterize logo", errors.New("image is empty"))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	m := &Mask{Width: w, Height: h, lit: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.lit[y*w+x] = dst.NRGBAAt(x, y).A >= alphaThreshold
		}
	}
	return m, nil
}
