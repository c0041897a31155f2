package bounce

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tint tracks the color applied to the logo. With a zero fade duration a
// retarget takes effect immediately; otherwise R, G and B are tweened toward
// the new color over the fade duration. Alpha is always 1.
//
// There is no global animation manager: the loop calls Update every tick.
type Tint struct {
	current Color
	fade    float32
	fn      ease.TweenFunc
	tweens  [3]*gween.Tween
	active  bool
	dirty   bool
}

// NewTint returns a Tint showing c. A fade of zero disables tweening.
func NewTint(c Color, fade float32, fn ease.TweenFunc) *Tint {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tint{current: c, fade: fade, fn: fn, dirty: true}
}

// Current returns the color currently shown.
func (t *Tint) Current() Color {
	return t.current
}

// Fading reports whether a tween is in progress.
func (t *Tint) Fading() bool {
	return t.active
}

// Retarget moves the tint toward c, instantly or by starting a new fade from
// wherever the previous one had reached.
func (t *Tint) Retarget(c Color) {
	c.A = 1
	if t.fade <= 0 {
		t.current = c
		t.active = false
		t.dirty = true
		return
	}
	t.tweens[0] = gween.New(float32(t.current.R), float32(c.R), t.fade, t.fn)
	t.tweens[1] = gween.New(float32(t.current.G), float32(c.G), t.fade, t.fn)
	t.tweens[2] = gween.New(float32(t.current.B), float32(c.B), t.fade, t.fn)
	t.active = true
}

// Update advances an active fade by dt seconds. It returns the color to apply
// and true when the shown color changed since the previous Update.
func (t *Tint) Update(dt float32) (Color, bool) {
	if t.active {
		fields := [3]*float64{&t.current.R, &t.current.G, &t.current.B}
		done := true
		for i, tw := range t.tweens {
			val, finished := tw.Update(dt)
			*fields[i] = clamp01(float64(val))
			if !finished {
				done = false
			}
		}
		t.active = !done
		t.dirty = true
	}
	if !t.dirty {
		return t.current, false
	}
	t.dirty = false
	return t.current, true
}
