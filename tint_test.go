package bounce

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTintInitialUpdateReportsColor(t *testing.T) {
	tint := NewTint(Palette[InitialColor].Color, 0, nil)
	c, changed := tint.Update(1.0 / 60)
	if !changed {
		t.Fatal("first Update should report the initial color")
	}
	if c != Palette[InitialColor].Color {
		t.Errorf("color = %+v, want green", c)
	}
	if _, changed := tint.Update(1.0 / 60); changed {
		t.Error("second Update without retarget should not report a change")
	}
}

func TestTintInstantRetarget(t *testing.T) {
	tint := NewTint(ColorWhite, 0, nil)
	tint.Update(0)

	red := Palette[1].Color
	tint.Retarget(red)
	if tint.Fading() {
		t.Error("zero fade should not start a tween")
	}
	c, changed := tint.Update(0)
	if !changed || c != red {
		t.Errorf("Update = %+v, %v; want red, true", c, changed)
	}
}

func TestTintFadeReachesTarget(t *testing.T) {
	tint := NewTint(ColorWhite, 1.0, ease.Linear)
	tint.Update(0)

	blue := Palette[5].Color
	tint.Retarget(blue)
	if !tint.Fading() {
		t.Fatal("expected fade to start")
	}

	c, changed := tint.Update(0.5)
	if !changed {
		t.Fatal("fading Update should report a change")
	}
	if math.Abs(c.R-0.5) > 0.01 || math.Abs(c.B-1) > 0.01 {
		t.Errorf("halfway color = %+v, want ~{0.5 0.5 1}", c)
	}

	c, _ = tint.Update(0.5)
	if tint.Fading() {
		t.Error("expected fade to finish after full duration")
	}
	if math.Abs(c.R) > 0.01 || math.Abs(c.G) > 0.01 || math.Abs(c.B-1) > 0.01 {
		t.Errorf("final color = %+v, want blue", c)
	}
	if c.A != 1 {
		t.Errorf("alpha = %v, want 1", c.A)
	}
	if _, changed := tint.Update(0.5); changed {
		t.Error("finished fade should stop reporting changes")
	}
}

func TestTintRetargetMidFade(t *testing.T) {
	tint := NewTint(ColorWhite, 1.0, ease.Linear)
	tint.Retarget(Color{0, 0, 0, 1})
	tint.Update(0.5)

	// New fade starts from the halfway gray.
	tint.Retarget(ColorWhite)
	c, _ := tint.Update(0.5)
	if math.Abs(c.R-0.75) > 0.01 {
		t.Errorf("R = %f, want ~0.75", c.R)
	}
}
