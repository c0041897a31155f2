package bounce

import (
	"errors"
	"reflect"
	"testing"
)

func TestResourcesReleaseReverseOrder(t *testing.T) {
	var res Resources
	var order []string
	for _, name := range []string{"decoder", "window", "texture"} {
		res.Acquire(name, func() error {
			order = append(order, name)
			return nil
		})
	}
	if err := res.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	want := []string{"texture", "window", "decoder"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if !reflect.DeepEqual(res.Released(), want) {
		t.Errorf("Released = %v, want %v", res.Released(), want)
	}
}

func TestResourcesReleaseIsIdempotent(t *testing.T) {
	var res Resources
	calls := 0
	res.Acquire("texture", func() error {
		calls++
		return nil
	})
	_ = res.Release()
	_ = res.Release()
	if calls != 1 {
		t.Errorf("release ran %d times, want 1", calls)
	}
	if len(res.Held()) != 0 {
		t.Errorf("Held = %v, want empty", res.Held())
	}
}

func TestResourcesPartialSetup(t *testing.T) {
	// Only what was acquired before the failure is released.
	var res Resources
	var released []string
	res.Acquire("decoder", func() error {
		released = append(released, "decoder")
		return nil
	})
	// window creation failed: never acquired.
	_ = res.Release()
	if !reflect.DeepEqual(released, []string{"decoder"}) {
		t.Errorf("released = %v, want [decoder]", released)
	}
}

func TestResourcesJoinsErrors(t *testing.T) {
	var res Resources
	errA := errors.New("a")
	errB := errors.New("b")
	res.Acquire("first", func() error { return errA })
	res.Acquire("tracked", nil)
	res.Acquire("second", func() error { return errB })

	err := res.Release()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Release error %v should wrap both failures", err)
	}
	if len(res.Released()) != 3 {
		t.Errorf("Released = %v, want all three attempted", res.Released())
	}
}

func TestResourcesAcquireAfterRelease(t *testing.T) {
	var res Resources
	res.Acquire("a", nil)
	_ = res.Release()
	res.Acquire("b", nil)
	if !reflect.DeepEqual(res.Held(), []string{"b"}) {
		t.Fatalf("Held = %v, want [b]", res.Held())
	}
	_ = res.Release()
	if !reflect.DeepEqual(res.Released(), []string{"a", "b"}) {
		t.Errorf("Released = %v, want [a b]", res.Released())
	}
}
