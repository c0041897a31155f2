package bounce

import (
	"errors"
	"fmt"
)

type resource struct {
	name    string
	release func() error
}

// Resources records acquired handles so they can be released exactly once,
// in reverse order of acquisition, on every exit path. A resource whose
// acquisition failed is never recorded and therefore never released.
type Resources struct {
	held     []resource
	released []string
}

// Acquire records a resource that was successfully obtained. release may be
// nil for handles owned by another layer that only need to be tracked.
func (r *Resources) Acquire(name string, release func() error) {
	r.held = append(r.held, resource{name: name, release: release})
}

// Held returns the names of resources not yet released, oldest first.
func (r *Resources) Held() []string {
	names := make([]string, len(r.held))
	for i, res := range r.held {
		names[i] = res.name
	}
	return names
}

// Released returns the names of resources released so far, in release order.
// The returned slice MUST NOT be mutated.
func (r *Resources) Released() []string {
	return r.released
}

// Release releases every held resource, newest first. Each release runs once;
// calling Release again only releases what was acquired since. Failures are
// joined and returned after every resource has been attempted.
func (r *Resources) Release() error {
	var errs []error
	for i := len(r.held) - 1; i >= 0; i-- {
		res := r.held[i]
		r.held = r.held[:i]
		r.released = append(r.released, res.name)
		if res.release == nil {
			continue
		}
		if err := res.release(); err != nil {
			errs = append(errs, fmt.Errorf("release %s: %w", res.name, err))
		}
	}
	return errors.Join(errs...)
}
