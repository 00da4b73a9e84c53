package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/OpticalFlyer/trellis/geom"
)

var (
	// ErrCyclicLayout is returned when a body's geometry depends on itself.
	ErrCyclicLayout = errors.New("cyclic layout")
	// ErrUnknownBody is returned when a handle does not name a live body.
	ErrUnknownBody = errors.New("unknown body")
)

// Error describes a failed resolution.
type Error struct {
	// Op is the quantity being resolved ("size" or "position").
	Op     string
	Handle Handle
	Axis   Axis
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("layout: %s of body %d (%s): %v", e.Op, e.Handle, e.Axis, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Arena stores bodies. It is not safe for concurrent use; it belongs to
// the goroutine that runs the frame loop.
type Arena struct {
	bodies map[Handle]Body
	next   Handle
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		bodies: make(map[Handle]Body),
	}
}

// Add stores b and returns its handle. Handles are never reused, so a
// stale handle cannot silently resolve to a newer body.
func (a *Arena) Add(b Body) Handle {
	a.next++
	a.bodies[a.next] = b
	return a.next
}

// Get returns the body stored under h.
func (a *Arena) Get(h Handle) (Body, bool) {
	b, ok := a.bodies[h]
	return b, ok
}

// Set replaces the body stored under h. It returns false if h is unknown.
func (a *Arena) Set(h Handle, b Body) bool {
	if _, ok := a.bodies[h]; !ok {
		return false
	}
	a.bodies[h] = b
	return true
}

// Update applies fn to the body stored under h.
func (a *Arena) Update(h Handle, fn func(b *Body)) bool {
	b, ok := a.bodies[h]
	if !ok {
		return false
	}
	fn(&b)
	a.bodies[h] = b
	return true
}

// Move sets the base position of h.
func (a *Arena) Move(h Handle, x, y Value) bool {
	return a.Update(h, func(b *Body) {
		b.Position = [2]Value{x, y}
	})
}

// Resize sets the base size of h.
func (a *Arena) Resize(h Handle, width, height Value) bool {
	return a.Update(h, func(b *Body) {
		b.Size = [2]Value{width, height}
	})
}

// Remove deletes h. Bodies that still refer to it fail to resolve with
// ErrUnknownBody.
func (a *Arena) Remove(h Handle) bool {
	if _, ok := a.bodies[h]; !ok {
		return false
	}
	delete(a.bodies, h)
	return true
}

// Len returns the number of live bodies.
func (a *Arena) Len() int {
	return len(a.bodies)
}

// Dependents returns the handles of bodies that refer to h directly, in
// ascending order.
func (a *Arena) Dependents(h Handle) []Handle {
	var out []Handle
	for id, b := range a.bodies {
		for _, p := range b.parents() {
			if p == h {
				out = append(out, id)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveSize returns the resolved width and height of h.
func (a *Arena) ResolveSize(h Handle) (width, height int, err error) {
	r := newResolver(a)
	if width, err = r.size(h, Horizontal); err != nil {
		return 0, 0, err
	}
	if height, err = r.size(h, Vertical); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// ResolvePosition returns the resolved top-left corner of h.
func (a *Arena) ResolvePosition(h Handle) (x, y int, err error) {
	r := newResolver(a)
	if x, err = r.position(h, Horizontal); err != nil {
		return 0, 0, err
	}
	if y, err = r.position(h, Vertical); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Resolve returns the absolute rectangle of h. A negative resolved
// extent is flipped so the returned node always has a non-negative size.
func (a *Arena) Resolve(h Handle) (geom.Node, error) {
	w, hgt, err := a.ResolveSize(h)
	if err != nil {
		return geom.Node{}, err
	}
	x, y, err := a.ResolvePosition(h)
	if err != nil {
		return geom.Node{}, err
	}
	return geom.FromCorners(x, y, x+w, y+hgt), nil
}

// Validate reports whether h resolves without error.
func (a *Arena) Validate(h Handle) error {
	_, err := a.Resolve(h)
	return err
}

// Ref returns a non-owning reference to h.
func (a *Arena) Ref(h Handle) Ref {
	return Ref{arena: a, handle: h}
}

// Ref is a non-owning reference to a body. Its Geometry method resolves
// the body on every call.
type Ref struct {
	arena  *Arena
	handle Handle
}

// Handle returns the referenced handle.
func (r Ref) Handle() Handle { return r.handle }

// Geometry resolves the referenced body.
func (r Ref) Geometry() (geom.Node, error) {
	if r.arena == nil {
		return geom.Node{}, &Error{Op: "geometry", Handle: r.handle, Err: ErrUnknownBody}
	}
	return r.arena.Resolve(r.handle)
}
