package layout

type quantity uint8

const (
	quantitySize quantity = iota
	quantityPosition
)

func (q quantity) String() string {
	if q == quantityPosition {
		return "position"
	}
	return "size"
}

type visitKey struct {
	handle Handle
	q      quantity
	axis   Axis
}

// resolver carries the set of quantities currently on the recursion
// stack. Entries are removed on return, so shared parents (diamonds) are
// not mistaken for cycles.
type resolver struct {
	arena    *Arena
	visiting map[visitKey]struct{}
}

func newResolver(a *Arena) *resolver {
	return &resolver{
		arena:    a,
		visiting: make(map[visitKey]struct{}),
	}
}

func (r *resolver) enter(h Handle, q quantity, axis Axis) (Body, error) {
	b, ok := r.arena.bodies[h]
	if !ok {
		return Body{}, &Error{Op: q.String(), Handle: h, Axis: axis, Err: ErrUnknownBody}
	}
	key := visitKey{handle: h, q: q, axis: axis}
	if _, ok := r.visiting[key]; ok {
		return Body{}, &Error{Op: q.String(), Handle: h, Axis: axis, Err: ErrCyclicLayout}
	}
	r.visiting[key] = struct{}{}
	return b, nil
}

func (r *resolver) leave(h Handle, q quantity, axis Axis) {
	delete(r.visiting, visitKey{handle: h, q: q, axis: axis})
}

func (r *resolver) size(h Handle, axis Axis) (int, error) {
	b, err := r.enter(h, quantitySize, axis)
	if err != nil {
		return 0, err
	}
	defer r.leave(h, quantitySize, axis)

	base := b.Size[axis]
	parent := b.SizeParent[axis]
	if parent == None {
		return base.Int(), nil
	}
	p, err := r.size(parent, axis)
	if err != nil {
		return 0, err
	}
	return base.offsetSize(p), nil
}

func (r *resolver) position(h Handle, axis Axis) (int, error) {
	b, err := r.enter(h, quantityPosition, axis)
	if err != nil {
		return 0, err
	}
	defer r.leave(h, quantityPosition, axis)

	base := b.Position[axis]
	parent := b.PositionParent[axis]
	if parent == None {
		return base.Int(), nil
	}

	parentPos, err := r.position(parent, axis)
	if err != nil {
		return 0, err
	}

	// Parent size is only needed for fractional offsets and far-edge anchors.
	parentSize := 0
	if base.IsFrac() || b.Anchor.Parent.high(axis) {
		if parentSize, err = r.size(parent, axis); err != nil {
			return 0, err
		}
	}

	pos := base.offsetPosition(parentPos, parentSize)
	if b.Anchor.Parent.high(axis) {
		pos += parentSize
	}
	if b.Anchor.Child.high(axis) {
		own, err := r.size(h, axis)
		if err != nil {
			return 0, err
		}
		pos -= own
	}
	return pos, nil
}
