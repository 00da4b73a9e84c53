package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpticalFlyer/trellis/geom"
)

func mustResolve(t *testing.T, a *Arena, h Handle) geom.Node {
	t.Helper()
	n, err := a.Resolve(h)
	if err != nil {
		t.Fatalf("Resolve(%d): %v", h, err)
	}
	return n
}

func TestAbsoluteBodies(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{name: "Origin", x: 0, y: 0, w: 0, h: 0},
		{name: "Positive", x: 10, y: 20, w: 300, h: 40},
		{name: "Negative position", x: -15, y: -7, w: 8, h: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena()
			h := a.Add(Absolute(tt.x, tt.y, tt.w, tt.h))
			got := mustResolve(t, a, h)
			want := geom.MustNew(tt.x, tt.y, tt.w, tt.h)
			if !got.Equal(want) {
				t.Errorf("got %v; want %v", got, want)
			}
		})
	}
}

func TestFractionalWithoutParentTruncates(t *testing.T) {
	a := NewArena()
	h := a.Add(Body{
		Position: [2]Value{Frac(12.9), Frac(3.2)},
		Size:     [2]Value{Frac(40.7), Px(5)},
	})
	got := mustResolve(t, a, h)
	if want := geom.MustNew(12, 3, 40, 5); !got.Equal(want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestSizeRelativeToParent(t *testing.T) {
	tests := []struct {
		name  string
		size  Value
		wantW int
	}{
		{name: "Pixel offset grows", size: Px(20), wantW: 220},
		{name: "Pixel offset shrinks", size: Px(-50), wantW: 150},
		{name: "Half scale", size: Frac(0.5), wantW: 100},
		{name: "Negative scale is normalized", size: Frac(-0.5), wantW: 100},
		{name: "Scale truncates", size: Frac(0.333), wantW: 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena()
			parent := a.Add(Absolute(0, 0, 200, 100))
			child := a.Add(Body{
				Size:       [2]Value{tt.size, Px(10)},
				SizeParent: [2]Handle{parent, None},
			})
			w, h, err := a.ResolveSize(child)
			if err != nil {
				t.Fatal(err)
			}
			if w != tt.wantW || h != 10 {
				t.Errorf("got (%d, %d); want (%d, 10)", w, h, tt.wantW)
			}
		})
	}
}

func TestNegativeScaleMatchesPositive(t *testing.T) {
	a := NewArena()
	parent := a.Add(Absolute(0, 0, 317, 93))
	neg := a.Add(Body{
		Size:       [2]Value{Frac(-0.37), Frac(-1.5)},
		SizeParent: [2]Handle{parent, parent},
	})
	pos := a.Add(Body{
		Size:       [2]Value{Frac(0.37), Frac(1.5)},
		SizeParent: [2]Handle{parent, parent},
	})
	if diff := cmp.Diff(mustResolve(t, a, pos).String(), mustResolve(t, a, neg).String()); diff != "" {
		t.Errorf("negative scale differs (-positive +negative):\n%s", diff)
	}
}

func TestAnchors(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		dx, dy Value
		want   geom.Node
	}{
		{
			name:   "Top-left to top-left",
			anchor: Anchor{Child: TopLeft, Parent: TopLeft},
			want:   geom.MustNew(100, 50, 30, 20),
		},
		{
			name:   "Bottom-right child touches parent top-left",
			anchor: Anchor{Child: BottomRight, Parent: TopLeft},
			want:   geom.MustNew(70, 30, 30, 20),
		},
		{
			name:   "Top-left child on parent bottom-right",
			anchor: Anchor{Child: TopLeft, Parent: BottomRight},
			want:   geom.MustNew(300, 150, 30, 20),
		},
		{
			name:   "Right of parent right edge by 10px, anchored by own right edge",
			anchor: Anchor{Child: TopRight, Parent: TopRight},
			dx:     Px(10),
			want:   geom.MustNew(280, 50, 30, 20),
		},
		{
			name:   "Fractional offset scales by parent size",
			anchor: Anchor{Child: TopLeft, Parent: TopLeft},
			dx:     Frac(0.5),
			dy:     Frac(0.25),
			want:   geom.MustNew(200, 75, 30, 20),
		},
		{
			name:   "Centered via fraction and bottom-right child",
			anchor: Anchor{Child: BottomLeft, Parent: TopLeft},
			dx:     Frac(0.5),
			dy:     Frac(1),
			want:   geom.MustNew(200, 130, 30, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena()
			parent := a.Add(Absolute(100, 50, 200, 100))
			child := a.Add(Attach(parent, tt.anchor, tt.dx, tt.dy, 30, 20))
			if got := mustResolve(t, a, child); !got.Equal(tt.want) {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestChainedBodies(t *testing.T) {
	a := NewArena()
	window := a.Add(Absolute(0, 0, 800, 600))
	panel := a.Add(Fill(window, 10))
	sidebar := a.Add(Body{
		Size:           [2]Value{Frac(0.25), Px(0)},
		SizeParent:     [2]Handle{panel, panel},
		PositionParent: [2]Handle{panel, panel},
	})
	button := a.Add(Attach(sidebar, Anchor{Child: BottomRight, Parent: BottomRight}, Px(-5), Px(-5), 40, 20))

	if got, want := mustResolve(t, a, panel), geom.MustNew(10, 10, 780, 580); !got.Equal(want) {
		t.Errorf("panel: got %v; want %v", got, want)
	}
	if got, want := mustResolve(t, a, sidebar), geom.MustNew(10, 10, 195, 580); !got.Equal(want) {
		t.Errorf("sidebar: got %v; want %v", got, want)
	}
	if got, want := mustResolve(t, a, button), geom.MustNew(160, 565, 40, 20); !got.Equal(want) {
		t.Errorf("button: got %v; want %v", got, want)
	}

	// Resizing the window is picked up on the next query.
	a.Resize(window, Px(400), Px(300))
	if got, want := mustResolve(t, a, button), geom.MustNew(60, 265, 40, 20); !got.Equal(want) {
		t.Errorf("button after resize: got %v; want %v", got, want)
	}
}

func TestZeroSizeParent(t *testing.T) {
	a := NewArena()
	parent := a.Add(Absolute(40, 40, 0, 0))
	child := a.Add(Attach(parent, Anchor{Child: TopLeft, Parent: BottomRight}, Frac(0.5), Px(3), 10, 10))
	if got, want := mustResolve(t, a, child), geom.MustNew(40, 43, 10, 10); !got.Equal(want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestNegativeExtentIsFlipped(t *testing.T) {
	a := NewArena()
	parent := a.Add(Absolute(0, 0, 20, 20))
	child := a.Add(Body{
		Position:   [2]Value{Px(50), Px(50)},
		Size:       [2]Value{Px(-30), Px(0)},
		SizeParent: [2]Handle{parent, parent},
	})
	if got, want := mustResolve(t, a, child), geom.MustNew(40, 50, 10, 20); !got.Equal(want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestCyclicLayout(t *testing.T) {
	t.Run("Self size", func(t *testing.T) {
		a := NewArena()
		h := a.Add(Body{})
		a.Update(h, func(b *Body) { b.SizeParent[Horizontal] = h })
		_, err := a.Resolve(h)
		if !errors.Is(err, ErrCyclicLayout) {
			t.Fatalf("got %v; want ErrCyclicLayout", err)
		}
		var lerr *Error
		if !errors.As(err, &lerr) || lerr.Handle != h || lerr.Op != "size" {
			t.Errorf("got %#v; want size error on body %d", lerr, h)
		}
	})

	t.Run("Two body position loop", func(t *testing.T) {
		a := NewArena()
		first := a.Add(Body{})
		second := a.Add(Body{PositionParent: [2]Handle{None, first}})
		a.Update(first, func(b *Body) { b.PositionParent[Vertical] = second })
		if err := a.Validate(second); !errors.Is(err, ErrCyclicLayout) {
			t.Fatalf("got %v; want ErrCyclicLayout", err)
		}
	})

	t.Run("Diamond is not a cycle", func(t *testing.T) {
		a := NewArena()
		root := a.Add(Absolute(0, 0, 100, 100))
		left := a.Add(Fill(root, 5))
		right := a.Add(Fill(root, 10))
		join := a.Add(Body{
			PositionParent: [2]Handle{left, right},
			SizeParent:     [2]Handle{right, left},
			Size:           [2]Value{Frac(1), Frac(1)},
		})
		if got, want := mustResolve(t, a, join), geom.MustNew(5, 10, 80, 90); !got.Equal(want) {
			t.Errorf("got %v; want %v", got, want)
		}
	})

	t.Run("Own size through far-edge anchor", func(t *testing.T) {
		a := NewArena()
		root := a.Add(Absolute(0, 0, 100, 100))
		child := a.Add(Body{
			Size:           [2]Value{Frac(0.5), Frac(0.5)},
			SizeParent:     [2]Handle{root, root},
			PositionParent: [2]Handle{root, root},
			Anchor:         Anchor{Child: BottomRight, Parent: BottomRight},
		})
		if got, want := mustResolve(t, a, child), geom.MustNew(50, 50, 50, 50); !got.Equal(want) {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func TestUnknownParent(t *testing.T) {
	a := NewArena()
	parent := a.Add(Absolute(0, 0, 10, 10))
	child := a.Add(Fill(parent, 1))
	if !a.Remove(parent) {
		t.Fatal("Remove returned false")
	}
	if err := a.Validate(child); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("got %v; want ErrUnknownBody", err)
	}
	if a.Remove(parent) {
		t.Error("second Remove should return false")
	}
}

func TestDependents(t *testing.T) {
	a := NewArena()
	root := a.Add(Absolute(0, 0, 10, 10))
	first := a.Add(Fill(root, 1))
	a.Add(Absolute(0, 0, 1, 1))
	third := a.Add(Body{SizeParent: [2]Handle{None, root}})
	if diff := cmp.Diff([]Handle{first, third}, a.Dependents(root)); diff != "" {
		t.Errorf("Dependents mismatch (-want +got):\n%s", diff)
	}
}

func TestRefGeometry(t *testing.T) {
	a := NewArena()
	h := a.Add(Absolute(1, 2, 3, 4))
	ref := a.Ref(h)
	got, err := ref.Geometry()
	if err != nil {
		t.Fatal(err)
	}
	if want := geom.MustNew(1, 2, 3, 4); !got.Equal(want) {
		t.Errorf("got %v; want %v", got, want)
	}
	a.Move(h, Px(7), Px(8))
	if got, _ := ref.Geometry(); got.Left() != 7 || got.Top() != 8 {
		t.Errorf("ref did not observe move: %v", got)
	}
	if _, err := (Ref{}).Geometry(); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("zero Ref: got %v; want ErrUnknownBody", err)
	}
}

func BenchmarkResolveChain(b *testing.B) {
	a := NewArena()
	h := a.Add(Absolute(0, 0, 1920, 1080))
	for i := 0; i < 6; i++ {
		h = a.Add(Fill(h, 4))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Resolve(h); err != nil {
			b.Fatal(err)
		}
	}
}
