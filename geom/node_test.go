package geom

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "Positive size", width: 100, height: 50},
		{name: "Zero size", width: 0, height: 0},
		{name: "Negative width", width: -1, height: 10, wantErr: true},
		{name: "Negative height", width: 10, height: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(3, 4, tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrNegativeSize) {
					t.Fatalf("got err %v; want ErrNegativeSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w, h := n.Size(); w != tt.width || h != tt.height {
				t.Errorf("got size (%d, %d); want (%d, %d)", w, h, tt.width, tt.height)
			}
			if x, y := n.Position(); x != 3 || y != 4 {
				t.Errorf("got position (%d, %d); want (3, 4)", x, y)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	n := MustNew(10, 20, 100, 50)
	if n.Left() != 10 || n.Top() != 20 || n.Right() != 110 || n.Bottom() != 70 {
		t.Errorf("got edges l=%d t=%d r=%d b=%d", n.Left(), n.Top(), n.Right(), n.Bottom())
	}
}

func TestFromCorners(t *testing.T) {
	got := FromCorners(110, 60, 10, 10)
	want := MustNew(10, 10, 100, 50)
	if !got.Equal(want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestPointInside(t *testing.T) {
	n := MustNew(10, 10, 100, 50)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "Top-left corner", x: 10, y: 10, want: true},
		{name: "Bottom-right corner", x: 110, y: 60, want: true},
		{name: "Center", x: 60, y: 35, want: true},
		{name: "Right of node", x: 111, y: 10, want: false},
		{name: "Above node", x: 50, y: 9, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.PointInside(tt.x, tt.y); got != tt.want {
				t.Errorf("PointInside(%d, %d) = %v; want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIntersects(t *testing.T) {
	n := MustNew(10, 10, 100, 50)
	tests := []struct {
		name  string
		other Node
		want  bool
	}{
		{name: "Overlapping", other: MustNew(50, 10, 100, 50), want: true},
		{name: "Touching right edge", other: MustNew(110, 10, 100, 50), want: false},
		{name: "Touching bottom edge", other: MustNew(10, 60, 10, 10), want: false},
		{name: "Inside", other: MustNew(20, 20, 5, 5), want: true},
		{name: "Disjoint", other: MustNew(500, 500, 5, 5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v; want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(n); got != tt.want {
				t.Errorf("reverse Intersects = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	n := MustNew(0, 0, 100, 100)
	if !n.Contains(MustNew(0, 0, 100, 100)) {
		t.Error("node should contain itself")
	}
	if !n.Contains(MustNew(10, 10, 20, 20)) {
		t.Error("node should contain inner node")
	}
	if n.Contains(MustNew(90, 90, 20, 20)) {
		t.Error("node should not contain overflowing node")
	}
}

func TestClamp(t *testing.T) {
	bounds := MustNew(0, 0, 800, 600)
	tests := []struct {
		name string
		node Node
		want Node
	}{
		{name: "Already inside", node: MustNew(10, 10, 100, 100), want: MustNew(10, 10, 100, 100)},
		{name: "Past right and bottom", node: MustNew(750, 580, 100, 100), want: MustNew(700, 500, 100, 100)},
		{name: "Past left and top", node: MustNew(-20, -5, 100, 100), want: MustNew(0, 0, 100, 100)},
		{name: "Wider than bounds keeps left", node: MustNew(300, 0, 1000, 10), want: MustNew(0, 0, 1000, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Clamp(bounds); !got.Equal(tt.want) {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want bool
	}{
		{name: "Zero size", node: MustNew(5, 5, 0, 0), want: true},
		{name: "Zero width", node: MustNew(5, 5, 0, 10), want: true},
		{name: "Zero height", node: MustNew(5, 5, 10, 0), want: true},
		{name: "Positive size", node: MustNew(5, 5, 1, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Empty(); got != tt.want {
				t.Errorf("Empty() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	n := MustNew(10, 20, 100, 50)
	if got, want := n.Translate(-15, 30), MustNew(-5, 50, 100, 50); !got.Equal(want) {
		t.Errorf("got %v; want %v", got, want)
	}
	if !n.Equal(MustNew(10, 20, 100, 50)) {
		t.Errorf("Translate modified the receiver: %v", n)
	}
}
