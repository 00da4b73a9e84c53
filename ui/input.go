package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame view of the pointer and keyboard that the
// Controller consumes. It also serves as the pointer source of every
// widget.
type Input interface {
	// Poll samples devices. It is called once at the start of each frame.
	Poll()
	CurrentPointerPosition() (x, y int)
	Pressed() bool
	JustPressed() bool
	JustReleased() bool
	KeyJustPressed(key ebiten.Key) bool
	SetCursorShape(shape ebiten.CursorShapeType)
}

var _ Input = (*EbitenInput)(nil)

// EbitenInput reads the mouse and the primary touch from ebiten. While a
// touch is active it takes precedence over the mouse cursor.
type EbitenInput struct {
	touches []ebiten.TouchID

	primary    ebiten.TouchID
	hasPrimary bool
	x, y       int

	pressed      bool
	justPressed  bool
	justReleased bool
}

// NewEbitenInput creates an input reader.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		touches: make([]ebiten.TouchID, 0, 8),
	}
}

func (in *EbitenInput) Poll() {
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])

	// Primary touch ended
	if in.hasPrimary && !containsTouchID(in.touches, in.primary) {
		in.hasPrimary = false
	}
	// New primary touch
	if !in.hasPrimary && len(in.touches) > 0 {
		in.primary = in.touches[0]
		in.hasPrimary = true
	}

	if in.hasPrimary {
		in.x, in.y = ebiten.TouchPosition(in.primary)
	} else {
		in.x, in.y = ebiten.CursorPosition()
	}

	wasPressed := in.pressed
	in.pressed = in.hasPrimary || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.justPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		(in.hasPrimary && inpututil.TouchPressDuration(in.primary) == 1)
	in.justReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		(wasPressed && !in.pressed)
}

func (in *EbitenInput) CurrentPointerPosition() (int, int) { return in.x, in.y }
func (in *EbitenInput) Pressed() bool                      { return in.pressed }
func (in *EbitenInput) JustPressed() bool                  { return in.justPressed }
func (in *EbitenInput) JustReleased() bool                 { return in.justReleased }

func (in *EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (in *EbitenInput) SetCursorShape(shape ebiten.CursorShapeType) {
	ebiten.SetCursorShape(shape)
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
