package game

import "github.com/hajimehoshi/ebiten/v2"

// InputState is a snapshot of the controls for one tick. The zero value
// means nothing is held.
type InputState struct {
	Right, Left, Up, Down bool
	Fire                  bool
	Mouse                 Vec2f // cursor in screen coordinates
}

// Axis builds the raw movement vector. Keys are applied in the order
// right, left, up, down and the last one wins, so left beats right and
// down beats up.
func (in InputState) Axis() Vec2f {
	var v Vec2f
	if in.Right {
		v.X = 1
	}
	if in.Left {
		v.X = -1
	}
	if in.Up {
		v.Y = -1
	}
	if in.Down {
		v.Y = 1
	}
	return v
}

// InputSource provides the control snapshot for the current frame
type InputSource interface {
	Poll() InputState
}

// KeyboardInput reads WASD and the left mouse button from ebiten
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard/mouse input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll returns the current key, button and cursor state
func (k *KeyboardInput) Poll() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Mouse: Vec2f{X: float64(mx), Y: float64(my)},
	}
}
