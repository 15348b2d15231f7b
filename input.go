package corral

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputFrame is the input state for one tick: the four held direction keys
// plus whether space was pressed this frame. The game reads one InputFrame
// per tick, so tests can drive the simulation by constructing frames
// directly.
type InputFrame struct {
	Left, Right, Up, Down bool
	Space                 bool
}

// ReadKeyboard polls the keyboard. Direction keys report held state; space
// reports only the press edge, matching a key-typed event.
func ReadKeyboard() InputFrame {
	return InputFrame{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Space: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// Heading resolves the held keys into a single direction with a fixed
// priority: left, right, up, down. No keys held yields the zero vector.
func (in InputFrame) Heading() Vec2 {
	switch {
	case in.Left:
		return VecLeft
	case in.Right:
		return VecRight
	case in.Up:
		return VecUp
	case in.Down:
		return VecDown
	}
	return VecZero
}
