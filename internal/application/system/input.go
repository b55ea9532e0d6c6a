package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the per-frame input snapshot consumed by the simulation
type InputState struct {
	MoveX  int // -1, 0 or 1
	MoveY  int
	AimX   int // pointer, screen coordinates
	AimY   int
	Attack bool // pressed this frame
	Pause  bool // pressed this frame
}

// Moving reports whether any movement axis is held
func (in InputState) Moving() bool {
	return in.MoveX != 0 || in.MoveY != 0
}

// InputSystem samples the keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MoveX: axis(
			ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		),
		MoveY: axis(
			ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		),
		AimX:   mx,
		AimY:   my,
		Attack: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// axis folds a negative/positive key pair into -1, 0 or 1. Opposing keys cancel.
func axis(neg, pos bool) int {
	v := 0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}
