// Package scene defines the Scene interface for game screens.
//
// The playing screen is the only scene today; menus or a replay viewer
// would implement the same interface and hand over by returning themselves
// from Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by game.Game.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// A non-nil next scene replaces this one; an error stops the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the loop ends.
	// Scenes flush recordings and release resources here.
	OnExit()
}
