// Package game runs the scene stack on top of ebiten and owns the shared Context.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/application/scene"
)

// closer is implemented by sound players holding an audio device
type closer interface {
	Close()
}

// Game implements ebiten.Game, switching scenes and releasing the Context on shutdown.
type Game struct {
	ctx     *Context
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a Game around ctx and enters initialScene.
// A nil ctx gets silent, discarding defaults.
func New(ctx *Context, initialScene scene.Scene, screenW, screenH int) *Game {
	if ctx == nil {
		ctx = NewContext(nil, 1, nil)
	}
	g := &Game{
		ctx:     ctx,
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.ctx.Log.WithField("scene", sceneName(initialScene)).Debug("scene entered")
	g.current.OnEnter()
	return g
}

// Context returns the collaborators shared by every scene
func (g *Game) Context() *Context {
	return g.ctx
}

// Update steps the current scene and performs the transition it asks for.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.ctx.Log.WithError(err).WithField("scene", sceneName(g.current)).Error("scene update failed")
		return err
	}

	if next != nil {
		g.ctx.Log.WithFields(logrus.Fields{
			"from": sceneName(g.current),
			"to":   sceneName(next),
		}).Info("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Shutdown exits the current scene and closes the sound player.
// Call once after the loop returns.
func (g *Game) Shutdown() {
	g.current.OnExit()
	if c, ok := g.ctx.Sound.(closer); ok {
		c.Close()
	}
	g.ctx.Log.Debug("game shut down")
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
