// Package sim composes the gameplay systems into one deterministic per-frame step.
//
// A World owns every mutable entity of a run. Step advances it by exactly one
// frame from an input snapshot; nothing in Step blocks or fails. Identical
// configs, seed and input sequences always produce identical worlds, which is
// what replays rely on.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/application/state"
	"github.com/younwookim/crypt/internal/application/system"
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
	"github.com/younwookim/crypt/internal/infrastructure/logger"
)

// Options configures the collaborators of a World
type Options struct {
	Seed  int64
	Sound system.SoundPlayer // nil plays nothing
	Log   logrus.FieldLogger // nil logs nothing
}

// Stats are running totals for the HUD and replay summaries
type Stats struct {
	Kills        int
	DamageTaken  int
	RoomsEntered int
	RoomsCleared int
}

// World is one run of a built world
type World struct {
	Name   string
	Grid   *entity.Grid
	Player *entity.Player
	Roster *entity.Roster
	Camera *entity.Camera
	State  state.GameState
	Frame  int
	Stats  Stats

	motion  *system.MotionSystem
	enemies *system.EnemySystem
	combat  *system.CombatSystem
	rooms   *system.RoomSystem

	sound    system.SoundPlayer
	log      logrus.FieldLogger
	lastTile entity.Tile
	aimX     float64
	aimY     float64
}

// New builds a world from config. Layout errors are returned before any frame runs.
func New(cfg *config.GameConfig, world *config.WorldConfig, opts Options) (*World, error) {
	layout, err := system.BuildLayout(cfg, world)
	if err != nil {
		return nil, fmt.Errorf("build world %q: %w", world.Name, err)
	}

	snd := opts.Sound
	if snd == nil {
		snd = system.Silent{}
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithField("world", layout.Name)

	grid := layout.Grid
	pc := cfg.Player
	player := entity.NewPlayer(layout.SpawnX, layout.SpawnY, pc.Size, pc.Speed, pc.MaxHealth)
	roster := entity.NewRoster()
	bounds := grid.WorldRect()
	camera := entity.NewCamera(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, bounds.W, bounds.H)
	camera.CenterOn(player.Rect())

	motion := system.NewMotionSystem(&cfg.Motion, grid)
	enemies := system.NewEnemySystem(cfg, grid, roster, motion, log)
	combat := system.NewCombatSystem(cfg, grid, roster, motion, snd, log)
	rng := rand.New(rand.NewSource(opts.Seed))
	rooms := system.NewRoomSystem(cfg, grid, layout.Rooms, roster, enemies, snd, rng, log)

	w := &World{
		Name:    layout.Name,
		Grid:    grid,
		Player:  player,
		Roster:  roster,
		Camera:  camera,
		State:   state.StatePlaying,
		motion:  motion,
		enemies: enemies,
		combat:  combat,
		rooms:   rooms,
		sound:   snd,
		log:     log,
	}
	w.lastTile = w.playerTile()
	w.aimX, w.aimY = player.Center()

	combat.OnEnemyKilled = func(*entity.Enemy) { w.Stats.Kills++ }
	combat.OnPlayerHurt = func(n int) { w.Stats.DamageTaken += n }
	rooms.OnRoomTriggered = func(*entity.Room) { w.Stats.RoomsEntered++ }
	rooms.OnRoomCleared = func(*entity.Room) { w.Stats.RoomsCleared++ }

	log.WithFields(logrus.Fields{
		"width":  grid.Width,
		"height": grid.Height,
		"rooms":  len(layout.Rooms),
		"seed":   opts.Seed,
	}).Info("world built")
	return w, nil
}

// Step advances the world by one frame
func (w *World) Step(in system.InputState) {
	if in.Pause {
		if next := w.State.TogglePause(); next != w.State {
			w.State = next
			w.log.WithField("frame", w.Frame).Debugf("state %s", next)
		}
	}
	if !w.State.Running() {
		return
	}
	w.Frame++
	p := w.Player

	// input edges
	if in.Attack {
		w.combat.TryStartAttack(p)
	}

	// player motion
	prevX, prevY := p.Position()
	w.combat.TickAttackCooldown(p)
	if w.motion.MovePlayer(p, in.MoveX, in.MoveY) {
		w.sound.Play(entity.SoundFootstep)
	}

	w.Camera.CenterOn(p.Rect())

	tile := w.playerTile()
	movedTile := tile != w.lastTile
	w.lastTile = tile

	// enemies: path requests, movement, reconciliation, abilities
	for _, intent := range w.enemies.Update(p, movedTile) {
		w.apply(intent)
	}
	w.combat.UpdateProjectiles()

	w.combat.ContactDamage(p)

	w.aimX, w.aimY = w.Camera.ToWorld(in.AimX, in.AimY)
	w.combat.UpdateSwing(p, w.aimX, w.aimY)

	// rooms and doors see this frame's kills
	if w.rooms.Triggers(p, prevX, prevY) {
		w.Camera.CenterOn(p.Rect())
		w.lastTile = w.playerTile()
	}
	w.rooms.TickDoors()
	w.rooms.SpawnWaves(p)
	w.rooms.Clears(p)

	switch {
	case !p.IsAlive():
		w.finish(state.StateGameOver)
	case w.rooms.TerminalCleared():
		w.finish(state.StateVictory)
	}
}

func (w *World) apply(intent entity.Intent) {
	switch in := intent.(type) {
	case entity.ShootIntent:
		w.combat.Fire(in)
	case entity.PulseIntent:
		w.combat.Pulse(w.Player, in)
	case entity.SummonIntent:
		roomID := ""
		for _, e := range w.Roster.All() {
			if e.ID == in.Source {
				roomID = e.RoomID
				break
			}
		}
		for i := 0; i < in.Count; i++ {
			if w.enemies.SpawnNear(in.Kind, in.X, in.Y, roomID, w.Player) == nil {
				break
			}
		}
	}
}

func (w *World) finish(s state.GameState) {
	w.State = s
	w.log.WithFields(logrus.Fields{
		"frame":  w.Frame,
		"kills":  w.Stats.Kills,
		"rooms":  w.Stats.RoomsEntered,
		"tokens": w.Player.Tokens,
	}).Infof("run finished: %s", s)
}

func (w *World) playerTile() entity.Tile {
	cx, cy := w.Player.Center()
	return entity.WorldToTile(cx, cy, w.Grid.TileSize)
}

// Rooms returns the world's rooms
func (w *World) Rooms() []*entity.Room {
	return w.rooms.Rooms()
}

// Projectiles returns the live enemy projectiles
func (w *World) Projectiles() []*entity.Projectile {
	return w.combat.Projectiles()
}

// SwordHitbox returns the player's live hitbox for rendering, if any
func (w *World) SwordHitbox() (entity.Rect, bool) {
	if w.Player.Attack != entity.AttackSwinging {
		return entity.Rect{}, false
	}
	return w.combat.SwordHitbox(w.Player, w.aimX, w.aimY)
}
