package system

import (
	"math/rand"

	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
	"github.com/younwookim/crypt/internal/infrastructure/logger"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestConfig() *config.GameConfig {
	return config.Default()
}

// openGrid returns a w x h grid of 32px tiles with no walls
func openGrid(w, h int) *entity.Grid {
	return entity.NewGrid(w, h, 32)
}

// recordingSound collects every cue played
type recordingSound struct {
	played []entity.Sound
}

func (r *recordingSound) Play(s entity.Sound) {
	r.played = append(r.played, s)
}

func (r *recordingSound) count(s entity.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// fixture wires every system over one grid
type fixture struct {
	cfg     *config.GameConfig
	grid    *entity.Grid
	roster  *entity.Roster
	motion  *MotionSystem
	enemies *EnemySystem
	combat  *CombatSystem
	sound   *recordingSound
}

func newFixture(grid *entity.Grid) *fixture {
	cfg := createTestConfig()
	roster := entity.NewRoster()
	motion := NewMotionSystem(&cfg.Motion, grid)
	snd := &recordingSound{}
	log := logger.Discard()
	return &fixture{
		cfg:     cfg,
		grid:    grid,
		roster:  roster,
		motion:  motion,
		enemies: NewEnemySystem(cfg, grid, roster, motion, log),
		combat:  NewCombatSystem(cfg, grid, roster, motion, snd, log),
		sound:   snd,
	}
}

func (f *fixture) rooms(rooms ...*entity.Room) *RoomSystem {
	return NewRoomSystem(f.cfg, f.grid, rooms, f.roster, f.enemies, f.sound, testRNG(), logger.Discard())
}

// playerAt creates a default-sized player centered at (cx, cy)
func (f *fixture) playerAt(cx, cy float64) *entity.Player {
	pc := f.cfg.Player
	return entity.NewPlayer(cx, cy, pc.Size, pc.Speed, pc.MaxHealth)
}
