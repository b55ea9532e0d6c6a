package system

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

// RoomSystem runs the room gate: entry triggers, door timers, wave spawns and wave clears
type RoomSystem struct {
	config  *config.GameConfig
	grid    *entity.Grid
	rooms   []*entity.Room
	roster  *entity.Roster
	enemies *EnemySystem
	sound   SoundPlayer
	rng     *rand.Rand
	log     logrus.FieldLogger

	// Event callbacks
	OnRoomTriggered func(r *entity.Room)
	OnRoomCleared   func(r *entity.Room)
}

// NewRoomSystem creates a new room system
func NewRoomSystem(cfg *config.GameConfig, grid *entity.Grid, rooms []*entity.Room, roster *entity.Roster,
	enemies *EnemySystem, sound SoundPlayer, rng *rand.Rand, log logrus.FieldLogger) *RoomSystem {
	return &RoomSystem{
		config:  cfg,
		grid:    grid,
		rooms:   rooms,
		roster:  roster,
		enemies: enemies,
		sound:   sound,
		rng:     rng,
		log:     log,
	}
}

// Rooms returns the managed rooms
func (s *RoomSystem) Rooms() []*entity.Room {
	return s.rooms
}

// Triggers checks every untriggered room against the player's rect.
// Entry into a room the player lacks tokens for reverts the player to (prevX, prevY).
// Returns true if the player was reverted.
func (s *RoomSystem) Triggers(p *entity.Player, prevX, prevY float64) bool {
	reverted := false
	for _, r := range s.rooms {
		if r.Triggered() {
			continue
		}
		if !r.Contains(p.Rect()) {
			r.MarkDenied(false)
			continue
		}

		if p.Tokens < r.RequiredTokens {
			p.SetPosition(prevX, prevY)
			reverted = true
			if r.MarkDenied(true) {
				s.sound.Play(entity.SoundDenied)
				s.log.WithFields(logrus.Fields{
					"room":     r.ID,
					"tokens":   p.Tokens,
					"required": r.RequiredTokens,
				}).Info("room entry denied")
			}
			continue
		}

		r.MarkDenied(false)
		s.Trigger(r)
	}
	return reverted
}

// Trigger moves an untriggered room into Triggered and schedules its doors to close
func (s *RoomSystem) Trigger(r *entity.Room) {
	if r.Triggered() {
		return
	}
	r.State = entity.RoomTriggered
	for _, d := range r.Doors {
		d.StartTimer(s.config.Rooms.DoorDelayFrames)
	}
	s.sound.Play(entity.SoundCombatStart)
	s.log.WithFields(logrus.Fields{"room": r.ID, "doors": len(r.Doors)}).Info("room triggered")
	if s.OnRoomTriggered != nil {
		s.OnRoomTriggered(r)
	}
}

// TickDoors advances every door timer by one frame
func (s *RoomSystem) TickDoors() {
	for _, r := range s.rooms {
		for _, d := range r.Doors {
			if d.Tick(s.grid.Blocked) {
				s.sound.Play(entity.SoundDoorClose)
				s.log.WithField("room", r.ID).Debug("door closed")
			}
		}
	}
}

// SpawnWaves spawns the wave of every triggered room whose first door has closed.
// Returns the number of enemies spawned.
func (s *RoomSystem) SpawnWaves(p *entity.Player) int {
	total := 0
	for _, r := range s.rooms {
		if r.State != entity.RoomTriggered || r.WaveSpawned || !r.FirstDoorClosed() {
			continue
		}
		total += s.spawnWave(r, p)
		r.WaveSpawned = true
		r.State = entity.RoomLocked
	}
	return total
}

func (s *RoomSystem) spawnWave(r *entity.Room, p *entity.Player) int {
	candidates := s.SpawnTiles(r, p)
	if len(candidates) == 0 {
		s.log.WithField("room", r.ID).Warn("no free spawn tile, wave skipped")
		return 0
	}

	n := 0
	for _, w := range r.Wave {
		for i := 0; i < w.Count; i++ {
			t, ok := s.pickTile(candidates, s.config.Enemy(w.Kind.String()).Size)
			if !ok {
				s.log.WithFields(logrus.Fields{"room": r.ID, "kind": w.Kind.String()}).Warn("no room for enemy, spawn skipped")
				continue
			}
			cx, cy := s.grid.TileCenter(t)
			s.enemies.Spawn(w.Kind, cx, cy, r.ID)
			n++
		}
	}
	s.log.WithFields(logrus.Fields{"room": r.ID, "enemies": n}).Info("wave spawned")
	return n
}

// SpawnTiles returns the room's free tiles whose Manhattan distance from the player
// is at least the minimum spawn distance
func (s *RoomSystem) SpawnTiles(r *entity.Room, p *entity.Player) []entity.Tile {
	px, py := p.Center()
	minDist := float64(s.config.Rooms.SpawnMinDistanceTiles * s.grid.TileSize)

	out := make([]entity.Tile, 0, len(r.Tiles))
	for _, t := range r.Tiles {
		if !s.grid.Walkable(t) {
			continue
		}
		cx, cy := s.grid.TileCenter(t)
		if math.Abs(cx-px)+math.Abs(cy-py) < minDist {
			continue
		}
		out = append(out, t)
	}
	return out
}

// pickTile draws random candidates until one has room for an enemy of the given size.
// Reports false when every attempt lands on a wall or another enemy.
func (s *RoomSystem) pickTile(candidates []entity.Tile, size int) (entity.Tile, bool) {
	attempts := max(1, s.config.Rooms.SpawnAttempts)
	for i := 0; i < attempts; i++ {
		t := candidates[s.rng.Intn(len(candidates))]
		cx, cy := s.grid.TileCenter(t)
		rect := entity.Rect{X: int(cx) - size/2, Y: int(cy) - size/2, W: size, H: size}
		if !s.grid.RectBlocked(rect) && !s.enemies.Occupied(rect) {
			return t, true
		}
	}
	return entity.Tile{}, false
}

// Clears marks every locked room with no enemies left as cleared, awards a token
// for non-terminal rooms and opens the room's doors. Returns the rooms cleared this frame.
func (s *RoomSystem) Clears(p *entity.Player) []*entity.Room {
	var cleared []*entity.Room
	for _, r := range s.rooms {
		if r.State != entity.RoomLocked || !r.WaveSpawned {
			continue
		}
		if s.roster.CountInRoom(r.ID) > 0 {
			continue
		}

		r.State = entity.RoomCleared
		if !r.Terminal && !r.Rewarded {
			r.Rewarded = true
			p.Tokens++
			s.sound.Play(entity.SoundToken)
		}
		for _, d := range r.Doors {
			d.OpenDoor(s.grid.Blocked)
		}
		s.sound.Play(entity.SoundDoorOpen)
		s.log.WithFields(logrus.Fields{"room": r.ID, "tokens": p.Tokens}).Info("room cleared")

		cleared = append(cleared, r)
		if s.OnRoomCleared != nil {
			s.OnRoomCleared(r)
		}
	}
	return cleared
}

// TerminalCleared reports whether every terminal room is cleared
func (s *RoomSystem) TerminalCleared() bool {
	found := false
	for _, r := range s.rooms {
		if !r.Terminal {
			continue
		}
		found = true
		if !r.Cleared() {
			return false
		}
	}
	return found
}
