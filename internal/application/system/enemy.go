package system

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

// EnemySystem drives enemy pursuit: path requests, path following, fallback chase
// and post-move reconciliation.
type EnemySystem struct {
	config    *config.GameConfig
	grid      *entity.Grid
	roster    *entity.Roster
	motion    *MotionSystem
	heuristic Heuristic
	log       logrus.FieldLogger
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.GameConfig, grid *entity.Grid, roster *entity.Roster, motion *MotionSystem, log logrus.FieldLogger) *EnemySystem {
	return &EnemySystem{
		config:    cfg,
		grid:      grid,
		roster:    roster,
		motion:    motion,
		heuristic: HeuristicByName(cfg.Pathing.Heuristic),
		log:       log,
	}
}

// Spawn creates an enemy of kind centered at (cx, cy), tags it with roomID and adds it to the roster
func (s *EnemySystem) Spawn(kind entity.Kind, cx, cy float64, roomID string) *entity.Enemy {
	ec := s.config.Enemy(kind.String())
	e := entity.NewEnemy(s.roster.NextID(), kind, cx, cy, entity.KindStats{
		Health:        ec.Health,
		Speed:         ec.Speed,
		Size:          ec.Size,
		ContactDamage: ec.ContactDamage,
	})
	e.RoomID = roomID
	e.Ability = s.abilityFor(kind)
	s.roster.Add(e)
	return e
}

// SpawnNear spawns an enemy on the closest tile ring around (x, y) where it touches
// no wall, no enemy and not the player. Returns nil when nothing within summonRadius fits.
func (s *EnemySystem) SpawnNear(kind entity.Kind, x, y float64, roomID string, player *entity.Player) *entity.Enemy {
	size := s.config.Enemy(kind.String()).Size
	origin := entity.WorldToTile(x, y, s.grid.TileSize)
	for r := 1; r <= summonRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(absInt(dx), absInt(dy)) != r {
					continue
				}
				t := origin.Add(dx, dy)
				if !s.grid.Walkable(t) {
					continue
				}
				cx, cy := s.grid.TileCenter(t)
				rect := entity.Rect{X: int(cx) - size/2, Y: int(cy) - size/2, W: size, H: size}
				if s.grid.RectBlocked(rect) || rect.Overlaps(player.Rect()) || s.Occupied(rect) {
					continue
				}
				return s.Spawn(kind, cx, cy, roomID)
			}
		}
	}
	return nil
}

const summonRadius = 2

// Occupied reports whether rect overlaps any live enemy
func (s *EnemySystem) Occupied(rect entity.Rect) bool {
	for _, e := range s.roster.All() {
		if rect.Overlaps(e.Rect()) {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *EnemySystem) abilityFor(kind entity.Kind) entity.Ability {
	ab := s.config.Abilities
	switch kind {
	case entity.KindRanged:
		rng := float64(ab.Ranged.RangeTiles * s.grid.TileSize)
		return entity.NewRangedAbility(rng, ab.Ranged.FirstDelay, ab.Ranged.Interval)
	case entity.KindBoss:
		return entity.NewPulseAbility(ab.Pulse.Radius, ab.Pulse.Push, ab.Pulse.Damage, ab.Pulse.Interval)
	case entity.KindSummoner:
		summoned, err := entity.ParseKind(ab.Summon.Kind)
		if err != nil {
			s.log.WithError(err).Warn("invalid summon kind, using basic")
		}
		return entity.NewSummonAbility(summoned, ab.Summon.Count, ab.Summon.Interval)
	default:
		return nil
	}
}

// Update runs one frame of pursuit for every enemy and returns the ability intents raised
func (s *EnemySystem) Update(player *entity.Player, playerMovedTile bool) []entity.Intent {
	var intents []entity.Intent
	px, py := player.Center()

	for _, e := range s.roster.All() {
		e.TickPathCooldown()
		if playerMovedTile || e.PathCooldown == 0 {
			s.RequestPath(e, px, py)
		}

		oldX, oldY := e.X, e.Y
		if e.HasPath() {
			s.FollowPath(e)
		} else {
			s.Chase(e, px, py)
		}

		e.TickInvuln()
		s.motion.ApplyKnockback(&e.Body, s.motion.Walls)
		s.motion.Clamp(&e.Body)

		s.Reconcile(e, player, oldX, oldY)

		if e.Ability != nil {
			if intent := e.Ability.Update(e, px, py); intent != nil {
				intents = append(intents, intent)
			}
		}
	}
	return intents
}

// RequestPath recomputes the cached path toward (tx, ty) unless throttled.
// Returns true if a new path was stored.
func (s *EnemySystem) RequestPath(e *entity.Enemy, tx, ty float64) bool {
	if e.PathCooldown > 0 {
		return false
	}

	ts := s.grid.TileSize
	targetTile := entity.WorldToTile(tx, ty, ts)
	if e.HasLastTarget && e.LastTargetTile == targetTile && len(e.Path) > 0 {
		return false
	}

	ex, ey := e.Center()
	start, ok := s.nearFree(entity.WorldToTile(ex, ey, ts))
	if !ok {
		return false
	}
	goal, ok := s.nearFree(targetTile)
	if !ok {
		return false
	}

	e.SetPath(FindPathWith(start, goal, s.grid, s.heuristic))
	e.PathCooldown = s.config.Pathing.CooldownFrames
	e.LastTargetTile = targetTile
	e.HasLastTarget = true
	return true
}

// nearFree returns t if walkable, else the first walkable tile of its 3x3 neighbourhood
func (s *EnemySystem) nearFree(t entity.Tile) (entity.Tile, bool) {
	if !s.grid.IsBlocked(t) {
		return t, true
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			cand := t.Add(dx, dy)
			if s.grid.Walkable(cand) {
				return cand, true
			}
		}
	}
	return entity.Tile{}, false
}

// FollowPath steps toward the current waypoint's center at the enemy's speed
func (s *EnemySystem) FollowPath(e *entity.Enemy) {
	wp, ok := e.Waypoint()
	if !ok {
		return
	}
	tx, ty := s.grid.TileCenter(wp)
	cx, cy := e.Center()
	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		e.PathIndex++
		return
	}

	step := math.Min(e.Speed, dist)
	e.X += dx / dist * step
	e.Y += dy / dist * step
	if dist < s.config.Pathing.WaypointRadius {
		e.PathIndex++
	}
}

// Chase moves straight toward (tx, ty). Zero distance is a no-op.
func (s *EnemySystem) Chase(e *entity.Enemy, tx, ty float64) {
	cx, cy := e.Center()
	nx, ny, ok := entity.Normalize(tx-cx, ty-cy)
	if !ok {
		return
	}
	e.X += nx * e.Speed
	e.Y += ny * e.Speed
}

// Reconcile reverts the enemy to (oldX, oldY) and cancels its knockback if it
// now overlaps a wall, the player or another enemy. Returns true if reverted.
func (s *EnemySystem) Reconcile(e *entity.Enemy, player *entity.Player, oldX, oldY float64) bool {
	r := e.Rect()
	collided := s.grid.RectBlocked(r) || r.Overlaps(player.Rect())
	if !collided {
		for _, other := range s.roster.All() {
			if other != e && r.Overlaps(other.Rect()) {
				collided = true
				break
			}
		}
	}
	if !collided {
		return false
	}
	e.X, e.Y = oldX, oldY
	e.ClearKnockback()
	return true
}
