package system

import (
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

// Collider reports whether a rect collides with something solid
type Collider func(r entity.Rect) bool

// MotionSystem integrates actor positions with axis-separated collision
type MotionSystem struct {
	config *config.MotionConfig
	grid   *entity.Grid
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(cfg *config.MotionConfig, grid *entity.Grid) *MotionSystem {
	return &MotionSystem{
		config: cfg,
		grid:   grid,
	}
}

// Walls is the wall collider: every blocked tile, doors included
func (s *MotionSystem) Walls(r entity.Rect) bool {
	return s.grid.RectBlocked(r)
}

// MoveAxisSeparated applies dx then dy, reverting each axis independently on collision.
// Returns whether each axis was blocked.
func (s *MotionSystem) MoveAxisSeparated(body *entity.Body, dx, dy float64, collides Collider) (blockedX, blockedY bool) {
	if dx != 0 {
		oldX := body.X
		body.X += dx
		if collides(body.Rect()) {
			body.X = oldX
			blockedX = true
		}
	}
	if dy != 0 {
		oldY := body.Y
		body.Y += dy
		if collides(body.Rect()) {
			body.Y = oldY
			blockedY = true
		}
	}
	return blockedX, blockedY
}

// ApplyKnockback moves the body by its knockback vector, then decays it.
// A blocked move reverts the whole step and zeroes the vector.
func (s *MotionSystem) ApplyKnockback(body *entity.Body, collides Collider) {
	if !body.HasKnockback() {
		body.ClearKnockback()
		return
	}

	oldX, oldY := body.X, body.Y
	body.X += body.KnockbackX
	body.Y += body.KnockbackY
	if collides(body.Rect()) {
		body.X, body.Y = oldX, oldY
		body.ClearKnockback()
		return
	}

	body.KnockbackX *= s.config.KnockbackDecay
	body.KnockbackY *= s.config.KnockbackDecay
	if !body.HasKnockback() {
		body.ClearKnockback()
	}
}

// Clamp keeps the body's rect inside the world and resyncs the float position
func (s *MotionSystem) Clamp(body *entity.Body) {
	world := s.grid.WorldRect()
	maxX := float64(world.Right() - body.W)
	maxY := float64(world.Bottom() - body.H)
	body.X = clampFloat(body.X, float64(world.X), maxX)
	body.Y = clampFloat(body.Y, float64(world.Y), maxY)
}

// Push displaces a body by (dx, dy) respecting walls, one axis at a time
func (s *MotionSystem) Push(body *entity.Body, dx, dy float64) {
	s.MoveAxisSeparated(body, dx, dy, s.Walls)
	s.Clamp(body)
}

// MovePlayer steps the player by speed along (moveX, moveY) against walls, clamps it to the
// world and ticks its invulnerability. Returns true on the frame movement starts.
func (s *MotionSystem) MovePlayer(p *entity.Player, moveX, moveY int) bool {
	s.MoveAxisSeparated(&p.Body, float64(moveX)*p.Speed, float64(moveY)*p.Speed, s.Walls)
	s.ApplyKnockback(&p.Body, s.Walls)
	s.Clamp(&p.Body)
	p.TickInvuln()

	moving := moveX != 0 || moveY != 0
	started := moving && !p.Moving
	p.Moving = moving
	return started
}

// Any combines colliders; the first hit wins
func Any(colliders ...Collider) Collider {
	return func(r entity.Rect) bool {
		for _, c := range colliders {
			if c != nil && c(r) {
				return true
			}
		}
		return false
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

