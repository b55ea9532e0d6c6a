package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

func createTestMotion(grid *entity.Grid) *MotionSystem {
	return NewMotionSystem(&config.MotionConfig{KnockbackDecay: 0.8}, grid)
}

func TestMotionSystem_MoveAxisSeparated(t *testing.T) {
	t.Run("free move applies both axes", func(t *testing.T) {
		s := createTestMotion(openGrid(10, 10))
		body := &entity.Body{X: 64, Y: 64, W: 16, H: 16}

		bx, by := s.MoveAxisSeparated(body, 3, -2, s.Walls)

		assert.False(t, bx)
		assert.False(t, by)
		assert.Equal(t, 67.0, body.X)
		assert.Equal(t, 62.0, body.Y)
	})

	t.Run("slides along wall", func(t *testing.T) {
		grid := openGrid(10, 10)
		// wall column at tile x=3 (pixels 96..127)
		for y := 0; y < 10; y++ {
			grid.Blocked.AddWall(entity.Tile{X: 3, Y: y})
		}
		s := createTestMotion(grid)
		body := &entity.Body{X: 78, Y: 64, W: 16, H: 16} // right edge at 94

		bx, by := s.MoveAxisSeparated(body, 5, 5, s.Walls)

		assert.True(t, bx)
		assert.False(t, by)
		assert.Equal(t, 78.0, body.X)
		assert.Equal(t, 69.0, body.Y)
	})

	t.Run("extra collider", func(t *testing.T) {
		s := createTestMotion(openGrid(10, 10))
		body := &entity.Body{X: 0, Y: 0, W: 10, H: 10}
		obstacle := entity.Rect{X: 12, Y: 0, W: 10, H: 10}
		collides := Any(s.Walls, func(r entity.Rect) bool { return r.Overlaps(obstacle) })

		bx, _ := s.MoveAxisSeparated(body, 4, 0, collides)

		assert.True(t, bx)
		assert.Equal(t, 0.0, body.X)
	})
}

func TestMotionSystem_ApplyKnockback(t *testing.T) {
	t.Run("decays geometrically to zero", func(t *testing.T) {
		s := createTestMotion(openGrid(100, 100))
		body := &entity.Body{X: 1000, Y: 1000, W: 16, H: 16, KnockbackX: 6}

		prev := math.Abs(body.KnockbackX)
		for i := 0; i < 200 && body.HasKnockback(); i++ {
			s.ApplyKnockback(body, s.Walls)
			cur := math.Abs(body.KnockbackX)
			assert.Less(t, cur, prev)
			prev = cur
		}

		assert.False(t, body.HasKnockback())
		assert.Equal(t, 0.0, body.KnockbackX)
		assert.Greater(t, body.X, 1000.0)

		x := body.X
		s.ApplyKnockback(body, s.Walls)
		assert.Equal(t, 0.0, body.KnockbackX)
		assert.Equal(t, x, body.X)
	})

	t.Run("hard stop on wall", func(t *testing.T) {
		grid := openGrid(10, 10)
		grid.Blocked.AddWall(entity.Tile{X: 3, Y: 2})
		s := createTestMotion(grid)
		body := &entity.Body{X: 80, Y: 64, W: 16, H: 16, KnockbackX: 6, KnockbackY: 1}

		s.ApplyKnockback(body, s.Walls)

		assert.Equal(t, 80.0, body.X)
		assert.Equal(t, 64.0, body.Y)
		assert.Equal(t, 0.0, body.KnockbackX)
		assert.Equal(t, 0.0, body.KnockbackY)
	})

	t.Run("below epsilon is zeroed without moving", func(t *testing.T) {
		s := createTestMotion(openGrid(10, 10))
		body := &entity.Body{X: 50, Y: 50, W: 16, H: 16, KnockbackX: 0.005}

		s.ApplyKnockback(body, s.Walls)

		assert.Equal(t, 50.0, body.X)
		assert.Equal(t, 0.0, body.KnockbackX)
	})
}

func TestMotionSystem_Clamp(t *testing.T) {
	s := createTestMotion(openGrid(10, 10)) // 320x320

	body := &entity.Body{X: -5, Y: 400, W: 20, H: 20}
	s.Clamp(body)

	assert.Equal(t, 0.0, body.X)
	assert.Equal(t, 300.0, body.Y)
}

func TestMotionSystem_MovePlayer(t *testing.T) {
	s := createTestMotion(openGrid(10, 10))
	p := entity.NewPlayer(160, 160, 48, 5, 10)
	p.Invuln = 2
	x0, y0 := p.Position()

	started := s.MovePlayer(p, 1, -1)
	assert.True(t, started)
	assert.Equal(t, x0+5, p.X)
	assert.Equal(t, y0-5, p.Y)
	assert.Equal(t, 1, p.Invuln)

	assert.False(t, s.MovePlayer(p, 1, 0), "still moving is not a new start")
	assert.False(t, s.MovePlayer(p, 0, 0))
	assert.False(t, p.Moving)
	assert.True(t, s.MovePlayer(p, 0, 1))
}

func TestMotionSystem_Push(t *testing.T) {
	grid := openGrid(10, 10)
	grid.Blocked.AddWall(entity.Tile{X: 5, Y: 3})
	s := createTestMotion(grid)
	body := &entity.Body{X: 140, Y: 96, W: 16, H: 16}

	s.Push(body, 10, 0)
	assert.Equal(t, 140.0, body.X, "blocked by the wall at tile 5")

	s.Push(body, -500, 0)
	assert.Equal(t, 0.0, body.X, "clamped to the world")
}
