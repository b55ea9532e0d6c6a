package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody_RectTruncates(t *testing.T) {
	b := Body{X: 10.9, Y: 20.2, W: 8, H: 6}
	assert.Equal(t, Rect{X: 10, Y: 20, W: 8, H: 6}, b.Rect())
}

func TestBody_CenterRoundTrip(t *testing.T) {
	b := Body{W: 20, H: 10}
	b.SetCenter(100, 50)

	assert.Equal(t, 90.0, b.X)
	assert.Equal(t, 45.0, b.Y)

	cx, cy := b.Center()
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 50.0, cy)
}

func TestBody_Knockback(t *testing.T) {
	b := Body{}
	assert.False(t, b.HasKnockback())

	b.KnockbackX = KnockbackEpsilon
	assert.False(t, b.HasKnockback(), "epsilon itself counts as zero")

	b.KnockbackY = -0.5
	assert.True(t, b.HasKnockback())

	b.ClearKnockback()
	assert.Zero(t, b.KnockbackX)
	assert.Zero(t, b.KnockbackY)
}

func TestBody_TickInvuln(t *testing.T) {
	b := Body{Invuln: 2}
	assert.True(t, b.IsInvulnerable())

	b.TickInvuln()
	b.TickInvuln()
	assert.False(t, b.IsInvulnerable())

	b.TickInvuln()
	assert.Equal(t, 0, b.Invuln, "never goes negative")
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(100, 100, 48, 5, 10)

	assert.Equal(t, 76.0, p.X)
	assert.Equal(t, 76.0, p.Y)
	assert.Equal(t, 10, p.Health)
	assert.Equal(t, 10, p.MaxHealth)
	assert.Equal(t, AttackIdle, p.Attack)
	assert.True(t, p.CanStartAttack())
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayer(0, 0, 48, 5, 3)

	assert.True(t, p.TakeDamage(1, 60))
	assert.Equal(t, 2, p.Health)
	assert.Equal(t, 60, p.Invuln)

	assert.False(t, p.TakeDamage(1, 60), "invulnerable player ignores damage")
	assert.Equal(t, 2, p.Health)

	p.Invuln = 0
	p.TakeDamage(5, 60)
	assert.Equal(t, 0, p.Health, "health is floored at zero")
}

func TestPlayer_CanStartAttack(t *testing.T) {
	p := NewPlayer(0, 0, 48, 5, 3)

	p.Attack = AttackSwinging
	assert.False(t, p.CanStartAttack())

	p.Attack = AttackIdle
	p.AttackCooldownTimer = 1
	assert.False(t, p.CanStartAttack())
}

func TestAttackState_String(t *testing.T) {
	assert.Equal(t, "Idle", AttackIdle.String())
	assert.Equal(t, "Swinging", AttackSwinging.String())
	assert.Equal(t, "Cooldown", AttackCooldown.String())
	assert.Equal(t, "Unknown", AttackState(99).String())
}
