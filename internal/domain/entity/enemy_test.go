package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var basicStats = KindStats{Health: 2, Speed: 2, Size: 20, ContactDamage: 1}

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(7, KindTank, 50, 50, KindStats{Health: 5, Speed: 2, Size: 40, ContactDamage: 1})

	require.NotNil(t, e)
	assert.Equal(t, EntityID(7), e.ID)
	assert.Equal(t, KindTank, e.Kind)
	assert.Equal(t, 30.0, e.X)
	assert.Equal(t, 5, e.Health)
	assert.Equal(t, 40, e.W)
	assert.False(t, e.HasPath())
}

func TestEnemy_TakeDamage_TwoHitsKill(t *testing.T) {
	e := NewEnemy(1, KindBasic, 0, 0, basicStats)

	dead := e.TakeDamage(1, 6, 0, 12)
	assert.False(t, dead)
	assert.Equal(t, 1, e.Health)
	assert.Equal(t, 12, e.Invuln)
	assert.Equal(t, 6.0, e.KnockbackX)

	for e.IsInvulnerable() {
		e.TickInvuln()
	}

	dead = e.TakeDamage(1, 6, 0, 12)
	assert.True(t, dead)
}

func TestEnemy_TakeDamage_IgnoredWhileInvulnerable(t *testing.T) {
	e := NewEnemy(1, KindBasic, 0, 0, basicStats)
	e.Invuln = 5
	before := *e

	dead := e.TakeDamage(1, 6, 6, 12)

	assert.False(t, dead)
	assert.Equal(t, before.Health, e.Health)
	assert.Equal(t, before.Invuln, e.Invuln)
	assert.Equal(t, before.KnockbackX, e.KnockbackX)
	assert.Equal(t, before.KnockbackY, e.KnockbackY)
}

func TestEnemy_PathCursor(t *testing.T) {
	e := NewEnemy(1, KindBasic, 0, 0, basicStats)
	e.SetPath([]Tile{{1, 0}, {2, 0}})

	wp, ok := e.Waypoint()
	require.True(t, ok)
	assert.Equal(t, Tile{1, 0}, wp)

	e.PathIndex = 2
	_, ok = e.Waypoint()
	assert.False(t, ok)
}

func TestEnemy_TickPathCooldown(t *testing.T) {
	e := NewEnemy(1, KindBasic, 0, 0, basicStats)
	e.PathCooldown = 1
	e.TickPathCooldown()
	e.TickPathCooldown()
	assert.Equal(t, 0, e.PathCooldown)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindBasic, KindFast, KindTank, KindRanged, KindBoss, KindSummoner} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("dragon")
	assert.Error(t, err)
}

func TestRangedAbility(t *testing.T) {
	e := NewEnemy(1, KindRanged, 100, 100, basicStats)
	a := NewRangedAbility(160, 3, 5)

	assert.Nil(t, a.Update(e, 200, 100))
	assert.Nil(t, a.Update(e, 200, 100))

	intent := a.Update(e, 200, 100)
	shot, ok := intent.(ShootIntent)
	require.True(t, ok)
	assert.InDelta(t, 1.0, shot.DirX, 1e-9)
	assert.InDelta(t, 0.0, shot.DirY, 1e-9)

	// Out of range: timer resets but nothing is fired
	for i := 0; i < 4; i++ {
		assert.Nil(t, a.Update(e, 1000, 100))
	}
	assert.Nil(t, a.Update(e, 1000, 100))
}

func TestPulseAbility(t *testing.T) {
	e := NewEnemy(1, KindBoss, 100, 100, basicStats)
	a := NewPulseAbility(80, 10, 1, 2)

	assert.Nil(t, a.Update(e, 0, 0))
	pulse, ok := a.Update(e, 0, 0).(PulseIntent)
	require.True(t, ok)
	assert.Equal(t, 80.0, pulse.Radius)
	assert.Equal(t, 100.0, pulse.X)
}

func TestSummonAbility(t *testing.T) {
	e := NewEnemy(1, KindSummoner, 0, 0, basicStats)
	a := NewSummonAbility(KindBasic, 1, 1)

	summon, ok := a.Update(e, 0, 0).(SummonIntent)
	require.True(t, ok)
	assert.Equal(t, KindBasic, summon.Kind)
	assert.Equal(t, 1, summon.Count)
}
