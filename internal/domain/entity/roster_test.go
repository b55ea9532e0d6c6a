package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoster(t *testing.T) {
	r := NewRoster()
	a := NewEnemy(r.NextID(), KindBasic, 0, 0, basicStats)
	b := NewEnemy(r.NextID(), KindBasic, 0, 0, basicStats)
	a.RoomID = "r1"
	b.RoomID = "r2"

	assert.NotEqual(t, a.ID, b.ID)

	r.Add(a)
	r.Add(b)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.CountInRoom("r1"))

	snapshot := r.All()
	assert.True(t, r.Remove(a))
	assert.False(t, r.Remove(a), "already removed")
	assert.False(t, r.Contains(a))
	assert.Len(t, snapshot, 2, "snapshot is unaffected by removal")
	assert.Equal(t, 0, r.CountInRoom("r1"))

	r.Clear()
	assert.Equal(t, 0, r.Len())
}
