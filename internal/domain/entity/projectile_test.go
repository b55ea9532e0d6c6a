package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectile_Step(t *testing.T) {
	p := NewProjectile(10, 10, 1, 0, 3, 1, 2, 6)

	assert.True(t, p.Step())
	assert.Equal(t, 13.0, p.X)
	assert.Equal(t, 10.0, p.Y)

	assert.False(t, p.Step(), "expires when life runs out")
	assert.False(t, p.Active)
	assert.False(t, p.Step())
}

func TestProjectile_Rect(t *testing.T) {
	p := NewProjectile(10, 10, 0, 1, 3, 1, 10, 6)
	assert.Equal(t, Rect{X: 7, Y: 7, W: 6, H: 6}, p.Rect())
}
