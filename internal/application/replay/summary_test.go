package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/crypt/internal/application/sim"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

func newArena(t *testing.T, seed int64) *sim.World {
	t.Helper()
	loader := config.NewLoader("../../../cmd/game/configs")
	game, err := loader.LoadGame()
	require.NoError(t, err)
	world, err := loader.LoadWorld("arena")
	require.NoError(t, err)

	w, err := sim.New(game, world, sim.Options{Seed: seed})
	require.NoError(t, err)
	return w
}

func scripted(frames int) ReplayData {
	data := CreateTestReplayData(frames, 300, 200)
	data.World = "arena"
	for i := range data.Frames {
		switch {
		case i < 2:
			data.Frames[i].MY = 1
		case i < 60:
			data.Frames[i].MX = 1
		default:
			data.Frames[i].MY = (i/20)%2*2 - 1
			data.Frames[i].A = i%12 == 0
		}
	}
	return data
}

func TestRun_ConsumesEveryFrame(t *testing.T) {
	data := scripted(120)
	r := NewReplayer(data)

	summary := Run(newArena(t, data.Seed), r)

	assert.Equal(t, 120, r.CurrentFrame())
	assert.Equal(t, 120, summary.Frames)
	assert.Equal(t, "Playing", summary.State)
}

func TestRun_Deterministic(t *testing.T) {
	data := scripted(400)

	first := Run(newArena(t, data.Seed), NewReplayer(data))
	second := Run(newArena(t, data.Seed), NewReplayer(data))

	assert.Equal(t, first, second)
}

func TestRun_PausedFramesDoNotAdvance(t *testing.T) {
	data := CreateTestReplayData(10, 0, 0)
	data.Frames[0].P = true

	summary := Run(newArena(t, 1), NewReplayer(data))

	assert.Equal(t, 0, summary.Frames)
	assert.Equal(t, "Paused", summary.State)
}
