package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/crypt/internal/application/replay"
	"github.com/younwookim/crypt/internal/application/sim"
	"github.com/younwookim/crypt/internal/infrastructure/logger"
)

func TestLoadWorld_Embedded(t *testing.T) {
	cfg, world, err := loadWorld("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", world.Name)
	assert.Positive(t, cfg.Display.ScreenWidth)
	assert.NotEmpty(t, world.Rooms)
}

func TestLoadWorld_ConfigDir(t *testing.T) {
	flagConfigDir = "configs"
	t.Cleanup(func() { flagConfigDir = "" })

	_, world, err := loadWorld("arena")
	require.NoError(t, err)
	assert.Equal(t, "arena", world.Name)
}

func TestLoadWorld_Unknown(t *testing.T) {
	_, _, err := loadWorld("nowhere")
	assert.Error(t, err)
}

func TestListWorlds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listWorlds(&out))

	assert.Contains(t, out.String(), "arena")
	assert.Contains(t, out.String(), "demo")
}

// writeRecording simulates a short arena run and stores it with its outcome
func writeRecording(t *testing.T, mutate func(*replay.ReplayData)) string {
	t.Helper()
	data := replay.CreateTestReplayData(90, 320, 240)
	data.World = "arena"
	for i := range data.Frames {
		if i < 2 {
			data.Frames[i].MY = 1
		} else {
			data.Frames[i].MX = 1
		}
	}

	cfg, world, err := loadWorld(data.World)
	require.NoError(t, err)
	w, err := sim.New(cfg, world, sim.Options{Seed: data.Seed})
	require.NoError(t, err)
	summary := replay.Run(w, replay.NewReplayer(data))
	data.Summary = &summary

	if mutate != nil {
		mutate(&data)
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestRunReplay(t *testing.T) {
	path := writeRecording(t, nil)

	var out bytes.Buffer
	err := runReplay(&out, path, true, logger.Discard())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "World:         arena")
	assert.Contains(t, out.String(), "Frames:        90")
	assert.Contains(t, out.String(), "Result:        Playing")
}

func TestRunReplay_Mismatch(t *testing.T) {
	path := writeRecording(t, func(d *replay.ReplayData) { d.Summary.Kills++ })

	var out bytes.Buffer
	err := runReplay(&out, path, true, logger.Discard())
	assert.ErrorIs(t, err, ErrReplayMismatch)

	out.Reset()
	assert.NoError(t, runReplay(&out, path, false, logger.Discard()), "verification can be skipped")
}

func TestRunReplay_UnknownWorld(t *testing.T) {
	path := writeRecording(t, func(d *replay.ReplayData) { d.World = "nowhere" })

	err := runReplay(&bytes.Buffer{}, path, true, logger.Discard())
	assert.Error(t, err)
}

func TestRunReplay_MissingFile(t *testing.T) {
	err := runReplay(&bytes.Buffer{}, filepath.Join(t.TempDir(), "none.json"), true, logger.Discard())
	assert.Error(t, err)
}
