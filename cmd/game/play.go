package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/younwookim/crypt/internal/application/game"
	"github.com/younwookim/crypt/internal/application/scene/playing"
	"github.com/younwookim/crypt/internal/application/system"
	"github.com/younwookim/crypt/internal/infrastructure/audio"
)

var (
	flagWorld  string
	flagSeed   int64
	flagRecord string
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a world",
	Long: `Open the game window and play the selected world.

Controls:
  WASD/Arrows    - Move
  LClick/Space   - Swing toward the cursor
  Esc/P          - Pause
  -/=            - Volume
  F5             - Save recording now
  R/Enter        - Restart (after the run ends)

Examples:
  crypt play
  crypt play --world arena
  crypt play --seed 42 --record run.json
  crypt play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWorld, "world", "demo", "World to play")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	playCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Initial volume 0..1 (default: from game.json)")
}

func runPlay(cmd *cobra.Command, args []string) {
	log := newLogger()

	cfg, world, err := loadWorld(flagWorld)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sound system.SoundPlayer = audio.Nop{}
	if !flagMute && cfg.Audio.Enabled {
		player, err := audio.New(cfg.Audio, log)
		if err != nil {
			log.WithError(err).Warn("audio unavailable, continuing muted")
		} else {
			sound = player
		}
	}

	volume := cfg.Audio.Volume
	if flagVolume >= 0 {
		volume = flagVolume
	}
	ctx := game.NewContext(sound, volume, log)

	scene, err := playing.New(ctx, cfg, world, seed, flagRecord)
	if err != nil {
		log.WithError(err).Fatal("failed to build world")
	}
	g := game.New(ctx, scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	log.WithFields(logrus.Fields{
		"world": world.Name,
		"seed":  seed,
	}).Info("starting")

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("game loop stopped")
	}
	g.Shutdown()
}
