// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/application/game"
	"github.com/younwookim/crypt/internal/application/replay"
	"github.com/younwookim/crypt/internal/application/scene"
	"github.com/younwookim/crypt/internal/application/sim"
	"github.com/younwookim/crypt/internal/application/state"
	"github.com/younwookim/crypt/internal/application/system"
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorWall        = color.RGBA{80, 80, 100, 255}
	colorDoorClosed  = color.RGBA{150, 100, 50, 255}
	colorDoorOpen    = color.RGBA{150, 100, 50, 70}
	colorRoomLocked  = color.RGBA{120, 30, 30, 40}
	colorRoomCleared = color.RGBA{30, 120, 60, 30}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorFlash       = color.RGBA{255, 255, 255, 200}
	colorSword       = color.RGBA{220, 220, 255, 180}
	colorProjectile  = color.RGBA{255, 100, 100, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{100, 200, 100, 255}
	colorEnemyHealth = color.RGBA{220, 60, 60, 255}
	colorToken       = color.RGBA{255, 215, 0, 255}

	colorEnemy = map[entity.Kind]color.RGBA{
		entity.KindBasic:    {200, 100, 100, 255},
		entity.KindFast:     {230, 160, 60, 255},
		entity.KindTank:     {140, 70, 70, 255},
		entity.KindRanged:   {180, 90, 200, 255},
		entity.KindBoss:     {230, 40, 40, 255},
		entity.KindSummoner: {90, 160, 210, 255},
	}
)

const volumeStep = 0.1

// InputSource supplies one input snapshot per frame
type InputSource interface {
	GetInput() system.InputState
}

// Playing is the main gameplay scene
type Playing struct {
	ctx      *game.Context
	log      logrus.FieldLogger
	config   *config.GameConfig
	worldCfg *config.WorldConfig
	world    *sim.World
	input    InputSource
	screenW  int
	screenH  int

	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay will be recorded.
func New(ctx *game.Context, cfg *config.GameConfig, worldCfg *config.WorldConfig, seed int64, recordPath string) (*Playing, error) {
	p := &Playing{
		ctx:            ctx,
		log:            ctx.Log.WithField("scene", "playing"),
		config:         cfg,
		worldCfg:       worldCfg,
		input:          system.NewInputSystem(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
	}
	if err := p.start(seed); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh world for seed and resets recording
func (p *Playing) start(seed int64) error {
	w, err := sim.New(p.config, p.worldCfg, sim.Options{
		Seed:  seed,
		Sound: p.ctx.Sound,
		Log:   p.ctx.Log,
	})
	if err != nil {
		return err
	}
	p.world = w
	p.seed = seed

	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed, w.Name)
		p.log.WithFields(logrus.Fields{
			"file":    p.recordFilename,
			"seed":    seed,
			"session": p.recorder.Session(),
		}).Info("recording enabled")
	}
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.handleSystemKeys()

	if p.world.State.Finished() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := p.start(p.seed + 1); err != nil {
				return nil, err
			}
			p.log.WithField("seed", p.seed).Info("run restarted")
		}
		return nil, nil
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.world.Step(input)

	if p.world.State.Finished() && p.recorder != nil {
		p.recorder.Finish(replay.Summarize(p.world))
		p.saveRecording()
	}

	return nil, nil
}

// handleSystemKeys reads keys that are not part of the recorded input
func (p *Playing) handleSystemKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		p.ctx.AdjustVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		p.ctx.AdjustVolume(volumeStep)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Warn("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"file":   filename,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawRooms(screen)
	p.drawTiles(screen)
	p.drawDoors(screen)
	p.drawEnemies(screen)
	p.drawProjectiles(screen)
	p.drawPlayer(screen)

	p.drawUI(screen)

	switch p.world.State {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	case state.StateVictory:
		p.drawVictoryOverlay(screen)
	}
}

// drawRect draws a world-space rect through the camera
func (p *Playing) drawRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	x, y := p.world.Camera.ToScreen(float64(r.X), float64(r.Y))
	ebitenutil.DrawRect(screen, x, y, float64(r.W), float64(r.H), c)
}

func (p *Playing) drawRooms(screen *ebiten.Image) {
	for _, room := range p.world.Rooms() {
		switch room.State {
		case entity.RoomTriggered, entity.RoomLocked:
			p.drawRect(screen, room.Rect, colorRoomLocked)
		case entity.RoomCleared:
			p.drawRect(screen, room.Rect, colorRoomCleared)
		}
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	grid := p.world.Grid
	cam := p.world.Camera
	size := grid.TileSize

	startX := cam.X / size
	startY := cam.Y / size
	endX := (cam.X+cam.Width)/size + 1
	endY := (cam.Y+cam.Height)/size + 1

	for ty := startY; ty <= endY && ty < grid.Height; ty++ {
		for tx := startX; tx <= endX && tx < grid.Width; tx++ {
			t := entity.Tile{X: tx, Y: ty}
			if !grid.IsBlocked(t) {
				continue
			}
			p.drawRect(screen, grid.TileRect(t), colorWall)
		}
	}
}

// drawDoors paints over the wall color of closed door tiles
func (p *Playing) drawDoors(screen *ebiten.Image) {
	for _, room := range p.world.Rooms() {
		for _, door := range room.Doors {
			c := colorDoorOpen
			if !door.Open {
				c = colorDoorClosed
			}
			p.drawRect(screen, door.Rect, c)
		}
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	for _, e := range p.world.Roster.All() {
		r := e.Rect()

		// Flash on hit
		var c color.Color = colorEnemy[e.Kind]
		if e.IsInvulnerable() {
			c = colorFlash
		}
		p.drawRect(screen, r, c)

		if e.Health < e.MaxHealth && e.MaxHealth > 0 {
			bar := entity.Rect{X: r.X, Y: r.Y - 5, W: r.W, H: 3}
			p.drawRect(screen, bar, colorHealthBG)
			bar.W = r.W * e.Health / e.MaxHealth
			p.drawRect(screen, bar, colorEnemyHealth)
		}
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	for _, proj := range p.world.Projectiles() {
		if !proj.Active {
			continue
		}
		p.drawRect(screen, proj.Rect(), colorProjectile)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.world.Player

	// Flash when invincible
	var c color.Color = colorPlayer
	if player.IsInvulnerable() && (player.Invuln/4)%2 == 0 {
		c = colorFlash
	}
	p.drawRect(screen, player.Rect(), c)

	if hitbox, ok := p.world.SwordHitbox(); ok {
		p.drawRect(screen, hitbox, colorSword)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.world.Player

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := 0.0
	if player.MaxHealth > 0 {
		healthRatio = max(float64(player.Health)/float64(player.MaxHealth), 0)
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	// Tokens, one pip each
	for i := 0; i < player.Tokens; i++ {
		ebitenutil.DrawRect(screen, barX+barW+10+float64(i)*10, barY+1, 8, 8, colorToken)
	}

	stats := fmt.Sprintf("HP %d/%d  Tokens %d  Kills %d  Enemies %d",
		player.Health, player.MaxHealth, player.Tokens, p.world.Stats.Kills, p.world.Roster.Len())
	ebitenutil.DebugPrintAt(screen, stats, 10, p.screenH-38)

	debugText := fmt.Sprintf("WASD: Move | LClick/Space: Attack | Esc/P: Pause | -/=: Volume %.0f%% | F%d",
		p.ctx.Volume*100, p.world.Frame)
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nRooms cleared: %d\nKills: %d\n\nPress R to restart",
		p.world.Stats.RoomsCleared, p.world.Stats.Kills)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-40)
}

func (p *Playing) drawVictoryOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 60, 30, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("VICTORY\n\nFrames: %d\nKills: %d\nDamage taken: %d\n\nPress R to play again",
		p.world.Frame, p.world.Stats.Kills, p.world.Stats.DamageTaken)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-45)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithField("world", p.world.Name).Debug("enter")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Finish(replay.Summarize(p.world))
	}
	p.saveRecording()
}

// World returns the running simulation
func (p *Playing) World() *sim.World {
	return p.world
}
