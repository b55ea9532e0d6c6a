package system

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

// CombatSystem handles the melee swing, contact damage and enemy projectiles
type CombatSystem struct {
	config      *config.GameConfig
	grid        *entity.Grid
	roster      *entity.Roster
	motion      *MotionSystem
	sound       SoundPlayer
	log         logrus.FieldLogger
	projectiles []*entity.Projectile

	// Event callbacks
	OnEnemyKilled func(e *entity.Enemy)
	OnPlayerHurt  func(amount int)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, grid *entity.Grid, roster *entity.Roster, motion *MotionSystem, sound SoundPlayer, log logrus.FieldLogger) *CombatSystem {
	return &CombatSystem{
		config:      cfg,
		grid:        grid,
		roster:      roster,
		motion:      motion,
		sound:       sound,
		log:         log,
		projectiles: make([]*entity.Projectile, 0, 32),
	}
}

// TryStartAttack begins a swing if the player is idle with no cooldown left
func (s *CombatSystem) TryStartAttack(p *entity.Player) bool {
	if !p.CanStartAttack() {
		return false
	}
	p.Attack = entity.AttackSwinging
	p.SwingTimer = s.config.Combat.SwingFrames
	s.sound.Play(entity.SoundSwing)
	return true
}

// TickAttackCooldown advances the post-swing cooldown by one frame
func (s *CombatSystem) TickAttackCooldown(p *entity.Player) {
	if p.Attack != entity.AttackCooldown {
		return
	}
	if p.AttackCooldownTimer > 0 {
		p.AttackCooldownTimer--
	}
	if p.AttackCooldownTimer == 0 {
		p.Attack = entity.AttackIdle
	}
}

// SwordHitbox returns the hitbox for the current swing frame aimed at (aimX, aimY).
// ok is false when the player is not swinging or the hitbox touches a wall.
func (s *CombatSystem) SwordHitbox(p *entity.Player, aimX, aimY float64) (entity.Rect, bool) {
	if p.Attack != entity.AttackSwinging {
		return entity.Rect{}, false
	}
	c := s.config.Combat

	px, py := p.Center()
	dirX, dirY, ok := entity.Normalize(aimX-px, aimY-py)
	if !ok {
		dirX, dirY = 1, 0
	}

	duration := float64(c.SwingFrames)
	t := (duration - float64(p.SwingTimer)) / duration
	arc := c.ArcDeg * math.Pi / 180
	angle := math.Atan2(dirY, dirX) + (t-0.5)*arc

	hitbox := swingRect(px, py, angle, c.Reach, c.HitboxLength, c.HitboxThickness)
	if s.grid.RectBlocked(hitbox) {
		return entity.Rect{}, false
	}
	return hitbox, true
}

// swingRect places a length x thickness rect at reach along angle,
// long side horizontal when the angle is closer to horizontal
func swingRect(px, py, angle, reach float64, length, thickness int) entity.Rect {
	cos, sin := math.Cos(angle), math.Sin(angle)
	cx := px + cos*reach
	cy := py + sin*reach
	if math.Abs(cos) > math.Abs(sin) {
		return entity.Rect{X: int(cx) - length/2, Y: int(cy) - thickness/2, W: length, H: thickness}
	}
	return entity.Rect{X: int(cx) - thickness/2, Y: int(cy) - length/2, W: thickness, H: length}
}

// UpdateSwing resolves one active swing frame and advances the swing timer.
// Returns the number of enemies hit this frame.
func (s *CombatSystem) UpdateSwing(p *entity.Player, aimX, aimY float64) int {
	if p.Attack != entity.AttackSwinging {
		return 0
	}

	hits := 0
	if hitbox, ok := s.SwordHitbox(p, aimX, aimY); ok {
		hits = s.Resolve(p, hitbox)
	}

	p.SwingTimer--
	if p.SwingTimer <= 0 {
		p.SwingTimer = 0
		p.Attack = entity.AttackCooldown
		p.AttackCooldownTimer = s.config.Combat.CooldownFrames
		if p.AttackCooldownTimer == 0 {
			p.Attack = entity.AttackIdle
		}
	}
	return hits
}

// Resolve applies the swing hitbox to every overlapped enemy.
// Dead enemies leave the roster immediately.
func (s *CombatSystem) Resolve(p *entity.Player, hitbox entity.Rect) int {
	c := s.config.Combat
	px, py := p.Center()
	hits := 0

	for _, e := range s.roster.All() {
		if !hitbox.Overlaps(e.Rect()) {
			continue
		}
		if e.IsInvulnerable() {
			continue
		}
		ex, ey := e.Center()
		kx, ky, ok := entity.Normalize(ex-px, ey-py)
		if !ok {
			kx, ky = 0, -1
		}
		hits++
		s.sound.Play(entity.SoundHit)

		if e.TakeDamage(c.Damage, kx*c.Knockback, ky*c.Knockback, c.EnemyInvulnFrames) {
			s.roster.Remove(e)
			s.sound.Play(entity.SoundEnemyDeath)
			s.log.WithFields(logrus.Fields{"enemy": e.ID, "kind": e.Kind.String(), "room": e.RoomID}).Debug("enemy killed")
			if s.OnEnemyKilled != nil {
				s.OnEnemyKilled(e)
			}
		}
	}
	return hits
}

// ContactDamage hurts the player when touching an enemy or projectile.
// Touching projectiles are consumed even while the player is invulnerable.
func (s *CombatSystem) ContactDamage(p *entity.Player) {
	reach := s.config.Combat.ContactMargin
	pr := p.Rect()
	touch := entity.Rect{X: pr.X - reach, Y: pr.Y - reach, W: pr.W + 2*reach, H: pr.H + 2*reach}

	for _, proj := range s.projectiles {
		if proj.Active && pr.Overlaps(proj.Rect()) {
			proj.Active = false
			s.hurt(p, proj.Damage)
		}
	}
	s.sweep()

	for _, e := range s.roster.All() {
		if touch.Overlaps(e.Rect()) {
			s.hurt(p, e.ContactDamage)
			break
		}
	}
}

func (s *CombatSystem) hurt(p *entity.Player, amount int) {
	if !p.TakeDamage(amount, s.config.Player.InvulnFrames) {
		return
	}
	s.sound.Play(entity.SoundPlayerHurt)
	if s.OnPlayerHurt != nil {
		s.OnPlayerHurt(amount)
	}
}

// Fire spawns an enemy projectile for a shoot intent
func (s *CombatSystem) Fire(in entity.ShootIntent) {
	pc := s.config.Projectile
	s.projectiles = append(s.projectiles,
		entity.NewProjectile(in.X, in.Y, in.DirX, in.DirY, pc.Speed, pc.Damage, pc.LifeFrames, pc.Size))
	s.sound.Play(entity.SoundShoot)
}

// Pulse damages and pushes the player when inside the pulse radius
func (s *CombatSystem) Pulse(p *entity.Player, in entity.PulseIntent) bool {
	px, py := p.Center()
	dx, dy := px-in.X, py-in.Y
	if math.Hypot(dx, dy) > in.Radius {
		return false
	}
	nx, ny, ok := entity.Normalize(dx, dy)
	if !ok {
		nx, ny = 0, -1
	}
	s.hurt(p, in.Damage)
	s.motion.Push(&p.Body, nx*in.Push, ny*in.Push)
	return true
}

// UpdateProjectiles moves every projectile and drops expired or wall-hit ones
func (s *CombatSystem) UpdateProjectiles() {
	for _, proj := range s.projectiles {
		proj.Step()
		if proj.Active && s.grid.RectBlocked(proj.Rect()) {
			proj.Active = false
		}
	}
	s.sweep()
}

func (s *CombatSystem) sweep() {
	alive := s.projectiles[:0]
	for _, proj := range s.projectiles {
		if proj.Active {
			alive = append(alive, proj)
		}
	}
	for i := len(alive); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = alive
}

// Projectiles returns the live projectiles
func (s *CombatSystem) Projectiles() []*entity.Projectile {
	return s.projectiles
}
