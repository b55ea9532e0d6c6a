package entity

// KnockbackEpsilon is the magnitude at or below which a knockback axis is zeroed
const KnockbackEpsilon = 0.01

// Body represents the physical body of an actor.
// X, Y (top-left, float) are authoritative; the integer rect is derived by truncation.
type Body struct {
	X, Y float64
	W, H int

	KnockbackX, KnockbackY float64

	Health    int
	MaxHealth int
	Invuln    int // frames of invulnerability left
}

// Rect returns the integer collision rect
func (b *Body) Rect() Rect {
	return Rect{X: int(b.X), Y: int(b.Y), W: b.W, H: b.H}
}

// Center returns the body center in world coordinates
func (b *Body) Center() (float64, float64) {
	return b.X + float64(b.W)/2, b.Y + float64(b.H)/2
}

// SetCenter places the body so its center is at (cx, cy)
func (b *Body) SetCenter(cx, cy float64) {
	b.X = cx - float64(b.W)/2
	b.Y = cy - float64(b.H)/2
}

// Position returns the authoritative position
func (b *Body) Position() (float64, float64) {
	return b.X, b.Y
}

// SetPosition sets the authoritative position
func (b *Body) SetPosition(x, y float64) {
	b.X, b.Y = x, y
}

// HasKnockback reports whether either knockback axis is above epsilon
func (b *Body) HasKnockback() bool {
	return abs(b.KnockbackX) > KnockbackEpsilon || abs(b.KnockbackY) > KnockbackEpsilon
}

// ClearKnockback zeroes the knockback vector
func (b *Body) ClearKnockback() {
	b.KnockbackX, b.KnockbackY = 0, 0
}

// IsInvulnerable returns true while the invulnerability window is open
func (b *Body) IsInvulnerable() bool {
	return b.Invuln > 0
}

// TickInvuln counts the invulnerability window down by one frame
func (b *Body) TickInvuln() {
	if b.Invuln > 0 {
		b.Invuln--
	}
}

// IsAlive returns true while health is positive
func (b *Body) IsAlive() bool {
	return b.Health > 0
}

// AttackState is the melee state of the player
type AttackState int

const (
	AttackIdle AttackState = iota
	AttackSwinging
	AttackCooldown
)

func (s AttackState) String() string {
	switch s {
	case AttackIdle:
		return "Idle"
	case AttackSwinging:
		return "Swinging"
	case AttackCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// Player represents the player entity
type Player struct {
	Body
	Speed float64

	Attack              AttackState
	SwingTimer          int // frames of swing left
	AttackCooldownTimer int

	Tokens int
	Moving bool
}

// NewPlayer creates a player with its center at (cx, cy)
func NewPlayer(cx, cy float64, size int, speed float64, maxHealth int) *Player {
	p := &Player{
		Body: Body{
			W:         size,
			H:         size,
			Health:    maxHealth,
			MaxHealth: maxHealth,
		},
		Speed: speed,
	}
	p.SetCenter(cx, cy)
	return p
}

// TakeDamage applies contact damage unless invulnerable.
// Returns true if damage was applied.
func (p *Player) TakeDamage(amount, invulnFrames int) bool {
	if p.IsInvulnerable() || amount <= 0 {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invuln = invulnFrames
	return true
}

// CanStartAttack reports whether a new swing may begin
func (p *Player) CanStartAttack() bool {
	return p.Attack == AttackIdle && p.AttackCooldownTimer == 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
