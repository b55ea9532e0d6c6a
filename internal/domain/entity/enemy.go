package entity

import (
	"fmt"
	"math"
)

// Kind is the enemy variant
type Kind int

const (
	KindBasic Kind = iota
	KindFast
	KindTank
	KindRanged
	KindBoss
	KindSummoner
)

var kindNames = map[Kind]string{
	KindBasic:    "basic",
	KindFast:     "fast",
	KindTank:     "tank",
	KindRanged:   "ranged",
	KindBoss:     "boss",
	KindSummoner: "summoner",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a config name to a Kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindBasic, fmt.Errorf("unknown enemy kind %q", name)
}

// KindStats are the per-kind base values an enemy spawns with
type KindStats struct {
	Health        int
	Speed         float64
	Size          int
	ContactDamage int
}

// Ability is a per-kind special behavior ticked once per frame.
// It returns nil when nothing happens this frame.
type Ability interface {
	Update(self *Enemy, targetX, targetY float64) Intent
}

// Enemy represents an enemy entity
type Enemy struct {
	Body
	ID            EntityID
	Kind          Kind
	Speed         float64
	ContactDamage int
	RoomID        string

	// Path cache
	Path           []Tile
	PathIndex      int
	PathCooldown   int
	LastTargetTile Tile
	HasLastTarget  bool

	Ability Ability
}

// NewEnemy creates an enemy with its center at (cx, cy)
func NewEnemy(id EntityID, kind Kind, cx, cy float64, stats KindStats) *Enemy {
	e := &Enemy{
		Body: Body{
			W:         stats.Size,
			H:         stats.Size,
			Health:    stats.Health,
			MaxHealth: stats.Health,
		},
		ID:            id,
		Kind:          kind,
		Speed:         stats.Speed,
		ContactDamage: stats.ContactDamage,
	}
	e.SetCenter(cx, cy)
	return e
}

// TakeDamage applies a hit. While invulnerable the hit is ignored entirely.
// Returns true if the enemy died from this hit.
func (e *Enemy) TakeDamage(amount int, kbX, kbY float64, invulnFrames int) bool {
	if e.IsInvulnerable() {
		return false
	}
	e.Health -= amount
	e.Invuln = invulnFrames
	e.KnockbackX += kbX
	e.KnockbackY += kbY
	return e.Health <= 0
}

// SetPath replaces the cached path and resets the cursor
func (e *Enemy) SetPath(path []Tile) {
	e.Path = path
	e.PathIndex = 0
}

// HasPath reports whether waypoints remain on the cached path
func (e *Enemy) HasPath() bool {
	return e.PathIndex < len(e.Path)
}

// Waypoint returns the current target tile of the path
func (e *Enemy) Waypoint() (Tile, bool) {
	if !e.HasPath() {
		return Tile{}, false
	}
	return e.Path[e.PathIndex], true
}

// TickPathCooldown counts the path recompute cooldown down by one frame
func (e *Enemy) TickPathCooldown() {
	if e.PathCooldown > 0 {
		e.PathCooldown--
	}
}

// RangedAbility fires a projectile at the target on a fixed cadence
type RangedAbility struct {
	Range    float64
	Interval int
	timer    int
}

// NewRangedAbility creates a ranged ability whose first shot comes after firstDelay frames
func NewRangedAbility(shootRange float64, firstDelay, interval int) *RangedAbility {
	return &RangedAbility{Range: shootRange, Interval: interval, timer: firstDelay}
}

func (a *RangedAbility) Update(self *Enemy, targetX, targetY float64) Intent {
	a.timer--
	if a.timer > 0 {
		return nil
	}
	a.timer = a.Interval

	cx, cy := self.Center()
	dx, dy := targetX-cx, targetY-cy
	if math.Hypot(dx, dy) > a.Range {
		return nil
	}
	nx, ny, ok := Normalize(dx, dy)
	if !ok {
		nx, ny = 0, -1
	}
	return ShootIntent{Source: self.ID, X: cx, Y: cy, DirX: nx, DirY: ny}
}

// PulseAbility emits an area pulse around the enemy on a fixed cadence
type PulseAbility struct {
	Radius   float64
	Push     float64
	Damage   int
	Interval int
	timer    int
}

// NewPulseAbility creates a pulse ability that first fires after interval frames
func NewPulseAbility(radius, push float64, damage, interval int) *PulseAbility {
	return &PulseAbility{Radius: radius, Push: push, Damage: damage, Interval: interval, timer: interval}
}

func (a *PulseAbility) Update(self *Enemy, _, _ float64) Intent {
	a.timer--
	if a.timer > 0 {
		return nil
	}
	a.timer = a.Interval
	cx, cy := self.Center()
	return PulseIntent{Source: self.ID, X: cx, Y: cy, Radius: a.Radius, Push: a.Push, Damage: a.Damage}
}

// SummonAbility spawns companions on a fixed cadence
type SummonAbility struct {
	Kind     Kind
	Count    int
	Interval int
	timer    int
}

// NewSummonAbility creates a summon ability that first fires after interval frames
func NewSummonAbility(kind Kind, count, interval int) *SummonAbility {
	return &SummonAbility{Kind: kind, Count: count, Interval: interval, timer: interval}
}

func (a *SummonAbility) Update(self *Enemy, _, _ float64) Intent {
	a.timer--
	if a.timer > 0 {
		return nil
	}
	a.timer = a.Interval
	cx, cy := self.Center()
	return SummonIntent{Source: self.ID, X: cx, Y: cy, Kind: a.Kind, Count: a.Count}
}
