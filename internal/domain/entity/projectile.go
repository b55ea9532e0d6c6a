package entity

// Projectile is an enemy shot travelling in a straight line
type Projectile struct {
	X, Y       float64 // center
	DirX, DirY float64
	Speed      float64
	Damage     int
	Life       int // frames left
	Size       int
	Active     bool
}

// NewProjectile creates a projectile centered at (x, y) moving along (dirX, dirY)
func NewProjectile(x, y, dirX, dirY, speed float64, damage, life, size int) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		DirX:   dirX,
		DirY:   dirY,
		Speed:  speed,
		Damage: damage,
		Life:   life,
		Size:   size,
		Active: true,
	}
}

// Step advances one frame. Returns false once the projectile has expired.
func (p *Projectile) Step() bool {
	if !p.Active {
		return false
	}
	p.X += p.DirX * p.Speed
	p.Y += p.DirY * p.Speed
	p.Life--
	if p.Life <= 0 {
		p.Active = false
	}
	return p.Active
}

// Rect returns the collision rect
func (p *Projectile) Rect() Rect {
	half := float64(p.Size) / 2
	return Rect{X: int(p.X - half), Y: int(p.Y - half), W: p.Size, H: p.Size}
}
