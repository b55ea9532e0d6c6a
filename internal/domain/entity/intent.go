package entity

// Intent represents an action an enemy ability wants the world to perform
type Intent interface {
	isIntent()
}

// ShootIntent fires a projectile from (X, Y) along a unit direction
type ShootIntent struct {
	Source     EntityID
	X, Y       float64
	DirX, DirY float64
}

func (ShootIntent) isIntent() {}

// PulseIntent pushes the player away if within Radius of (X, Y)
type PulseIntent struct {
	Source EntityID
	X, Y   float64
	Radius float64
	Push   float64
	Damage int
}

func (PulseIntent) isIntent() {}

// SummonIntent spawns companions of Kind near (X, Y)
type SummonIntent struct {
	Source EntityID
	X, Y   float64
	Kind   Kind
	Count  int
}

func (SummonIntent) isIntent() {}
