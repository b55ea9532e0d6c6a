package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Tile is an integer grid coordinate
type Tile struct {
	X, Y int
}

// Add returns the tile offset by (dx, dy)
func (t Tile) Add(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// WorldToTile converts a world position to the tile containing it.
// Uses floor division so negative coordinates map to negative tiles.
func WorldToTile(x, y float64, tileSize int) Tile {
	ts := float64(tileSize)
	return Tile{
		X: int(math.Floor(x / ts)),
		Y: int(math.Floor(y / ts)),
	}
}

// Rect is an integer axis-aligned rectangle in world pixels
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports strict overlap. Rects sharing only an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Center returns the rect center in world coordinates
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Normalize returns the unit vector of (dx, dy).
// ok is false when the vector has zero length.
func Normalize(dx, dy float64) (nx, ny float64, ok bool) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0, false
	}
	return dx / l, dy / l, true
}
