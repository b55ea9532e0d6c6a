package entity

// BlockedSet is the set of impassable tiles.
//
// Coverage is reference counted: a tile stays blocked while at least one
// static wall or closed door covers it. Every blocked tile also acts as a
// tile-sized wall collider, so the set doubles as the wall collider list.
type BlockedSet struct {
	counts map[Tile]int
}

// NewBlockedSet creates an empty blocked set
func NewBlockedSet() *BlockedSet {
	return &BlockedSet{counts: make(map[Tile]int)}
}

// AddWall marks a tile as covered by a static wall. Only world build calls this.
func (b *BlockedSet) AddWall(t Tile) {
	b.counts[t]++
}

// Contains reports whether the tile is blocked
func (b *BlockedSet) Contains(t Tile) bool {
	return b.counts[t] > 0
}

// Len returns the number of distinct blocked tiles
func (b *BlockedSet) Len() int {
	return len(b.counts)
}

func (b *BlockedSet) cover(tiles []Tile) {
	for _, t := range tiles {
		b.counts[t]++
	}
}

func (b *BlockedSet) uncover(tiles []Tile) {
	for _, t := range tiles {
		n := b.counts[t] - 1
		if n <= 0 {
			delete(b.counts, t)
			continue
		}
		b.counts[t] = n
	}
}

// Grid is the tile grid of a world
type Grid struct {
	Width    int // in tiles
	Height   int // in tiles
	TileSize int
	Blocked  *BlockedSet
}

// NewGrid creates an open grid
func NewGrid(width, height, tileSize int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Blocked:  NewBlockedSet(),
	}
}

// InBounds reports whether the tile lies inside the grid
func (g *Grid) InBounds(t Tile) bool {
	return t.X >= 0 && t.X < g.Width && t.Y >= 0 && t.Y < g.Height
}

// IsBlocked reports whether the tile is in the blocked set
func (g *Grid) IsBlocked(t Tile) bool {
	return g.Blocked.Contains(t)
}

// Walkable reports whether the tile is in bounds and not blocked
func (g *Grid) Walkable(t Tile) bool {
	return g.InBounds(t) && !g.Blocked.Contains(t)
}

// TileCenter returns the world position of a tile's center
func (g *Grid) TileCenter(t Tile) (float64, float64) {
	half := float64(g.TileSize) / 2
	return float64(t.X*g.TileSize) + half, float64(t.Y*g.TileSize) + half
}

// TileRect returns the world rect covered by a tile
func (g *Grid) TileRect(t Tile) Rect {
	return Rect{X: t.X * g.TileSize, Y: t.Y * g.TileSize, W: g.TileSize, H: g.TileSize}
}

// WorldRect returns the world bounds in pixels
func (g *Grid) WorldRect() Rect {
	return Rect{W: g.Width * g.TileSize, H: g.Height * g.TileSize}
}

// RectBlocked reports whether r overlaps any wall collider
func (g *Grid) RectBlocked(r Rect) bool {
	if r.Empty() {
		return false
	}
	x0, y0 := floorDiv(r.X, g.TileSize), floorDiv(r.Y, g.TileSize)
	x1, y1 := floorDiv(r.Right()-1, g.TileSize), floorDiv(r.Bottom()-1, g.TileSize)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if g.Blocked.Contains(Tile{X: tx, Y: ty}) {
				return true
			}
		}
	}
	return false
}

// TilesIn returns the tiles whose origin lies inside r, row-major
func (g *Grid) TilesIn(r Rect) []Tile {
	x0 := ceilDiv(r.X, g.TileSize)
	y0 := ceilDiv(r.Y, g.TileSize)
	x1 := ceilDiv(r.Right(), g.TileSize)
	y1 := ceilDiv(r.Bottom(), g.TileSize)
	tiles := make([]Tile, 0, max(0, (x1-x0)*(y1-y0)))
	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			tiles = append(tiles, Tile{X: tx, Y: ty})
		}
	}
	return tiles
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
