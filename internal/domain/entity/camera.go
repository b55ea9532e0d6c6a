package entity

// Camera is a screen-sized viewport clamped to the world
type Camera struct {
	X, Y          int
	Width, Height int
	worldW        int
	worldH        int
}

// NewCamera creates a camera for a screen of the given size
func NewCamera(screenW, screenH, worldW, worldH int) *Camera {
	return &Camera{Width: screenW, Height: screenH, worldW: worldW, worldH: worldH}
}

// CenterOn centers the viewport on rect, clamped to the world bounds
func (c *Camera) CenterOn(rect Rect) {
	cx, cy := rect.Center()
	x := int(cx) - c.Width/2
	y := int(cy) - c.Height/2
	c.X = clampInt(x, 0, max(0, c.worldW-c.Width))
	c.Y = clampInt(y, 0, max(0, c.worldH-c.Height))
}

// ToWorld converts a screen position to world coordinates
func (c *Camera) ToWorld(sx, sy int) (float64, float64) {
	return float64(sx + c.X), float64(sy + c.Y)
}

// ToScreen converts a world position to screen coordinates
func (c *Camera) ToScreen(wx, wy float64) (float64, float64) {
	return wx - float64(c.X), wy - float64(c.Y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
