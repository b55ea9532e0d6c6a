package entity

// DoorTimerIdle is the timer value of a door with no pending close
const DoorTimerIdle = -1

// Door is a tile-aligned gate that blocks its tiles while closed
type Door struct {
	Rect  Rect
	Tiles []Tile
	Open  bool
	Timer int
}

// NewDoor creates an open door covering the tiles of rect
func NewDoor(rect Rect, tileSize int) *Door {
	tx0, ty0 := rect.X/tileSize, rect.Y/tileSize
	tw, th := rect.W/tileSize, rect.H/tileSize
	tiles := make([]Tile, 0, tw*th)
	for dy := 0; dy < th; dy++ {
		for dx := 0; dx < tw; dx++ {
			tiles = append(tiles, Tile{X: tx0 + dx, Y: ty0 + dy})
		}
	}
	return &Door{Rect: rect, Tiles: tiles, Open: true, Timer: DoorTimerIdle}
}

// StartTimer schedules a close after frames. Ignored unless the door is open and idle.
func (d *Door) StartTimer(frames int) bool {
	if !d.Open || d.Timer != DoorTimerIdle {
		return false
	}
	d.Timer = frames
	return true
}

// Tick advances the close timer. Returns true on the frame the door closes.
func (d *Door) Tick(blocked *BlockedSet) bool {
	if d.Timer <= 0 {
		return false
	}
	d.Timer--
	if d.Timer > 0 {
		return false
	}
	d.Close(blocked)
	d.Timer = DoorTimerIdle
	return true
}

// Close blocks the door's tiles
func (d *Door) Close(blocked *BlockedSet) {
	if !d.Open {
		return
	}
	d.Open = false
	blocked.cover(d.Tiles)
}

// OpenDoor unblocks the door's tiles and cancels any pending close
func (d *Door) OpenDoor(blocked *BlockedSet) {
	if d.Open {
		d.Timer = DoorTimerIdle
		return
	}
	d.Open = true
	d.Timer = DoorTimerIdle
	blocked.uncover(d.Tiles)
}
