package entity

// RoomState is the lifecycle of a gated room
type RoomState int

const (
	RoomUntriggered RoomState = iota
	RoomTriggered             // entered, doors closing
	RoomLocked                // doors closed, wave spawned
	RoomCleared
)

func (s RoomState) String() string {
	switch s {
	case RoomUntriggered:
		return "Untriggered"
	case RoomTriggered:
		return "Triggered"
	case RoomLocked:
		return "Locked"
	case RoomCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// WaveEntry is one line of a room's wave composition
type WaveEntry struct {
	Kind  Kind
	Count int
}

// Room is a rectangular trigger region gating a wave of enemies
type Room struct {
	ID             string
	Rect           Rect
	Doors          []*Door
	Tiles          []Tile
	State          RoomState
	RequiredTokens int
	Terminal       bool
	Wave           []WaveEntry

	WaveSpawned bool
	Rewarded    bool
	denied      bool
}

// NewRoom creates an untriggered room
func NewRoom(id string, rect Rect, doors []*Door, tiles []Tile) *Room {
	return &Room{ID: id, Rect: rect, Doors: doors, Tiles: tiles}
}

// Triggered reports whether the player has entered at least once
func (r *Room) Triggered() bool {
	return r.State != RoomUntriggered
}

// Cleared reports whether the wave was defeated
func (r *Room) Cleared() bool {
	return r.State == RoomCleared
}

// Contains reports whether rect intersects the room
func (r *Room) Contains(rect Rect) bool {
	return r.Rect.Overlaps(rect)
}

// WaveSize returns the total number of enemies in the wave
func (r *Room) WaveSize() int {
	n := 0
	for _, w := range r.Wave {
		n += w.Count
	}
	return n
}

// FirstDoorClosed reports whether spawning may begin.
// Rooms with no doors are considered closed immediately.
func (r *Room) FirstDoorClosed() bool {
	if len(r.Doors) == 0 {
		return true
	}
	return !r.Doors[0].Open
}

// MarkDenied records an entry denial. Returns true only on the first frame of a denial streak.
func (r *Room) MarkDenied(denied bool) bool {
	first := denied && !r.denied
	r.denied = denied
	return first
}
