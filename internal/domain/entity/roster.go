package entity

// Roster is the ordered set of active enemies.
// Iteration order is spawn order, which keeps simulation deterministic.
type Roster struct {
	enemies []*Enemy
	nextID  EntityID
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{enemies: make([]*Enemy, 0, 32), nextID: 1}
}

// NextID reserves a fresh entity ID
func (r *Roster) NextID() EntityID {
	id := r.nextID
	r.nextID++
	return id
}

// Add appends an enemy
func (r *Roster) Add(e *Enemy) {
	r.enemies = append(r.enemies, e)
}

// Remove drops an enemy. Returns false if it was not present.
func (r *Roster) Remove(e *Enemy) bool {
	for i, cur := range r.enemies {
		if cur == e {
			r.enemies = append(r.enemies[:i], r.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the enemy is active
func (r *Roster) Contains(e *Enemy) bool {
	for _, cur := range r.enemies {
		if cur == e {
			return true
		}
	}
	return false
}

// All returns a snapshot safe to iterate while removing
func (r *Roster) All() []*Enemy {
	out := make([]*Enemy, len(r.enemies))
	copy(out, r.enemies)
	return out
}

// Len returns the number of active enemies
func (r *Roster) Len() int {
	return len(r.enemies)
}

// CountInRoom returns the number of active enemies tagged with roomID
func (r *Roster) CountInRoom(roomID string) int {
	n := 0
	for _, e := range r.enemies {
		if e.RoomID == roomID {
			n++
		}
	}
	return n
}

// Clear removes every enemy
func (r *Roster) Clear() {
	r.enemies = r.enemies[:0]
}
