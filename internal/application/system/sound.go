package system

import "github.com/younwookim/crypt/internal/domain/entity"

// SoundPlayer receives fire-and-forget sound cues. Implementations must not block.
type SoundPlayer interface {
	Play(s entity.Sound)
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(entity.Sound) {}
