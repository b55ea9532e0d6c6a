package entity

// Sound identifies a fire-and-forget sound cue raised by the simulation
type Sound int

const (
	SoundFootstep Sound = iota
	SoundSwing
	SoundHit
	SoundEnemyDeath
	SoundPlayerHurt
	SoundShoot
	SoundDoorClose
	SoundDoorOpen
	SoundCombatStart
	SoundToken
	SoundDenied
	soundCount
)

var soundNames = [...]string{
	SoundFootstep:    "footstep",
	SoundSwing:       "swing",
	SoundHit:         "hit",
	SoundEnemyDeath:  "enemy_death",
	SoundPlayerHurt:  "player_hurt",
	SoundShoot:       "shoot",
	SoundDoorClose:   "door_close",
	SoundDoorOpen:    "door_open",
	SoundCombatStart: "combat_start",
	SoundToken:       "token",
	SoundDenied:      "denied",
}

func (s Sound) String() string {
	if s >= 0 && s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sounds returns every defined sound cue
func Sounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}
