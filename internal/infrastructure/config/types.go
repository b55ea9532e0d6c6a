package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig          `json:"display"`
	Player     PlayerConfig           `json:"player"`
	Combat     CombatConfig           `json:"combat"`
	Pathing    PathingConfig          `json:"pathing"`
	Motion     MotionConfig           `json:"motion"`
	Enemies    map[string]EnemyConfig `json:"enemies"`
	Abilities  AbilitiesConfig        `json:"abilities"`
	Projectile ProjectileConfig       `json:"projectile"`
	Rooms      RoomsConfig            `json:"rooms"`
	Audio      AudioConfig            `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PlayerConfig struct {
	Size         int     `json:"size"`
	Speed        float64 `json:"speed"`
	MaxHealth    int     `json:"maxHealth"`
	InvulnFrames int     `json:"invulnFrames"` // after taking contact damage
}

// CombatConfig tunes the melee swing
type CombatConfig struct {
	SwingFrames       int     `json:"swingFrames"`
	ArcDeg            float64 `json:"arcDeg"` // total sweep, centered on the aim
	Reach             float64 `json:"reach"`
	HitboxLength      int     `json:"hitboxLength"`
	HitboxThickness   int     `json:"hitboxThickness"`
	Damage            int     `json:"damage"`
	Knockback         float64 `json:"knockback"`
	EnemyInvulnFrames int     `json:"enemyInvulnFrames"`
	CooldownFrames    int     `json:"cooldownFrames"`
	ContactMargin     int     `json:"contactMargin"` // pixels around the player that count as touching
}

type PathingConfig struct {
	CooldownFrames int     `json:"cooldownFrames"`
	WaypointRadius float64 `json:"waypointRadius"`
	Heuristic      string  `json:"heuristic"` // "euclidean" or "manhattan"
}

type MotionConfig struct {
	KnockbackDecay float64 `json:"knockbackDecay"`
}

type EnemyConfig struct {
	Health        int     `json:"health"`
	Speed         float64 `json:"speed"`
	Size          int     `json:"size"`
	ContactDamage int     `json:"contactDamage"`
}

type AbilitiesConfig struct {
	Ranged RangedAbilityConfig `json:"ranged"`
	Pulse  PulseAbilityConfig  `json:"pulse"`
	Summon SummonAbilityConfig `json:"summon"`
}

type RangedAbilityConfig struct {
	RangeTiles int `json:"rangeTiles"`
	FirstDelay int `json:"firstDelay"`
	Interval   int `json:"interval"`
}

type PulseAbilityConfig struct {
	Radius   float64 `json:"radius"`
	Push     float64 `json:"push"`
	Damage   int     `json:"damage"`
	Interval int     `json:"interval"`
}

type SummonAbilityConfig struct {
	Kind     string `json:"kind"`
	Count    int    `json:"count"`
	Interval int    `json:"interval"`
}

type ProjectileConfig struct {
	Speed      float64 `json:"speed"`
	Damage     int     `json:"damage"`
	LifeFrames int     `json:"lifeFrames"`
	Size       int     `json:"size"`
}

type RoomsConfig struct {
	DoorDelayFrames       int `json:"doorDelayFrames"`
	SpawnMinDistanceTiles int `json:"spawnMinDistanceTiles"`
	SpawnAttempts         int `json:"spawnAttempts"`
	DefaultWaveSize       int `json:"defaultWaveSize"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	Volume     float64 `json:"volume"` // 0..1
	SampleRate int     `json:"sampleRate"`
	QueueSize  int     `json:"queueSize"`
}

// Enemy returns the stats for a kind name, falling back to "basic"
func (c *GameConfig) Enemy(kind string) EnemyConfig {
	if e, ok := c.Enemies[kind]; ok {
		return e
	}
	return c.Enemies["basic"]
}
