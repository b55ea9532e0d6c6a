package config

// Default returns the built-in tuning. game.json overrides any field it sets.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    60,
			Title:        "Crypt",
		},
		Player: PlayerConfig{
			Size:         48,
			Speed:        5,
			MaxHealth:    10,
			InvulnFrames: 60,
		},
		Combat: CombatConfig{
			SwingFrames:       8,
			ArcDeg:            30,
			Reach:             28,
			HitboxLength:      24,
			HitboxThickness:   12,
			Damage:            1,
			Knockback:         6,
			EnemyInvulnFrames: 12,
			CooldownFrames:    4,
			ContactMargin:     4,
		},
		Pathing: PathingConfig{
			CooldownFrames: 12,
			WaypointRadius: 4,
			Heuristic:      "euclidean",
		},
		Motion: MotionConfig{
			KnockbackDecay: 0.8,
		},
		Enemies: map[string]EnemyConfig{
			"basic":    {Health: 2, Speed: 2, Size: 20, ContactDamage: 1},
			"fast":     {Health: 1, Speed: 3, Size: 15, ContactDamage: 1},
			"tank":     {Health: 5, Speed: 2, Size: 40, ContactDamage: 1},
			"ranged":   {Health: 3, Speed: 2, Size: 20, ContactDamage: 1},
			"boss":     {Health: 20, Speed: 1.5, Size: 56, ContactDamage: 2},
			"summoner": {Health: 2, Speed: 2, Size: 20, ContactDamage: 1},
		},
		Abilities: AbilitiesConfig{
			Ranged: RangedAbilityConfig{RangeTiles: 5, FirstDelay: 120, Interval: 180},
			Pulse:  PulseAbilityConfig{Radius: 80, Push: 10, Damage: 1, Interval: 180},
			Summon: SummonAbilityConfig{Kind: "basic", Count: 1, Interval: 180},
		},
		Projectile: ProjectileConfig{
			Speed:      3,
			Damage:     1,
			LifeFrames: 180,
			Size:       6,
		},
		Rooms: RoomsConfig{
			DoorDelayFrames:       60,
			SpawnMinDistanceTiles: 4,
			SpawnAttempts:         1000,
			DefaultWaveSize:       10,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
			QueueSize:  32,
		},
	}
}
