package config

// WorldConfig is the root config for worlds/<name>.yaml.
// All rects and positions are in tiles.
type WorldConfig struct {
	Name        string       `yaml:"name"`
	TileSize    int          `yaml:"tileSize"`
	PlayerSpawn TilePos      `yaml:"playerSpawn"`
	Map         []string     `yaml:"map"` // '#' wall, anything else floor
	Rooms       []RoomConfig `yaml:"rooms"`
}

type TilePos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type TileRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type RoomConfig struct {
	ID             string            `yaml:"id"`
	Rect           TileRect          `yaml:"rect"`
	Doors          []TileRect        `yaml:"doors"`
	RequiredTokens int               `yaml:"requiredTokens"`
	Terminal       bool              `yaml:"terminal"`
	Wave           []WaveEntryConfig `yaml:"wave"`
}

type WaveEntryConfig struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

// Width returns the world width in tiles (widest map row)
func (w *WorldConfig) Width() int {
	n := 0
	for _, row := range w.Map {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Height returns the world height in tiles
func (w *WorldConfig) Height() int {
	return len(w.Map)
}
