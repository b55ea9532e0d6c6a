package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/crypt/internal/domain/entity"
	"github.com/younwookim/crypt/internal/infrastructure/config"
)

var (
	// ErrInvalidLayout is returned for a world config that cannot be built
	ErrInvalidLayout = errors.New("invalid world layout")
	// ErrNoFreeTile is returned when no tile can hold the player
	ErrNoFreeTile = errors.New("no free tile for player spawn")
)

// Layout is a built world: grid with walls, rooms with their doors and the player spawn
type Layout struct {
	Name   string
	Grid   *entity.Grid
	Rooms  []*entity.Room
	SpawnX float64 // player center
	SpawnY float64
}

// BuildLayout converts a WorldConfig into a grid and rooms.
// Every error wraps ErrInvalidLayout or ErrNoFreeTile.
func BuildLayout(game *config.GameConfig, world *config.WorldConfig) (*Layout, error) {
	ts := world.TileSize
	if ts <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidLayout, ts)
	}
	w, h := world.Width(), world.Height()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrInvalidLayout)
	}

	grid := entity.NewGrid(w, h, ts)
	for y, row := range world.Map {
		for x, c := range row {
			if c == '#' {
				grid.Blocked.AddWall(entity.Tile{X: x, Y: y})
			}
		}
	}

	rooms := make([]*entity.Room, 0, len(world.Rooms))
	seen := make(map[string]bool, len(world.Rooms))
	for i, rc := range world.Rooms {
		if rc.ID == "" {
			return nil, fmt.Errorf("%w: room %d has no id", ErrInvalidLayout, i)
		}
		if seen[rc.ID] {
			return nil, fmt.Errorf("%w: duplicate room %q", ErrInvalidLayout, rc.ID)
		}
		seen[rc.ID] = true

		room, err := buildRoom(game, grid, rc)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	spawn, err := findSpawn(grid, entity.Tile{X: world.PlayerSpawn.X, Y: world.PlayerSpawn.Y}, game.Player.Size)
	if err != nil {
		return nil, err
	}
	sx, sy := grid.TileCenter(spawn)

	return &Layout{
		Name:   world.Name,
		Grid:   grid,
		Rooms:  rooms,
		SpawnX: sx,
		SpawnY: sy,
	}, nil
}

func buildRoom(game *config.GameConfig, grid *entity.Grid, rc config.RoomConfig) (*entity.Room, error) {
	rect, err := pixelRect(grid, rc.Rect)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", rc.ID, err)
	}

	doors := make([]*entity.Door, 0, len(rc.Doors))
	for _, dc := range rc.Doors {
		dr, err := pixelRect(grid, dc)
		if err != nil {
			return nil, fmt.Errorf("room %q door: %w", rc.ID, err)
		}
		doors = append(doors, entity.NewDoor(dr, grid.TileSize))
	}

	room := entity.NewRoom(rc.ID, rect, doors, grid.TilesIn(rect))
	room.RequiredTokens = rc.RequiredTokens
	room.Terminal = rc.Terminal

	for _, wc := range rc.Wave {
		kind, err := entity.ParseKind(wc.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: room %q: %w", ErrInvalidLayout, rc.ID, err)
		}
		if wc.Count < 0 {
			return nil, fmt.Errorf("%w: room %q: negative count for %s", ErrInvalidLayout, rc.ID, wc.Kind)
		}
		room.Wave = append(room.Wave, entity.WaveEntry{Kind: kind, Count: wc.Count})
	}
	if len(room.Wave) == 0 {
		room.Wave = []entity.WaveEntry{{Kind: entity.KindBasic, Count: game.Rooms.DefaultWaveSize}}
	}
	return room, nil
}

// pixelRect converts a tile rect to world pixels, rejecting empty or out-of-bounds rects
func pixelRect(grid *entity.Grid, tr config.TileRect) (entity.Rect, error) {
	if tr.W <= 0 || tr.H <= 0 {
		return entity.Rect{}, fmt.Errorf("%w: empty rect %+v", ErrInvalidLayout, tr)
	}
	if !grid.InBounds(entity.Tile{X: tr.X, Y: tr.Y}) || !grid.InBounds(entity.Tile{X: tr.X + tr.W - 1, Y: tr.Y + tr.H - 1}) {
		return entity.Rect{}, fmt.Errorf("%w: rect %+v outside %dx%d map", ErrInvalidLayout, tr, grid.Width, grid.Height)
	}
	ts := grid.TileSize
	return entity.Rect{X: tr.X * ts, Y: tr.Y * ts, W: tr.W * ts, H: tr.H * ts}, nil
}

// findSpawn returns want if a player of the given size fits centered on it,
// otherwise the first such tile in row-major order
func findSpawn(grid *entity.Grid, want entity.Tile, size int) (entity.Tile, error) {
	fits := func(t entity.Tile) bool {
		if !grid.Walkable(t) {
			return false
		}
		cx, cy := grid.TileCenter(t)
		r := entity.Rect{X: int(cx) - size/2, Y: int(cy) - size/2, W: size, H: size}
		world := grid.WorldRect()
		if r.X < world.X || r.Y < world.Y || r.Right() > world.Right() || r.Bottom() > world.Bottom() {
			return false
		}
		return !grid.RectBlocked(r)
	}

	if fits(want) {
		return want, nil
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if t := (entity.Tile{X: x, Y: y}); fits(t) {
				return t, nil
			}
		}
	}
	return entity.Tile{}, ErrNoFreeTile
}
