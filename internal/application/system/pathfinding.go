package system

import (
	"container/heap"
	"math"

	"github.com/younwookim/crypt/internal/domain/entity"
)

// Heuristic estimates the remaining cost between two tiles
type Heuristic func(a, b entity.Tile) float64

// Euclidean is the straight-line distance. It is the default.
func Euclidean(a, b entity.Tile) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Manhattan is the 4-connected step distance
func Manhattan(a, b entity.Tile) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// HeuristicByName maps a config name to a heuristic, defaulting to Euclidean
func HeuristicByName(name string) Heuristic {
	if name == "manhattan" {
		return Manhattan
	}
	return Euclidean
}

var neighbors = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FindPath runs A* from start to goal with the Euclidean heuristic.
// The path excludes start and includes goal. An empty result means no route
// (or start == goal).
func FindPath(start, goal entity.Tile, grid *entity.Grid) []entity.Tile {
	return FindPathWith(start, goal, grid, Euclidean)
}

// FindPathWith runs A* with a caller-supplied heuristic
func FindPathWith(start, goal entity.Tile, grid *entity.Grid, h Heuristic) []entity.Tile {
	if start == goal {
		return nil
	}

	open := &openList{}
	var seq uint64
	push := func(t entity.Tile, g int) {
		heap.Push(open, &openNode{tile: t, g: g, f: float64(g) + h(t, goal), seq: seq})
		seq++
	}

	cameFrom := make(map[entity.Tile]entity.Tile)
	gScore := map[entity.Tile]int{start: 0}
	closed := make(map[entity.Tile]struct{})

	push(start, 0)
	for open.Len() > 0 {
		cur := heap.Pop(open).(*openNode)
		if _, done := closed[cur.tile]; done {
			continue
		}
		if cur.tile == goal {
			return reconstruct(cameFrom, start, goal)
		}
		closed[cur.tile] = struct{}{}

		for _, d := range neighbors {
			next := cur.tile.Add(d[0], d[1])
			if !grid.Walkable(next) {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}
			g := cur.g + 1
			if old, seen := gScore[next]; seen && g >= old {
				continue
			}
			gScore[next] = g
			cameFrom[next] = cur.tile
			push(next, g)
		}
	}
	return nil
}

func reconstruct(cameFrom map[entity.Tile]entity.Tile, start, goal entity.Tile) []entity.Tile {
	path := []entity.Tile{goal}
	for cur := goal; ; {
		prev := cameFrom[cur]
		if prev == start {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type openNode struct {
	tile entity.Tile
	g    int
	f    float64
	seq  uint64 // insertion order; equal f pops first-in first-out
}

// openList is a min-heap on (f, seq)
type openList []*openNode

func (o openList) Len() int { return len(o) }

func (o openList) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openList) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openList) Push(x any) { *o = append(*o, x.(*openNode)) }

func (o *openList) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
