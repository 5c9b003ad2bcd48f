package bfs

import (
	"github.com/zyedidia/generic/list"

	"github.com/katalvlaran/mazepath/maze"
)

// Breach describes the cheapest way to join the start to a target by
// opening walls.
//   - Outcome: NoStart without a start cell, EmptyPath when the grid holds
//     no Target at all, Found otherwise.
//   - Route:   the start→target cells of one cheapest route.
//   - Walls:   the Wall cells on Route, in route order.
//   - Reachable: how many cells the start reaches without breaking walls.
type Breach struct {
	Outcome   Outcome
	Route     Path
	Walls     []maze.Coord
	Reachable int
}

// MinBreaches finds the minimum number of Wall cells that must be opened to
// connect the start of g to any Target, and one route achieving it. A grid
// that Solve reports as Found yields zero walls.
//
// Behavior:
//  1. 0–1 BFS from the start cell:
//     • moving into a non-Wall cell → cost 0
//     • moving into a Wall cell     → cost 1
//  2. Stop when any Target is popped.
//  3. Reconstruct the route via predecessors.
//
// Complexity: O(dim²) time and memory.
func MinBreaches(g *maze.Grid) (*Breach, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, ok := maze.FindStart(g)
	if !ok {
		return &Breach{Outcome: NoStart}, nil
	}

	dim := g.Dim()
	index := func(c maze.Coord) int { return (c.Row-1)*dim + (c.Col - 1) }
	const inf = int(^uint(0) >> 1)
	dist := make([]int, dim*dim)
	prev := make([]maze.Coord, dim*dim)
	for i := range dist {
		dist[i] = inf
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New[maze.Coord]()
	dist[index(start)] = 0
	dq.PushFront(start)

	target, found := maze.Coord{}, false
	for dq.Front != nil {
		e := dq.Front
		dq.Remove(e)
		u := e.Value
		if g.Is(u, maze.Target) {
			target, found = u, true
			break
		}
		for _, v := range maze.Neighbors(u) {
			if !g.InBounds(v) {
				continue
			}
			step := 0
			if g.Is(v, maze.Wall) {
				step = 1
			}
			nd := dist[index(u)] + step
			if nd < dist[index(v)] {
				dist[index(v)] = nd
				prev[index(v)] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	reachable := len(g.RegionOf(start))
	if !found {
		return &Breach{Outcome: EmptyPath, Route: Path{}, Reachable: reachable}, nil
	}

	route := Path{target}
	for at := target; at != start; {
		at = prev[index(at)]
		route = append(route, at)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	walls := make([]maze.Coord, 0, dist[index(target)])
	for _, c := range route {
		if g.Is(c, maze.Wall) {
			walls = append(walls, c)
		}
	}
	return &Breach{Outcome: Found, Route: route, Walls: walls, Reachable: reachable}, nil
}
