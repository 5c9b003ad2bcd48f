// Package bfs finds a shortest start→target path in a maze.Grid by
// breadth-first search, returning a three-way Result.
package bfs

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazepath/maze"
)

// walker encapsulates mutable BFS state. It lives for one Solve call.
type walker struct {
	grid     *maze.Grid
	opts     Options
	start    maze.Coord
	seen     mapset.Set[maze.Coord]
	parent   map[maze.Coord]maze.Coord
	explored int
}

// Solve runs breadth-first search on g from its Start cell, applying any
// number of functional Options.
//
// Expected outcomes are reported through Result.Outcome, never as errors:
// NoStart when g has no Start cell (including the empty grid), EmptyPath when
// no Target is reachable, Found otherwise. Solve returns ErrGridNil for a nil
// grid, ErrOptionViolation for bad options, or a wrapped OnVisit error.
func Solve(g *maze.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := maze.FindStart(g)
	if !ok {
		o.Logger.WithField("dim", g.Dim()).Debug("bfs: grid has no start")
		return &Result{Outcome: NoStart, Path: Path{}}, nil
	}

	n := g.Dim() * g.Dim()
	w := &walker{
		grid:   g,
		opts:   o,
		start:  start,
		seen:   mapset.New[maze.Coord](),
		parent: make(map[maze.Coord]maze.Coord, n),
	}
	target, found, err := w.loop()
	if err != nil {
		return nil, err
	}

	res := &Result{Outcome: EmptyPath, Path: Path{}, Start: start, Explored: w.explored}
	if found {
		res.Outcome = Found
		res.Target = target
		res.Path = w.backtrack(target)
	}
	o.Logger.WithFields(logrus.Fields{
		"dim":      g.Dim(),
		"outcome":  res.Outcome.String(),
		"explored": res.Explored,
		"length":   res.Path.Len(),
	}).Debug("bfs: search finished")

	return res, nil
}

// loop dequeues cells layer by layer until a Target is dequeued or the
// frontier is exhausted. Cells of one layer are dequeued in FIFO order of
// their first discovery.
func (w *walker) loop() (maze.Coord, bool, error) {
	frontier := queue.New[maze.Coord]()
	frontier.Enqueue(w.start)
	w.seen.Put(w.start)
	w.opts.OnEnqueue(w.start, 0)
	settle := []maze.Coord{w.start}

	for depth := 0; !frontier.Empty(); depth++ {
		next := queue.New[maze.Coord]()
		layer := mapset.New[maze.Coord]()

		for !frontier.Empty() {
			c := frontier.Dequeue()
			w.explored++
			if err := w.opts.OnVisit(c, depth); err != nil {
				return maze.Coord{}, false, fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
			}
			if w.grid.Is(c, maze.Target) {
				return c, true, nil
			}
			for _, nb := range maze.Neighbors(c) {
				if !w.passable(nb) || w.seen.Has(nb) {
					continue
				}
				w.seen.Put(nb)
				layer.Put(nb)
				next.Enqueue(nb)
				w.opts.OnEnqueue(nb, depth+1)
			}
		}

		settle = w.adopt(settle, layer)
		frontier = next
	}
	return maze.Coord{}, false, nil
}

// adopt assigns parents to the cells of the layer just discovered.
//
// settle lists the layer being finished in the order its cells were last
// reached. Every cell of the new layer takes as parent the last cell of
// settle that reaches it, and the returned slice orders the new layer the
// same way: by position of its parent in settle, then by N, E, S, W.
func (w *walker) adopt(settle []maze.Coord, layer mapset.Set[maze.Coord]) []maze.Coord {
	for _, u := range settle {
		for _, nb := range maze.Neighbors(u) {
			if layer.Has(nb) {
				w.parent[nb] = u
			}
		}
	}
	out := make([]maze.Coord, 0, layer.Size())
	for _, u := range settle {
		for _, nb := range maze.Neighbors(u) {
			if layer.Has(nb) && w.parent[nb] == u {
				out = append(out, nb)
			}
		}
	}
	return out
}

// passable reports whether c is inside the grid and not a Wall.
func (w *walker) passable(c maze.Coord) bool {
	return w.grid.InBounds(c) && !w.grid.Is(c, maze.Wall)
}

// backtrack follows parent links from target to the start and reverses them.
func (w *walker) backtrack(target maze.Coord) Path {
	path := Path{target}
	for cur := target; cur != w.start; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
