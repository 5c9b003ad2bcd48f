// Package bfs provides breadth-first search over a maze.Grid, returning a
// shortest start→target path or one of two distinct failure outcomes.
//
// What
//
//   - Solve searches from the grid's Start cell (the first in row-major
//     order) over 4-directional moves that avoid Wall cells.
//   - The search ends exactly when a Target cell is dequeued; the first
//     Target dequeued is the goal even if the grid holds several.
//   - Result.Outcome is one of:
//   - Found:     Path holds start→target inclusive.
//   - EmptyPath: a Start exists but no Target is reachable.
//   - NoStart:   the grid has no Start cell (including the empty grid).
//   - SolveAll runs independent searches on a bounded worker pool.
//   - MinBreaches reports how many walls separate an unreachable target.
//
// Determinism
//
//	Neighbours are expanded North, East, South, West and the frontier is
//	FIFO. Among equal-length paths the one returned is fixed by that order:
//	a cell's parent is the last cell of the previous layer that reaches it
//	before the cell itself is dequeued, where "last" follows the order in
//	which that layer was reached. Examples:
//
//	    I0      IX      000
//	    0X      00      010
//	                    I1X
//
//	    [(1, 1), (2, 1), (2, 2)]
//	    [(1, 1), (1, 2)]
//	    [(3, 1), (2, 1), (1, 1), (1, 2), (1, 3), (2, 3), (3, 3)]
//
//	The search keeps one entry per cell and assigns parents a layer at a
//	time, so a grid is searched in linear time however many shortest paths
//	it contains.
//
// Complexity (N = dim²)
//
//   - Time:   O(N)   (each cell dequeued once, each neighbour seen O(1) times)
//   - Memory: O(N)   (frontier, seen set, parent map)
//
// Usage
//
//	res, err := bfs.Solve(g)
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation or a hook error
//	}
//	switch res.Outcome {
//	case bfs.Found:
//	    fmt.Println(res.Path)
//	case bfs.EmptyPath:
//	    // regenerate the maze and retry
//	case bfs.NoStart:
//	    // the grid itself is unusable
//	}
//
// Options
//
//   - WithOnEnqueue(fn): hook on first discovery of a cell.
//   - WithOnVisit(fn):   hook on dequeue; returning an error aborts.
//   - WithLogger(l):     logrus logger for a debug entry per search.
//
// Hooks passed to SolveAll are called from several goroutines.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. nil logger).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
