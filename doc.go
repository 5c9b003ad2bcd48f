// Package mazepath finds shortest paths through square grid mazes, and
// generates, caches and serves them.
//
// What is in the box?
//
//	maze/       Grid, Kind and Coord: loading, validation, queries, regions
//	bfs/        Solve (three-way Result), SolveAll, MinBreaches
//	generator/  Config, Generate, line-oriented and HCL configuration files
//	runner/     the generate, solve, retry loop over pluggable Sources
//	cache/      BadgerDB store of solved grids keyed by content hash
//	server/     HTTP and websocket front end (/solve, /generate, /play)
//	cmd/        the mazepath command: solve, generate, run, serve
//
// Quick ASCII example:
//
//	0 0 0
//	0 1 0        I = start, X = target, 1 = wall
//	I 1 X
//
// The start climbs the left column, crosses the top row and comes down the
// right column: six steps.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
