package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazepath/maze"
)

// Generate builds a maze from cfg.
//
// Cells are placed in a fixed order: fixed obstacles, the start, the target,
// then cfg.RandomObstacles walls on uniformly chosen cells that are still
// Open. A later placement overwrites an earlier one, so a start configured on
// top of a fixed obstacle survives.
//
// A nil rng is replaced by a time-seeded source.
func Generate(cfg Config, rng *rand.Rand) (*maze.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := cfg.Dimension
	rows := make([][]byte, n)
	for r := range rows {
		rows[r] = make([]byte, n)
		for c := range rows[r] {
			rows[r][c] = maze.Open.Byte()
		}
	}
	place := func(p maze.Coord, k maze.Kind) {
		rows[p.Row-1][p.Col-1] = k.Byte()
	}

	for _, p := range cfg.Obstacles {
		place(p, maze.Wall)
	}
	place(cfg.Start, maze.Start)
	place(cfg.Target, maze.Target)

	free := make([]maze.Coord, 0, n*n)
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			if rows[r-1][c-1] == maze.Open.Byte() {
				free = append(free, maze.Coord{Row: r, Col: c})
			}
		}
	}
	if cfg.RandomObstacles > len(free) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrTooManyObstacles, cfg.RandomObstacles, len(free))
	}

	// Draw without replacement: swap the chosen cell to the end and shrink.
	for i := 0; i < cfg.RandomObstacles; i++ {
		j := rng.Intn(len(free))
		place(free[j], maze.Wall)
		last := len(free) - 1
		free[j] = free[last]
		free = free[:last]
	}

	lines := make([]string, n)
	for r, row := range rows {
		lines[r] = string(row)
	}
	return maze.Load(lines), nil
}
