package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for configuration and generation.
var (
	// ErrConfig is returned when a configuration source cannot be decoded.
	ErrConfig = errors.New("generator: invalid configuration")

	// ErrDimension is returned for a dimension below 1.
	ErrDimension = fmt.Errorf("%w: dimension must be between 1 and %d", ErrConfig, maze.MaxDimension)

	// ErrPointOutOfRange is returned when a configured point lies outside the grid.
	ErrPointOutOfRange = fmt.Errorf("%w: point out of range", ErrConfig)

	// ErrOverlap is returned when the start and the target share a cell.
	ErrOverlap = fmt.Errorf("%w: start and target overlap", ErrConfig)

	// ErrTooManyObstacles is returned when fewer Open cells remain than
	// random obstacles were requested.
	ErrTooManyObstacles = errors.New("generator: not enough free cells for random obstacles")
)

// Config describes one maze to generate. Points are 1-based.
type Config struct {
	Dimension       int          `json:"dimension"`
	Obstacles       []maze.Coord `json:"obstacles"`
	RandomObstacles int          `json:"random_obstacles"`
	Start           maze.Coord   `json:"start"`
	Target          maze.Coord   `json:"target"`
}

// Validate reports the first structural problem in c.
func (c Config) Validate() error {
	if c.Dimension < 1 || c.Dimension > maze.MaxDimension {
		return fmt.Errorf("%w: got %d", ErrDimension, c.Dimension)
	}
	if c.RandomObstacles < 0 {
		return fmt.Errorf("%w: random obstacles %d is negative", ErrConfig, c.RandomObstacles)
	}
	for i, p := range c.Obstacles {
		if !maze.InBounds(c.Dimension, p) {
			return fmt.Errorf("%w: obstacle %d at %s", ErrPointOutOfRange, i+1, p)
		}
	}
	if !maze.InBounds(c.Dimension, c.Start) {
		return fmt.Errorf("%w: start at %s", ErrPointOutOfRange, c.Start)
	}
	if !maze.InBounds(c.Dimension, c.Target) {
		return fmt.Errorf("%w: target at %s", ErrPointOutOfRange, c.Target)
	}
	if c.Start == c.Target {
		return fmt.Errorf("%w: both at %s", ErrOverlap, c.Start)
	}
	return nil
}
