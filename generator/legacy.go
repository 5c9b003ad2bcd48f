package generator

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// ParseLegacy reads the line-oriented configuration format:
//
//	<header>
//	<dimension>
//	<header>
//	(row,col)       zero or more fixed obstacles
//	<header>        the first line that is not a point ends the list
//	<random obstacle count>
//	<header>
//	(row,col)       start
//	<header>
//	(row,col)       target
//
// Header lines are free text and are never interpreted.
func ParseLegacy(r io.Reader) (Config, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	var cfg Config

	lr.skip()
	if err := lr.readInt(&cfg.Dimension, "dimension"); err != nil {
		return Config{}, err
	}
	lr.skip()

	for {
		line, ok := lr.next()
		if !ok {
			return Config{}, lr.missing("random obstacles header")
		}
		p, ok := parsePoint(line)
		if !ok {
			break
		}
		cfg.Obstacles = append(cfg.Obstacles, p)
	}

	if err := lr.readInt(&cfg.RandomObstacles, "random obstacle count"); err != nil {
		return Config{}, err
	}
	lr.skip()
	if err := lr.readPoint(&cfg.Start, "start"); err != nil {
		return Config{}, err
	}
	lr.skip()
	if err := lr.readPoint(&cfg.Target, "target"); err != nil {
		return Config{}, err
	}
	if err := lr.sc.Err(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// parsePoint accepts "(row,col)" with optional surrounding spaces.
func parsePoint(line string) (maze.Coord, bool) {
	var p maze.Coord
	n, _ := fmt.Sscanf(strings.TrimSpace(line), "(%d,%d)", &p.Row, &p.Col)
	return p, n == 2
}

// lineReader tracks the line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++
	return lr.sc.Text(), true
}

func (lr *lineReader) skip() { lr.next() }

func (lr *lineReader) missing(what string) error {
	return fmt.Errorf("%w: line %d: missing %s", ErrConfig, lr.line+1, what)
}

func (lr *lineReader) readInt(dst *int, what string) error {
	line, ok := lr.next()
	if !ok {
		return lr.missing(what)
	}
	if n, _ := fmt.Sscanf(strings.TrimSpace(line), "%d", dst); n != 1 {
		return fmt.Errorf("%w: line %d: %s %q is not an integer", ErrConfig, lr.line, what, line)
	}
	return nil
}

func (lr *lineReader) readPoint(dst *maze.Coord, what string) error {
	line, ok := lr.next()
	if !ok {
		return lr.missing(what)
	}
	p, ok := parsePoint(line)
	if !ok {
		return fmt.Errorf("%w: line %d: %s %q is not a (row,col) point", ErrConfig, lr.line, what, line)
	}
	*dst = p
	return nil
}
