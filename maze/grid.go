package maze

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Empty returns a dimension×dimension grid with every cell Open.
// A non-positive dimension, or one above MaxDimension, yields the canonical
// empty grid; there is no error path.
// Complexity: O(dim²).
func Empty(dimension int) *Grid {
	if dimension <= 0 || dimension > MaxDimension {
		return &Grid{}
	}
	cells := make([]Kind, dimension*dimension)
	for i := range cells {
		cells[i] = Open
	}
	return &Grid{dim: dimension, cells: cells}
}

// Load builds a grid of size len(rows), copying the first len(rows) bytes
// of every row. Anything after them (such as a trailing newline) is ignored.
//
// Load does not validate: bytes outside the alphabet are stored verbatim and
// behave as cells that are neither Wall, Start nor Target, and a row shorter
// than len(rows) is padded with Open. Use Parse to reject such input.
// Complexity: O(dim²).
func Load(rows []string) *Grid {
	g := Empty(len(rows))
	for r, row := range rows {
		for c := 0; c < g.dim && c < len(row); c++ {
			g.cells[r*g.dim+c] = Kind(row[c])
		}
	}
	return g
}

// Parse is the validating counterpart of Load. One trailing "\n" or "\r\n"
// is trimmed from each row; every remaining row must have exactly len(rows)
// bytes from the {0,1,I,X} alphabet.
//
// Errors wrap ErrNonSquare or ErrUnknownCell, both of which wrap
// ErrMalformedGrid.
func Parse(rows []string) (*Grid, error) {
	if len(rows) > MaxDimension {
		return nil, fmt.Errorf("%w: %d rows", ErrTooLarge, len(rows))
	}
	g := Empty(len(rows))
	for r, row := range rows {
		row = strings.TrimSuffix(strings.TrimSuffix(row, "\n"), "\r")
		if len(row) != g.dim {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r+1, len(row), g.dim)
		}
		for c := 0; c < g.dim; c++ {
			k, err := ParseKind(row[c])
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Coord{Row: r + 1, Col: c + 1})
			}
			g.cells[r*g.dim+c] = k
		}
	}
	return g, nil
}

// ReadGrid reads newline-separated rows from r and parses them with Parse.
// Trailing blank lines are dropped.
func ReadGrid(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read grid: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return Parse(rows)
}

// Dim returns the side length of g. A nil grid has dimension 0.
func (g *Grid) Dim() int {
	if g == nil {
		return 0
	}
	return g.dim
}

// At returns the kind at c, or false when c lies outside g.
func (g *Grid) At(c Coord) (Kind, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.cells[g.index(c)], true
}

// Count returns how many cells of g hold k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, cell := range g.cellsOrNil() {
		if cell == k {
			n++
		}
	}
	return n
}

// Rows returns the grid as one string per row, without line terminators.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Dim())
	for r := range rows {
		b := make([]byte, g.dim)
		for c := range b {
			b[c] = byte(g.cells[r*g.dim+c])
		}
		rows[r] = string(b)
	}
	return rows
}

// String renders g as newline-terminated rows, the generator output format.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Dim() * (g.Dim() + 1))
	for _, row := range g.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Hash returns the hex SHA-256 of String(). Equal grids hash equally.
func (g *Grid) Hash() string {
	sum := sha256.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}

// index maps a 1-based coordinate to its row-major offset.
func (g *Grid) index(c Coord) int {
	return (c.Row-1)*g.dim + (c.Col - 1)
}

// coordinate converts a row-major offset back to a 1-based coordinate.
func (g *Grid) coordinate(i int) Coord {
	return Coord{Row: i/g.dim + 1, Col: i%g.dim + 1}
}

func (g *Grid) cellsOrNil() []Kind {
	if g == nil {
		return nil
	}
	return g.cells
}
