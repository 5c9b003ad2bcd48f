// Package maze defines the cell kinds, coordinates and sentinel errors
// for square grid mazes.
package maze

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrMalformedGrid is the umbrella error for any rejected grid text.
	ErrMalformedGrid = errors.New("maze: malformed grid")
	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: grid must be square", ErrMalformedGrid)
	// ErrUnknownCell indicates a byte outside the {0,1,I,X} alphabet.
	ErrUnknownCell = fmt.Errorf("%w: unknown cell symbol", ErrMalformedGrid)
	// ErrTooLarge indicates more than MaxDimension rows.
	ErrTooLarge = fmt.Errorf("%w: dimension exceeds %d", ErrMalformedGrid, MaxDimension)
)

// MaxDimension is the largest side length a Grid can have. Its square fits
// in an int on every platform Go supports.
const MaxDimension = 1 << 15

// Kind classifies a single cell. The underlying byte is the on-disk symbol.
type Kind byte

const (
	// Open is a free cell.
	Open Kind = '0'
	// Wall is an impassable cell.
	Wall Kind = '1'
	// Start is the single cell a search begins from.
	Start Kind = 'I'
	// Target is a goal cell; the first one reached ends a search.
	Target Kind = 'X'
)

// ParseKind maps a symbol byte to its Kind.
// Returns ErrUnknownCell for bytes outside the alphabet.
func ParseKind(b byte) (Kind, error) {
	k := Kind(b)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCell, b)
	}
	return k, nil
}

// Valid reports whether k is one of Open, Wall, Start or Target.
func (k Kind) Valid() bool {
	switch k {
	case Open, Wall, Start, Target:
		return true
	}
	return false
}

// Byte returns the on-disk symbol of k.
func (k Kind) Byte() byte { return byte(k) }

// String returns the symbolic name of k.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Target:
		return "target"
	}
	return fmt.Sprintf("kind(%q)", byte(k))
}

// Coord is a 1-based (row, column) position.
// The zero value is never inside a grid.
type Coord struct {
	Row, Col int
}

// String renders c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// MarshalJSON encodes c as a two-element array [row, col].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a two-element array [row, col].
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("maze: coordinate must have 2 elements, got %d", len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// Directions holds the unit offsets in expansion order: North, East, South, West.
// Searches depend on this order to pick among equal-length paths.
var Directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Grid is an immutable dim×dim maze. A Grid of dimension 0 is the canonical
// empty grid. Cells are stored row-major.
type Grid struct {
	dim   int
	cells []Kind
}
