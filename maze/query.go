package maze

// InBounds reports whether c lies in [1,dim]×[1,dim].
// It is false for every coordinate when dim ≤ 0.
// Complexity: O(1).
func InBounds(dim int, c Coord) bool {
	return dim > 0 && c.Row >= 1 && c.Row <= dim && c.Col >= 1 && c.Col <= dim
}

// InBounds reports whether c lies inside g.
func (g *Grid) InBounds(c Coord) bool {
	return InBounds(g.Dim(), c)
}

// CellIs reports whether the cell of g at c is of kind k.
// Out-of-range coordinates and nil grids report false.
// Complexity: O(1).
func CellIs(g *Grid, c Coord, k Kind) bool {
	return g.Is(c, k)
}

// Is is the method form of CellIs.
func (g *Grid) Is(c Coord, k Kind) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[g.index(c)] == k
}

// Neighbors returns the four orthogonal neighbours of c in North, East,
// South, West order. No bounds filtering is applied; callers check each
// result with InBounds before use.
// Complexity: O(1).
func Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range Directions {
		out[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}
	return out
}

// FindStart scans g row by row, left to right, and returns the first Start
// cell. The boolean is false when g has no Start, including the empty grid.
// Complexity: O(dim²).
func FindStart(g *Grid) (Coord, bool) {
	for i, k := range g.cellsOrNil() {
		if k == Start {
			return g.coordinate(i), true
		}
	}
	return Coord{}, false
}
