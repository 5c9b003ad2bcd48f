package maze

// Regions finds all 4-connected regions of passable (non-Wall) cells.
// Regions are returned in row-major order of their first cell; the cells of
// each region are listed in breadth-first discovery order from that cell,
// expanding N, E, S, W.
//
// Time:   O(dim²).
// Memory: O(dim²) for seen flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.cellsOrNil()))
	var regions [][]Coord
	for i, k := range g.cellsOrNil() {
		if k == Wall || seen[i] {
			continue
		}
		regions = append(regions, g.flood(i, seen))
	}
	return regions
}

// RegionOf returns the region containing c, or nil when c is a Wall or
// outside g.
func (g *Grid) RegionOf(c Coord) []Coord {
	if !g.InBounds(c) || g.Is(c, Wall) {
		return nil
	}
	return g.flood(g.index(c), make([]bool, len(g.cells)))
}

// flood collects the region of cell i, marking every member in seen.
func (g *Grid) flood(i int, seen []bool) []Coord {
	queue := []int{i}
	seen[i] = true
	var region []Coord

	for qi := 0; qi < len(queue); qi++ {
		u := g.coordinate(queue[qi])
		region = append(region, u)
		for _, v := range Neighbors(u) {
			if !g.InBounds(v) || g.Is(v, Wall) {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return region
}
