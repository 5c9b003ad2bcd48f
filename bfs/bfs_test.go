package bfs_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/maze"
)

func rc(r, c int) maze.Coord { return maze.Coord{Row: r, Col: c} }

// SolveSuite pins Solve against literal fixtures. Tie-breaking among equal
// paths is part of the contract, so paths are compared exactly.
type SolveSuite struct {
	suite.Suite
}

func (s *SolveSuite) solve(rows ...string) *bfs.Result {
	res, err := bfs.Solve(maze.Load(rows))
	require.NoError(s.T(), err)
	return res
}

func (s *SolveSuite) requirePath(res *bfs.Result, want ...maze.Coord) {
	require.Equal(s.T(), bfs.Found, res.Outcome)
	require.Equal(s.T(), bfs.Path(want), res.Path)
	require.Equal(s.T(), want[0], res.Start)
	require.Equal(s.T(), want[len(want)-1], res.Target)
}

// TestTwoByTwoDiagonal: the southern route wins the tie.
func (s *SolveSuite) TestTwoByTwoDiagonal() {
	s.requirePath(s.solve("I0", "0X"), rc(1, 1), rc(2, 1), rc(2, 2))
}

// TestAdjacentTarget: a target next to the start yields a two-cell path.
func (s *SolveSuite) TestAdjacentTarget() {
	s.requirePath(s.solve("IX", "00"), rc(1, 1), rc(1, 2))
}

// TestNoStart: a grid with only a target reports NoStart.
func (s *SolveSuite) TestNoStart() {
	res := s.solve("X")
	require.Equal(s.T(), bfs.NoStart, res.Outcome)
	require.Empty(s.T(), res.Path)
	require.Zero(s.T(), res.Explored)
}

// TestEmptyGrid: the canonical empty grid has no start.
func (s *SolveSuite) TestEmptyGrid() {
	require.Equal(s.T(), bfs.NoStart, s.solve().Outcome)
}

// TestLoneStart: a 1×1 grid holding only the start exhausts immediately.
func (s *SolveSuite) TestLoneStart() {
	res := s.solve("I")
	require.Equal(s.T(), bfs.EmptyPath, res.Outcome)
	require.Empty(s.T(), res.Path)
	require.Equal(s.T(), rc(1, 1), res.Start)
	require.Equal(s.T(), 1, res.Explored)
}

// TestAroundWall: the only route goes over the top of a wall column.
func (s *SolveSuite) TestAroundWall() {
	s.requirePath(s.solve("000", "010", "I1X"),
		rc(3, 1), rc(2, 1), rc(1, 1), rc(1, 2), rc(1, 3), rc(2, 3), rc(3, 3))
}

// TestEnclosedTarget: a walled-in target is unreachable.
func (s *SolveSuite) TestEnclosedTarget() {
	res := s.solve("000I", "1110", "X100", "1001")
	require.Equal(s.T(), bfs.EmptyPath, res.Outcome)
	require.Empty(s.T(), res.Path)
	require.Equal(s.T(), rc(1, 4), res.Start)
}

// TestWindingFourByFour: same grid with the bottom-left wall opened.
func (s *SolveSuite) TestWindingFourByFour() {
	s.requirePath(s.solve("000I", "1110", "X100", "0001"),
		rc(1, 4), rc(2, 4), rc(3, 4), rc(3, 3), rc(4, 3), rc(4, 2), rc(4, 1), rc(3, 1))
}

// TestSixBySix: many equal-length candidates; the exact one is pinned.
func (s *SolveSuite) TestSixBySix() {
	s.requirePath(s.solve(
		"10110X",
		"000001",
		"000101",
		"001111",
		"101001",
		"I00011",
	), rc(6, 1), rc(6, 2), rc(5, 2), rc(4, 2), rc(3, 2), rc(3, 3), rc(2, 3),
		rc(2, 4), rc(2, 5), rc(1, 5), rc(1, 6))
}

// TestSerpentine: a corridor snaking through column walls.
func (s *SolveSuite) TestSerpentine() {
	s.requirePath(s.solve(
		"I10001",
		"010101",
		"010101",
		"010101",
		"010101",
		"00010X",
	), rc(1, 1), rc(2, 1), rc(3, 1), rc(4, 1), rc(5, 1), rc(6, 1),
		rc(6, 2), rc(6, 3), rc(5, 3), rc(4, 3), rc(3, 3), rc(2, 3), rc(1, 3),
		rc(1, 4), rc(1, 5), rc(2, 5), rc(3, 5), rc(4, 5), rc(5, 5), rc(6, 5), rc(6, 6))
}

// TestSpiral: the start sits inside a spiral and must walk all the way out.
func (s *SolveSuite) TestSpiral() {
	s.requirePath(s.solve(
		"11111111",
		"X1000000",
		"01011110",
		"0101I010",
		"01011010",
		"01000010",
		"01111110",
		"00000000",
	), rc(4, 5), rc(4, 6), rc(5, 6), rc(6, 6),
		rc(6, 5), rc(6, 4), rc(6, 3),
		rc(5, 3), rc(4, 3), rc(3, 3),
		rc(2, 3), rc(2, 4), rc(2, 5), rc(2, 6), rc(2, 7), rc(2, 8),
		rc(3, 8), rc(4, 8), rc(5, 8), rc(6, 8), rc(7, 8), rc(8, 8),
		rc(8, 7), rc(8, 6), rc(8, 5), rc(8, 4), rc(8, 3), rc(8, 2), rc(8, 1),
		rc(7, 1), rc(6, 1), rc(5, 1), rc(4, 1), rc(3, 1), rc(2, 1))
}

// TestCornerBlocked: the target is cut off by two walls.
func (s *SolveSuite) TestCornerBlocked() {
	res := s.solve("00I", "100", "X10")
	require.Equal(s.T(), bfs.EmptyPath, res.Outcome)
}

// TestFirstTargetWins: of two targets the first dequeued ends the search.
func (s *SolveSuite) TestFirstTargetWins() {
	s.requirePath(s.solve("X0I", "000", "00X"), rc(1, 3), rc(2, 3), rc(3, 3))
}

// TestStrayBytesArePassable: cells outside the alphabet behave as open.
func (s *SolveSuite) TestStrayBytesArePassable() {
	s.requirePath(s.solve("I?", "1X"), rc(1, 1), rc(1, 2), rc(2, 2))
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestSolve_Errors verifies that invalid inputs and options are rejected.
func TestSolve_Errors(t *testing.T) {
	_, err := bfs.Solve(nil)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	_, err = bfs.Solve(maze.Load([]string{"I"}), bfs.WithLogger(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSolve_Hooks checks visit order, depths and hook error propagation.
func TestSolve_Hooks(t *testing.T) {
	type event struct {
		c     maze.Coord
		depth int
	}
	var visits, enqueues []event
	res, err := bfs.Solve(maze.Load([]string{"I0", "0X"}),
		bfs.WithOnVisit(func(c maze.Coord, d int) error {
			visits = append(visits, event{c, d})
			return nil
		}),
		bfs.WithOnEnqueue(func(c maze.Coord, d int) {
			enqueues = append(enqueues, event{c, d})
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Explored)
	assert.Equal(t, []event{{rc(1, 1), 0}, {rc(1, 2), 1}, {rc(2, 1), 1}, {rc(2, 2), 2}}, visits)
	assert.Equal(t, []event{{rc(1, 1), 0}, {rc(1, 2), 1}, {rc(2, 1), 1}, {rc(2, 2), 2}}, enqueues)

	boom := errors.New("boom")
	_, err = bfs.Solve(maze.Load([]string{"I0", "0X"}),
		bfs.WithOnVisit(func(c maze.Coord, _ int) error {
			if c == rc(1, 2) {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
}

// TestResult_String renders each outcome.
func TestResult_String(t *testing.T) {
	found, _ := bfs.Solve(maze.Load([]string{"IX", "00"}))
	empty, _ := bfs.Solve(maze.Load([]string{"I"}))
	none, _ := bfs.Solve(maze.Load([]string{"X"}))

	assert.Equal(t, "[(1, 1), (1, 2)]", found.String())
	assert.Equal(t, "no path", empty.String())
	assert.Equal(t, "no start", none.String())
	assert.Equal(t, 1, found.Path.Len())
	assert.Equal(t, 0, empty.Path.Len())
	assert.Equal(t, "[]", bfs.Path{}.String())
}

// TestResult_JSON checks the wire form used by the cache and the server.
func TestResult_JSON(t *testing.T) {
	res, err := bfs.Solve(maze.Load([]string{"IX", "00"}))
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"outcome":"found","path":[[1,1],[1,2]],"start":[1,1],"target":[1,2],"explored":2}`,
		string(data))

	var back bfs.Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *res, back)

	var o bfs.Outcome
	assert.Error(t, o.UnmarshalText([]byte("lost")))
}
