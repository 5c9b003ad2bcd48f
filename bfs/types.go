// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a maze.Grid.
package bfs

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Outcome is the terminal state of one search.
type Outcome int

const (
	// NoStart means the grid has no Start cell; the grid must be replaced.
	NoStart Outcome = iota
	// EmptyPath means a Start exists but no Target is reachable.
	EmptyPath
	// Found means Path holds a shortest start→target route.
	Found
)

// String returns the lowercase name used in logs and JSON.
func (o Outcome) String() string {
	switch o {
	case NoStart:
		return "no_start"
	case EmptyPath:
		return "empty_path"
	case Found:
		return "found"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, v := range []Outcome{NoStart, EmptyPath, Found} {
		if v.String() == string(text) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("bfs: unknown outcome %q", text)
}

// Path is an ordered start→target sequence of 4-adjacent coordinates.
type Path []maze.Coord

// Len returns the number of steps, one less than the number of cells.
// An empty path has no steps.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String renders p as "[(1, 1), (2, 1)]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Result holds the outcome of a search:
//   - Outcome: which of the three terminal states was reached.
//   - Path:    start→target cells when Outcome is Found, otherwise empty.
//   - Start:   the start cell, unless Outcome is NoStart.
//   - Target:  the reached target, only when Outcome is Found.
//   - Explored: how many cells were dequeued.
type Result struct {
	Outcome  Outcome    `json:"outcome"`
	Path     Path       `json:"path"`
	Start    maze.Coord `json:"start"`
	Target   maze.Coord `json:"target"`
	Explored int        `json:"explored"`
}

// String returns "no start", "no path" or the rendered path.
func (r *Result) String() string {
	switch r.Outcome {
	case NoStart:
		return "no start"
	case EmptyPath:
		return "no path"
	}
	return r.Path.String()
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Solve is invoked.
type Option func(*Options)

// Options holds hooks and collaborators for one search.
type Options struct {
	// OnEnqueue is called the first time a cell is discovered, with the
	// depth it will be dequeued at.
	OnEnqueue func(c maze.Coord, depth int)

	// OnVisit is called when a cell is dequeued. If it returns an error the
	// search aborts and Solve propagates the wrapped error.
	OnVisit func(c maze.Coord, depth int) error

	// Logger receives a debug entry per finished search.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(maze.Coord, int) {},
		OnVisit:   func(maze.Coord, int) error { return nil },
		Logger:    discardLogger(),
	}
}

// WithOnEnqueue registers a callback to run on first discovery.
func WithOnEnqueue(fn func(c maze.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from it stops the search.
func WithOnVisit(fn func(c maze.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger. A nil logger is an option violation.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
