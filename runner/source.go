package runner

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"

	"github.com/katalvlaran/mazepath/generator"
	"github.com/katalvlaran/mazepath/maze"
)

// Source produces the grid for one attempt.
type Source interface {
	Next(ctx context.Context) (*maze.Grid, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*maze.Grid, error)

// Next calls f.
func (f SourceFunc) Next(ctx context.Context) (*maze.Grid, error) { return f(ctx) }

// GeneratorSource generates a fresh grid in process on every call.
//
// A *rand.Rand is not safe for concurrent use, so a GeneratorSource with a
// non-nil Rand must only be used by one goroutine at a time. With a nil Rand
// every call draws from its own time-seeded source and Next never modifies s.
type GeneratorSource struct {
	Config generator.Config
	// Rand drives random obstacle placement; nil means a new time-seeded
	// source per call.
	Rand *rand.Rand
}

// NewGeneratorSource returns a source seeded once with seed.
func NewGeneratorSource(cfg generator.Config, seed int64) *GeneratorSource {
	return &GeneratorSource{Config: cfg, Rand: rand.New(rand.NewSource(seed))}
}

// Next generates one grid.
func (s *GeneratorSource) Next(ctx context.Context) (*maze.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return generator.Generate(s.Config, s.Rand)
}

// ExecSource runs an external generator command and reads the grid it
// writes to Output.
type ExecSource struct {
	Command string
	Args    []string
	Output  string
}

// Next runs the command to completion and parses its output file.
func (s *ExecSource) Next(ctx context.Context) (*maze.Grid, error) {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("runner: %s: %w: %s", s.Command, err, out)
	}
	return readFile(s.Output)
}

// FileSource reads the same file on every call.
type FileSource struct {
	Path string
}

// Next reads and parses the file.
func (s *FileSource) Next(ctx context.Context) (*maze.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readFile(s.Path)
}

func readFile(path string) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	defer f.Close()
	g, err := maze.ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("runner: %s: %w", path, err)
	}
	return g, nil
}
