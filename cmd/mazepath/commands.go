package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/cache"
	"github.com/katalvlaran/mazepath/generator"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/runner"
	"github.com/katalvlaran/mazepath/server"
)

func runSolve(out io.Writer, args []string) error {
	var lf logFlags
	fs := newFlagSet("solve", out, &lf)
	strict := fs.Bool("strict", true, "Reject grids that are not square or contain unknown cells.")
	breach := fs.Bool("breach", false, "When no path exists, report the fewest walls to remove.")
	workers := fs.Int("workers", 0, "Concurrent searches when several files are given; 0 uses every CPU.")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return &ExitError{Code: exitUsage, Message: "solve: missing grid file"}
	}
	logger, err := lf.logger()
	if err != nil {
		return err
	}

	files := fs.Args()
	grids := make([]*maze.Grid, len(files))
	for i, name := range files {
		if grids[i], err = readGridFile(name, *strict); err != nil {
			return err
		}
	}
	results, err := bfs.SolveAll(context.Background(), grids, *workers, bfs.WithLogger(logger))
	if err != nil {
		return err
	}

	code := 0
	for i, res := range results {
		if len(files) > 1 {
			fmt.Fprintf(out, "%s: ", files[i])
		}
		fmt.Fprintln(out, res)

		switch res.Outcome {
		case bfs.NoStart:
			code = exitNoStart
		case bfs.EmptyPath:
			if code == 0 {
				code = exitNoPath
			}
			if *breach {
				b, err := bfs.MinBreaches(grids[i])
				if err != nil {
					return err
				}
				if b.Outcome == bfs.Found {
					fmt.Fprintf(out, "breach: %d walls %v\n", len(b.Walls), b.Walls)
				}
				fmt.Fprintf(out, "reachable: %d cells\n", b.Reachable)
			}
		}
	}
	switch code {
	case exitNoStart:
		return &ExitError{Code: code, Message: "solve: grid has no start"}
	case exitNoPath:
		return &ExitError{Code: code, Message: "solve: no path from start to target"}
	}
	return nil
}

// readGridFile reads a grid from name, or from stdin for "-". Without strict
// the lenient maze.Load is used.
func readGridFile(name string, strict bool) (*maze.Grid, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if strict {
		g, err := maze.ReadGrid(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return g, nil
	}
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return maze.Load(rows), nil
}

// varFlags collects repeated -var name=value flags.
type varFlags map[string]cty.Value

func (v varFlags) String() string { return fmt.Sprintf("%d variables", len(v)) }

func (v varFlags) Set(s string) error {
	name, val, err := generator.ParseVar(s)
	if err != nil {
		return err
	}
	v[name] = val
	return nil
}

func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runGenerate(out io.Writer, args []string) error {
	var lf logFlags
	fs := newFlagSet("generate", out, &lf)
	config := fs.String("config", "", "Configuration file (.hcl, or the line-oriented format).")
	seed := fs.Int64("seed", 0, "Random seed; 0 seeds from the clock.")
	output := fs.String("out", "", "Write the grid to this file instead of stdout.")
	vars := varFlags{}
	fs.Var(vars, "var", "HCL variable as name=value; repeatable.")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}
	if *config == "" {
		return &ExitError{Code: exitUsage, Message: "generate: -config is required"}
	}
	logger, err := lf.logger()
	if err != nil {
		return err
	}

	cfg, err := generator.Load(*config, vars)
	if err != nil {
		return err
	}
	g, err := generator.Generate(cfg, seededRand(*seed))
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{"dim": g.Dim(), "walls": g.Count(maze.Wall)}).Info("generated grid")

	if *output != "" {
		return generator.WriteFile(*output, g)
	}
	return generator.WriteGrid(out, g)
}

func runLoop(out io.Writer, args []string) error {
	var lf logFlags
	fs := newFlagSet("run", out, &lf)
	config := fs.String("config", "", "Generate in process from this configuration file.")
	execCmd := fs.String("exec", "", "External generator command line, run once per attempt.")
	execOutput := fs.String("exec-output", "SalidaLaberinto.txt", "File the external generator writes.")
	file := fs.String("file", "", "Solve this grid file; every attempt rereads it.")
	seed := fs.Int64("seed", 0, "Random seed for -config; 0 seeds from the clock.")
	maxAttempts := fs.Int("max-attempts", 0, "Give up after this many grids without a path; 0 never gives up.")
	cacheDir := fs.String("cache", "", "Directory of a persistent solution cache.")
	vars := varFlags{}
	fs.Var(vars, "var", "HCL variable as name=value; repeatable.")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}
	logger, err := lf.logger()
	if err != nil {
		return err
	}

	var src runner.Source
	switch {
	case *config != "":
		cfg, err := generator.Load(*config, vars)
		if err != nil {
			return err
		}
		src = &runner.GeneratorSource{Config: cfg, Rand: seededRand(*seed)}
	case strings.TrimSpace(*execCmd) != "":
		fields := strings.Fields(*execCmd)
		src = &runner.ExecSource{Command: fields[0], Args: fields[1:], Output: *execOutput}
	case *file != "":
		src = &runner.FileSource{Path: *file}
	default:
		return &ExitError{Code: exitUsage, Message: "run: one of -config, -exec or -file is required"}
	}

	r := &runner.Runner{Source: src, MaxAttempts: *maxAttempts, Logger: logger}
	if *cacheDir != "" {
		c, err := cache.Open(*cacheDir, cache.WithLogger(logger))
		if err != nil {
			return err
		}
		defer c.Close()
		r.Cache = c
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rep, err := r.Run(ctx)
	switch {
	case errors.Is(err, runner.ErrNoStart):
		return &ExitError{Code: exitNoStart, Message: err.Error()}
	case errors.Is(err, runner.ErrAttemptsExhausted):
		return &ExitError{Code: exitNoPath, Message: err.Error()}
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "attempts: %d\n", rep.Attempts)
	if err := generator.WriteGrid(out, rep.Grid); err != nil {
		return err
	}
	fmt.Fprintln(out, rep.Result)
	return nil
}

func runServe(out io.Writer, args []string) error {
	var lf logFlags
	fs := newFlagSet("serve", out, &lf)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fs.String("addr", ":"+port, "Listen address; the PORT environment variable sets the default port.")
	cacheDir := fs.String("cache", "", "Directory of a persistent solution cache; empty keeps it in memory.")
	maxDim := fs.Int("max-dimension", server.DefaultMaxDimension, "Largest dimension /generate accepts.")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}
	logger, err := lf.logger()
	if err != nil {
		return err
	}

	copts := []cache.Option{cache.WithLogger(logger)}
	if *cacheDir == "" {
		copts = append(copts, cache.WithInMemory())
	}
	c, err := cache.Open(*cacheDir, copts...)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := server.New(server.WithCache(c), server.WithLogger(logger), server.WithMaxDimension(*maxDim))
	return srv.ListenAndServe(ctx, *addr)
}
