package generator

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazepath/maze"
)

// hclConfigFile is the decoding target for an HCL configuration.
type hclConfigFile struct {
	Dimension       int            `hcl:"dimension"`
	RandomObstacles int            `hcl:"random_obstacles,optional"`
	Start           []int          `hcl:"start"`
	Target          []int          `hcl:"target"`
	Obstacles       []*hclObstacle `hcl:"obstacle,block"`
}

type hclObstacle struct {
	At []int `hcl:"at"`
}

// LoadHCL reads and decodes the HCL configuration at path.
func LoadHCL(path string, vars map[string]cty.Value) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("generator: read %s: %w", path, err)
	}
	return DecodeHCL(src, path, vars)
}

// DecodeHCL decodes an HCL configuration. Expressions may refer to
// var.<name> for entries of vars and env.<NAME> for the process environment.
func DecodeHCL(src []byte, filename string, vars map[string]cty.Value) (Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: parse %s: %w", ErrConfig, filename, diags)
	}

	var raw hclConfigFile
	diags = gohcl.DecodeBody(file.Body, evalContext(vars), &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: decode %s: %w", ErrConfig, filename, diags)
	}

	cfg := Config{
		Dimension:       raw.Dimension,
		RandomObstacles: raw.RandomObstacles,
	}
	var err error
	if cfg.Start, err = pair(raw.Start, "start"); err != nil {
		return Config{}, err
	}
	if cfg.Target, err = pair(raw.Target, "target"); err != nil {
		return Config{}, err
	}
	for i, o := range raw.Obstacles {
		p, err := pair(o.At, fmt.Sprintf("obstacle %d", i+1))
		if err != nil {
			return Config{}, err
		}
		cfg.Obstacles = append(cfg.Obstacles, p)
	}
	return cfg, nil
}

// ParseVar splits a "name=value" command-line assignment. Values that parse
// as numbers or booleans become cty numbers or bools; anything else is a
// string.
func ParseVar(s string) (string, cty.Value, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", cty.NilVal, fmt.Errorf("%w: variable %q must be name=value", ErrConfig, s)
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return name, cty.NumberIntVal(i), nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return name, cty.NumberFloatVal(f), nil
	}
	switch value {
	case "true":
		return name, cty.True, nil
	case "false":
		return name, cty.False, nil
	}
	return name, cty.StringVal(value), nil
}

func evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	if vars == nil {
		vars = map[string]cty.Value{}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(vars),
			"env": cty.ObjectVal(env),
		},
	}
}

func pair(v []int, what string) (maze.Coord, error) {
	if len(v) != 2 {
		return maze.Coord{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrConfig, what, v)
	}
	return maze.Coord{Row: v[0], Col: v[1]}, nil
}
