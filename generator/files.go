package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazepath/maze"
)

// WriteGrid writes g as newline-terminated rows.
func WriteGrid(w io.Writer, g *maze.Grid) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g *maze.Grid) error {
	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration at path, choosing the decoder by extension:
// ".hcl" files are HCL, everything else is the line-oriented format.
// vars is only consulted for HCL.
func Load(path string, vars map[string]cty.Value) (Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return LoadHCL(path, vars)
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("generator: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseLegacy(f)
}
