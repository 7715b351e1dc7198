package scan

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
)

type Rust struct {
	Log *slog.Logger
}

func (d *Rust) Name() AnalyzerName {
	return AnalyzerNameRust
}

func (d *Rust) Match(path string) bool {
	return filepath.Base(path) == "Cargo.toml"
}

func (d *Rust) Analyze(path string) string {
	content := readFile(path, d.Log)
	if content == "" {
		return ""
	}

	tree, err := toml.Load(content)
	if err != nil {
		d.Log.Debug("Failed to parse Cargo.toml", "path", path, "error", err.Error())
		return "Error analyzing Cargo.toml."
	}

	var crates []string
	if deps, ok := tree.Get("dependencies").(*toml.Tree); ok {
		crates = deps.Keys()
		// Keys() carries no order; restore the declaration order of the
		// manifest from the parse positions.
		sort.Slice(crates, func(i, j int) bool {
			return deps.GetPosition(crates[i]).Line < deps.GetPosition(crates[j]).Line
		})
	}

	return fmt.Sprintf("Rust dependencies: %s.", strings.Join(crates, ", "))
}
