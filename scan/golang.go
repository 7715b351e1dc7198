package scan

import (
	"bufio"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

type Golang struct {
	Log *slog.Logger
}

func (d *Golang) Name() AnalyzerName {
	return AnalyzerNameGolang
}

func (d *Golang) Match(path string) bool {
	return filepath.Base(path) == "go.mod"
}

// Analyze lists the module paths of require directives, both the single-line
// and the block form. Lines that do not parse as a requirement are skipped.
func (d *Golang) Analyze(path string) string {
	content := readFile(path, d.Log)
	if content == "" {
		return ""
	}

	var mods []string
	inBlock := false
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "require (":
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock:
			fields := strings.Fields(line)
			if len(fields) >= 2 && !strings.HasPrefix(fields[0], "//") {
				mods = append(mods, fields[0])
			}
		case strings.HasPrefix(line, "require "):
			fields := strings.Fields(line)
			if len(fields) >= 3 {
				mods = append(mods, fields[1])
			}
		}
	}

	return fmt.Sprintf("Go dependencies: %s.", strings.Join(mods, ", "))
}
