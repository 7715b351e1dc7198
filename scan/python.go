package scan

import (
	"bufio"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

type Python struct {
	Log *slog.Logger
}

func (d *Python) Name() AnalyzerName {
	return AnalyzerNamePython
}

func (d *Python) Match(path string) bool {
	base := filepath.Base(path)
	return base == "requirements.txt" || base == "Pipfile"
}

// Analyze lists every non-blank, non-comment line verbatim. A Pipfile is
// deliberately not decoded as TOML; the flat line listing is descriptive
// enough for prompt purposes.
func (d *Python) Analyze(path string) string {
	content := readFile(path, d.Log)
	if content == "" {
		return ""
	}

	var deps []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		deps = append(deps, line)
	}

	return fmt.Sprintf("Python dependencies (%s): %s.", filepath.Base(path), strings.Join(deps, ", "))
}
