package scan

import (
	"bufio"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

type Ruby struct {
	Log *slog.Logger
}

func (d *Ruby) Name() AnalyzerName {
	return AnalyzerNameRuby
}

func (d *Ruby) Match(path string) bool {
	return filepath.Base(path) == "Gemfile"
}

func (d *Ruby) Analyze(path string) string {
	content := readFile(path, d.Log)
	if content == "" {
		return ""
	}

	var gems []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		// Only lines whose first token is literally "gem" declare a
		// dependency; anything else, including malformed gem lines with no
		// name token, is skipped.
		if len(fields) < 2 || fields[0] != "gem" {
			continue
		}
		gems = append(gems, unquote(fields[1]))
	}

	return fmt.Sprintf("Ruby dependencies (Gemfile): %s.", strings.Join(gems, ", "))
}

// unquote strips one pair of surrounding quote characters, double or single.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
