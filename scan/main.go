package scan

import (
	"log/slog"
	"os"
)

// An interface that all manifest analyzers must implement.
type Analyzer interface {
	// Returns the name of the ecosystem the analyzer covers.
	Name() AnalyzerName
	// Returns true if the analyzer recognizes the given file name.
	Match(path string) bool
	// Reads the manifest at the given path and describes its declared
	// dependencies. Returns an empty string if the file contributes nothing.
	Analyze(path string) string
}

type AnalyzerName string

const (
	AnalyzerNameNode   AnalyzerName = "Node.js"
	AnalyzerNameRuby   AnalyzerName = "Ruby"
	AnalyzerNamePython AnalyzerName = "Python"
	AnalyzerNameCSharp AnalyzerName = "C#"
	AnalyzerNameRust   AnalyzerName = "Rust"
	AnalyzerNameGolang AnalyzerName = "Go"
)

// Lists all manifest analyzers a summarization runs files through.
func Analyzers(log *slog.Logger) []Analyzer {
	return []Analyzer{
		&Node{Log: log},
		&Ruby{Log: log},
		&Python{Log: log},
		&CSharp{Log: log},
		&Rust{Log: log},
		&Golang{Log: log},
	}
}

// readFile returns the file's contents, or an empty string if the file
// cannot be read. Read failures are never fatal; the file simply contributes
// nothing to the summary.
func readFile(path string, log *slog.Logger) string {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Error("Error reading file", "path", path, "error", err.Error())
		return ""
	}

	return string(content)
}
