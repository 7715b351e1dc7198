package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Error returned when the directory to summarize does not exist or cannot be read.
var ErrRootNotFound = fmt.Errorf("The project directory does not exist or is not readable.")

// Summarizer walks a project tree once and renders a textual summary of its
// directory structure and declared dependencies.
type Summarizer struct {
	Log *slog.Logger

	// Analyzers overrides the manifest analyzers to run files through.
	// When nil, Analyzers(Log) is used.
	Analyzers []Analyzer
}

// Summarize walks the tree rooted at root and returns the rendered summary.
// A missing or unreadable root is the only fatal condition; unreadable files
// and malformed manifests degrade to their own contribution only.
func (s *Summarizer) Summarize(root string) (string, error) {
	log := s.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	analyzers := s.Analyzers
	if analyzers == nil {
		analyzers = Analyzers(log)
	}

	var fragments []string
	dirs := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("%w %s: %v", ErrRootNotFound, root, err)
			}
			log.Debug("Skipping unreadable entry", "path", path, "error", err.Error())
			return nil
		}

		// The root itself is not part of its own structure.
		if path == root {
			return nil
		}

		if d.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			// The parent of each directory is recorded, not the directory
			// itself, so a top-level directory contributes ".".
			dirs[filepath.Dir(rel)] = struct{}{}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		for _, a := range analyzers {
			if !a.Match(path) {
				continue
			}
			if fragment := a.Analyze(path); fragment != "" {
				fragments = append(fragments, fragment)
			}
			break
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	structure := make([]string, 0, len(dirs))
	for dir := range dirs {
		structure = append(structure, dir)
	}
	sort.Strings(structure)

	return fmt.Sprintf("Detected directories:\n%s\n\nDependencies info: %s",
		strings.Join(structure, "\n"), strings.Join(fragments, " ")), nil
}
