package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

type Node struct {
	Log *slog.Logger
}

func (d *Node) Name() AnalyzerName {
	return AnalyzerNameNode
}

func (d *Node) Match(path string) bool {
	return filepath.Base(path) == "package.json"
}

func (d *Node) Analyze(path string) string {
	content := readFile(path, d.Log)
	if content == "" {
		return ""
	}

	deps, err := parsePackageJSON(strings.NewReader(content))
	if err != nil {
		d.Log.Debug("Failed to parse package.json", "path", path, "error", err.Error())
		return "Error analyzing package.json."
	}

	return fmt.Sprintf("Node.js dependencies: %s.", strings.Join(deps, ", "))
}

// parsePackageJSON returns the keys of the top-level "dependencies" object in
// declaration order. A token-level decode is used because unmarshalling into
// a map would lose the order the manifest declares its dependencies in.
func parsePackageJSON(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("package.json is not a JSON object")
	}

	var deps []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		if key != "dependencies" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		d, isDelim := tok.(json.Delim)
		if !isDelim {
			// A scalar "dependencies" value counts as zero dependencies.
			continue
		}
		if d == '[' {
			if err := skipCompound(dec); err != nil {
				return nil, err
			}
			continue
		}

		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, ok := nameTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected token %v", nameTok)
			}
			deps = append(deps, name)

			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}

	// Closing brace of the document object.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected trailing token %v", tok)
	}

	return deps, nil
}

// skipValue consumes a single JSON value of any kind.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		return skipCompound(dec)
	}
	return nil
}

// skipCompound consumes the remainder of an already-opened object or array.
func skipCompound(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
