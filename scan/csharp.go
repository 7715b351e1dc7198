package scan

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

type CSharp struct {
	Log *slog.Logger
}

func (d *CSharp) Name() AnalyzerName {
	return AnalyzerNameCSharp
}

func (d *CSharp) Match(path string) bool {
	return filepath.Ext(path) == ".csproj"
}

func (d *CSharp) Analyze(path string) string {
	content := readFile(path, d.Log)
	if content == "" {
		return ""
	}

	packages, err := parsePackageReferences(strings.NewReader(content))
	if err != nil {
		d.Log.Debug("Failed to parse .csproj", "path", path, "error", err.Error())
		return "Error analyzing .csproj."
	}

	return fmt.Sprintf("C# dependencies: %s.", strings.Join(packages, ", "))
}

// parsePackageReferences collects the Include attribute of every
// PackageReference element at any depth of the project file. Elements
// without an Include attribute are skipped.
func parsePackageReferences(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var packages []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "PackageReference" {
			continue
		}

		for _, attr := range start.Attr {
			if attr.Name.Local == "Include" {
				packages = append(packages, attr.Value)
				break
			}
		}
	}

	return packages, nil
}
