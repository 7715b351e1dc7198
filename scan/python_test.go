package scan_test

import (
	"testing"

	"github.com/dockgen/dockgen/scan"
)

func TestPythonMatch(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "requirements.txt",
			path:     "testdata/python/requirements.txt",
			expected: true,
		},
		{
			name:     "Pipfile",
			path:     "testdata/python-pipfile/Pipfile",
			expected: true,
		},
		{
			name:     "Pipfile.lock",
			path:     "testdata/python-pipfile/Pipfile.lock",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			python := &scan.Python{Log: logger}
			if python.Match(test.path) != test.expected {
				t.Errorf("expected %v, got %v", test.expected, python.Match(test.path))
			}
		})
	}
}

func TestPythonAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "requirements.txt skips blank and comment lines",
			path:     "testdata/python/requirements.txt",
			expected: "Python dependencies (requirements.txt): flask, requests.",
		},
		{
			// A Pipfile is listed line by line, not decoded as TOML.
			name:     "Pipfile listed verbatim",
			path:     "testdata/python-pipfile/Pipfile",
			expected: `Python dependencies (Pipfile): [[source]], url = "https://pypi.org/simple", [packages], flask = "*", requests = ">=2.31".`,
		},
		{
			name:     "unreadable file",
			path:     "testdata/python/missing/requirements.txt",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			python := &scan.Python{Log: logger}
			if got := python.Analyze(test.path); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}
