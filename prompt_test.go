package dockgen_test

import (
	"testing"

	dockgen "github.com/dockgen/dockgen"
)

func TestDockerfilePrompt(t *testing.T) {
	tests := []struct {
		name     string
		opts     dockgen.Options
		expected string
	}{
		{
			name:     "no environment configuration",
			opts:     dockgen.Options{},
			expected: "Based on a project that SUMMARY, generate an appropriate Dockerfile. Apply best practices including non-root users and multistage if possible.",
		},
		{
			name:     "env file only",
			opts:     dockgen.Options{EnvFile: ".env"},
			expected: "Based on a project that SUMMARY, generate an appropriate Dockerfile. Apply best practices including non-root users and multistage if possible. Include environment variables from .env ",
		},
		{
			name:     "env vars only",
			opts:     dockgen.Options{EnvVars: "PORT=8080,DEBUG=1"},
			expected: "Based on a project that SUMMARY, generate an appropriate Dockerfile. Apply best practices including non-root users and multistage if possible. and direct environment variables PORT=8080,DEBUG=1.",
		},
		{
			name:     "env file and env vars",
			opts:     dockgen.Options{EnvFile: ".env", EnvVars: "PORT=8080"},
			expected: "Based on a project that SUMMARY, generate an appropriate Dockerfile. Apply best practices including non-root users and multistage if possible. Include environment variables from .env and direct environment variables PORT=8080.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := dockgen.DockerfilePrompt("SUMMARY", test.opts); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestComposePrompt(t *testing.T) {
	expected := "Based on a project that SUMMARY, generate an appropriate docker-compose.yml. Apply best practices."
	if got := dockgen.ComposePrompt("SUMMARY"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestECSTaskPrompt(t *testing.T) {
	expected := "Generate an AWS ECS Fargate task definition for a project that SUMMARY, considering best practices."
	if got := dockgen.ECSTaskPrompt("SUMMARY"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestOptionsDetails(t *testing.T) {
	tests := []struct {
		name     string
		opts     dockgen.Options
		expected string
	}{
		{
			name:     "empty",
			opts:     dockgen.Options{},
			expected: "",
		},
		{
			name:     "env file",
			opts:     dockgen.Options{EnvFile: ".env"},
			expected: "Add the file .env to the root of the app container, preserving its name. ",
		},
		{
			// Values are elided; only the variable names are described.
			name:     "env vars",
			opts:     dockgen.Options{EnvVars: "PORT=8080,DEBUG=1"},
			expected: "Include environment variables: PORT for use within the container, DEBUG for use within the container.",
		},
		{
			name: "env file and env vars",
			opts: dockgen.Options{EnvFile: "config.env", EnvVars: "PORT=8080"},
			expected: "Add the file config.env to the root of the app container, preserving its name. " +
				"Include environment variables: PORT for use within the container.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.opts.Details(); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}
