package dockgen

import (
	"fmt"
	"strings"
)

// Options carries the optional environment configuration folded into the
// generated container definitions.
type Options struct {
	// Path to an environment file to add to the container.
	EnvFile string
	// Environment variables to add to the container, format "KEY=VALUE,KEY2=VALUE2".
	EnvVars string
}

// Details renders the user-facing description of the environment
// configuration. Variable values are elided so they never appear in output.
func (o Options) Details() string {
	var details strings.Builder

	if o.EnvFile != "" {
		fmt.Fprintf(&details, "Add the file %s to the root of the app container, preserving its name. ", o.EnvFile)
	}

	if o.EnvVars != "" {
		vars := strings.Split(o.EnvVars, ",")
		formatted := make([]string, len(vars))
		for i, v := range vars {
			formatted[i] = strings.Split(v, "=")[0] + " for use within the container"
		}
		fmt.Fprintf(&details, "Include environment variables: %s.", strings.Join(formatted, ", "))
	}

	return details.String()
}

// DockerfilePrompt builds the completion prompt for a Dockerfile from a
// project summary.
func DockerfilePrompt(summary string, opts Options) string {
	prompt := fmt.Sprintf("Based on a project that %s, generate an appropriate Dockerfile. Apply best practices including non-root users and multistage if possible.", summary)

	if opts.EnvFile == "" && opts.EnvVars == "" {
		return prompt
	}

	var envDetails string
	if opts.EnvFile != "" {
		envDetails = fmt.Sprintf("Include environment variables from %s ", opts.EnvFile)
	}
	if opts.EnvVars != "" {
		envDetails += fmt.Sprintf("and direct environment variables %s.", opts.EnvVars)
	}

	return prompt + " " + envDetails
}

// ComposePrompt builds the completion prompt for a docker-compose.yml from a
// project summary.
func ComposePrompt(summary string) string {
	return fmt.Sprintf("Based on a project that %s, generate an appropriate docker-compose.yml. Apply best practices.", summary)
}

// ECSTaskPrompt builds the completion prompt for an AWS ECS Fargate task
// definition from a project summary.
func ECSTaskPrompt(summary string) string {
	return fmt.Sprintf("Generate an AWS ECS Fargate task definition for a project that %s, considering best practices.", summary)
}
