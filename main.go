// A library for generating Dockerfiles, docker-compose files and ECS task
// definitions from project source code using a text-completion model.
package dockgen

import (
	"context"
	"log/slog"
	"os"

	"github.com/dockgen/dockgen/scan"
)

// Completer is the completion-service collaborator that turns a prompt into
// generated text. It is satisfied by llm.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Creates a new container-definition generator. If no logger is provided, a default logger is created.
func New(client Completer, log ...*slog.Logger) *Generator {
	var logger *slog.Logger

	if len(log) > 0 {
		logger = log[0]
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	return &Generator{
		llm: client,
		log: logger,
	}
}

type Generator struct {
	llm Completer
	log *slog.Logger
}

// Summarize scans the project directory and returns the textual summary of
// its structure and declared dependencies that prompts are built from.
func (g *Generator) Summarize(path string) (string, error) {
	s := &scan.Summarizer{Log: g.log}
	return s.Summarize(path)
}

// Generates a Dockerfile for the project at the given path.
func (g *Generator) GenerateDockerfile(ctx context.Context, path string, opts Options) (string, error) {
	summary, err := g.Summarize(path)
	if err != nil {
		return "", err
	}

	contents, err := g.llm.Complete(ctx, DockerfilePrompt(summary, opts))
	if err != nil {
		return "", err
	}

	g.log.Info("Generated Dockerfile for project")
	return contents, nil
}

// Generates a docker-compose.yml for the project at the given path.
func (g *Generator) GenerateCompose(ctx context.Context, path string) (string, error) {
	summary, err := g.Summarize(path)
	if err != nil {
		return "", err
	}

	contents, err := g.llm.Complete(ctx, ComposePrompt(summary))
	if err != nil {
		return "", err
	}

	g.log.Info("Generated docker-compose.yml for project")
	return contents, nil
}

// Generates an AWS ECS Fargate task definition for the project at the given path.
func (g *Generator) GenerateECSTask(ctx context.Context, path string) (string, error) {
	summary, err := g.Summarize(path)
	if err != nil {
		return "", err
	}

	contents, err := g.llm.Complete(ctx, ECSTaskPrompt(summary))
	if err != nil {
		return "", err
	}

	g.log.Info("Generated AWS ECS Fargate task definition for project")
	return contents, nil
}
