package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	dockgen "github.com/dockgen/dockgen"
	"github.com/dockgen/dockgen/llm"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"
)

func main() {
	var path string
	flag.StringVar(&path, "path", ".", "Path to the project directory")
	var envFile string
	flag.StringVar(&envFile, "env-file", "", "Path to an environment file to add to the container")
	var envVars string
	flag.StringVar(&envVars, "env-vars", "", "Environment variables to add to the container, format 'KEY=VALUE,KEY2=VALUE2'")
	var ecs bool
	flag.BoolVar(&ecs, "ecs", false, "Also generate an AWS ECS Fargate task definition")
	var model string
	flag.StringVar(&model, "model", llm.DefaultModel, "Completion model to use")
	var noColor bool
	flag.BoolVar(&noColor, "no-color", false, "Disable colorized output")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		path = args[0]
	}

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})

	log := slog.New(handler)

	_ = godotenv.Load()

	cfg := llm.DefaultConfig(os.Getenv("GEMINI_API_KEY"))
	cfg.Model = model

	ctx := context.Background()

	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		log.Error("fatal error", "error", err.Error())
		os.Exit(1)
	}

	gen := dockgen.New(client, log)
	opts := dockgen.Options{EnvFile: envFile, EnvVars: envVars}

	if details := opts.Details(); details != "" {
		fmt.Println("Including environment configuration:")
		fmt.Println(details)
	}

	dockerfile, err := gen.GenerateDockerfile(ctx, path, opts)
	if err != nil {
		log.Error("fatal error", "error", err.Error())
		os.Exit(1)
	}
	fmt.Println("\nGenerated Dockerfile:\n", dockerfile)

	fmt.Println("\n-----------------------------------------")

	compose, err := gen.GenerateCompose(ctx, path)
	if err != nil {
		log.Error("fatal error", "error", err.Error())
		os.Exit(1)
	}
	fmt.Println("\nGenerated docker-compose.yml:\n", compose)

	if ecs {
		fmt.Println("\n-----------------------------------------")

		task, err := gen.GenerateECSTask(ctx, path)
		if err != nil {
			log.Error("fatal error", "error", err.Error())
			os.Exit(1)
		}
		fmt.Println("\nGenerated AWS ECS Fargate task definition:\n", task)
	}
}
