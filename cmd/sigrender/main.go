package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/sigrender/internal/foundation/errors"
	"git.home.luguber.info/inful/sigrender/internal/logfields"
)

var CLI struct {
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	EnvFile string `help:"Load environment variables from this file before running" type:"path"`

	Render struct {
		Model     string `arg:"" help:"Documentable model file (YAML)" type:"path"`
		Rules     string `help:"Rendering rules file (YAML); defaults to the built-in table" type:"path"`
		SourceSet string `short:"s" help:"Only print signatures for this source set"`
		Watch     bool   `short:"w" help:"Re-render whenever the model or rules file changes"`
		Metrics   bool   `name:"metrics-dump" help:"Print render metrics after rendering"`
	} `cmd:"" help:"Render signatures for every documentable in a model file"`

	Rules struct {
		Rules string `help:"Rendering rules file (YAML) to load before printing" type:"path"`
	} `cmd:"" help:"Print the effective modifier rule table"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if CLI.EnvFile != "" {
		if err := godotenv.Load(CLI.EnvFile); err != nil {
			slog.Error("Failed to load env file", logfields.Path(CLI.EnvFile), logfields.Error(err))
			os.Exit(1)
		}
	}

	runID := uuid.NewString()
	logger = logger.With(logfields.RunID(runID))
	adapter := errors.NewCLIErrorAdapter(CLI.Verbose, logger)

	switch ctx.Command() {
	case "render <model>":
		req := renderRequest{
			ModelPath: CLI.Render.Model,
			RulesPath: CLI.Render.Rules,
			SourceSet: CLI.Render.SourceSet,
			Watch:     CLI.Render.Watch,
			Metrics:   CLI.Render.Metrics,
		}
		if err := runRender(logger, req); err != nil {
			adapter.HandleError(err)
		}
	case "rules":
		if err := runRules(CLI.Rules.Rules); err != nil {
			adapter.HandleError(err)
		}
	default:
		slog.Error("Unknown command", logfields.Kind(ctx.Command()))
		os.Exit(1)
	}
}
