package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/nlncalc/internal/numeral"
	"github.com/DjordjeVuckovic/nlncalc/internal/suite"
)

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}

	ctx := context.Background()

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(2)
	}

	var opts []numeral.Option
	if cfg.FoldCase {
		opts = append(opts, numeral.WithFoldCase())
	}
	engine, err := numeral.NewEngine(opts...)
	if err != nil {
		slog.Error("Failed to create engine", "error", err)
		os.Exit(2)
	}

	slog.Info("Running suite", "suite", s.Name, "cases", len(s.Cases))

	res, err := suite.NewRunner(engine).Run(ctx, s)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		os.Exit(2)
	}

	switch cfg.Format {
	case "json":
		if err := suite.WriteJSON(res, cfg.outputPath()); err != nil {
			slog.Error("Failed to write report", "error", err)
			os.Exit(2)
		}
		slog.Info("Report written", "path", cfg.outputPath())
	default:
		suite.WriteTable(res, os.Stdout)
	}

	if !res.OK() {
		slog.Error("Suite failed", "passed", res.Passed, "failed", res.Failed)
		os.Exit(1)
	}
	slog.Info("Suite passed", "passed", res.Passed)
}
