// Package main Natural Language Numbers Calculator API
// @title Natural Language Numbers Calculator API
// @version 1.0
// @description Evaluates arithmetic written in German number words, digits or a mix of both
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/nlncalc/docs"
	"github.com/DjordjeVuckovic/nlncalc/internal/numeral"
	"github.com/DjordjeVuckovic/nlncalc/internal/processor"
	"github.com/DjordjeVuckovic/nlncalc/internal/router"
	"github.com/DjordjeVuckovic/nlncalc/internal/server"
	"github.com/DjordjeVuckovic/nlncalc/internal/view"
	pkgserver "github.com/DjordjeVuckovic/nlncalc/pkg/server"
)

const (
	probeLine  = "eins plus eins"
	probeValue = 2
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	engineOpts := []numeral.Option{numeral.WithMaxInputLength(cfg.MaxInputLength)}
	if cfg.FoldCase {
		engineOpts = append(engineOpts, numeral.WithFoldCase())
	}
	engine, err := numeral.NewEngine(engineOpts...)
	if err != nil {
		slog.Error("Failed to create engine", "error", err)
		os.Exit(1)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewProbeHealthChecker("engine", func(ctx context.Context) error {
		v, err := engine.Parse(probeLine)
		if err != nil {
			return err
		}
		if v != probeValue {
			return fmt.Errorf("%q evaluated to %v", probeLine, v)
		}
		return nil
	})

	s := server.New(cfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupRenderer(renderer).
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	lineProcessor := processor.NewLineProcessor(engine, processor.WithMaxLines(cfg.MaxLines))

	calcRouter := router.NewCalcRouter(s.Echo, engine, lineProcessor)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
