package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/analyzer"
	"github.com/scaffoldhq/scaffold/internal/config"
	"github.com/scaffoldhq/scaffold/internal/generator"
	"github.com/scaffoldhq/scaffold/internal/observability"
	"github.com/scaffoldhq/scaffold/internal/report"
)

func main() {
	dir := flag.String("dir", "", "Artifact directory to serve (default: OUTPUT_DIR)")
	port := flag.Int("port", 0, "Listen port (default: REPORT_PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Output.Dir = *dir
	}
	if *port != 0 {
		cfg.Report.Port = *port
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	metrics := observability.NewMetrics("scaffold", nil)

	an := analyzer.New(cfg.Browser, logger)
	gen := generator.NewService(generator.LayoutFromOutput(cfg.Output), logger)

	srv := report.NewServer(cfg.Report, cfg.Output.Dir, an, gen, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting report server",
		zap.String("addr", cfg.Report.Addr()),
		zap.String("artifact_dir", cfg.Output.Dir),
		zap.String("env", string(cfg.Env)))

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("report server failed", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}

	logCfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.GetLogLevel(), err)
	}
	logCfg.Level = level

	return logCfg.Build()
}
