package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ByteArena/c2/internal/scene"
)

type config struct {
	SceneFile string
	Workers   int
	LogLevel  string
}

func parseFlags() *config {
	cfg := &config{}

	flag.StringVar(&cfg.SceneFile, "scene", "", "YAML scene file to load")
	flag.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "number of queries evaluated concurrently")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "c2probe - evaluate collision queries from a scene file\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -scene FILE [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	logger, err := scene.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("c2probe failed", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, logger *zap.Logger) error {
	if cfg.SceneFile == "" {
		return errors.New("missing -scene")
	}

	f, err := os.Open(cfg.SceneFile)
	if err != nil {
		return errors.Wrap(err, "failed to open scene file")
	}
	defer f.Close()

	doc, err := scene.LoadYAML(f)
	if err != nil {
		return err
	}

	s, err := scene.Build(doc)
	if err != nil {
		return errors.Wrap(err, "invalid scene")
	}

	logger.Info("scene loaded",
		zap.String("file", cfg.SceneFile),
		zap.Int("shapes", len(s.Bodies)),
		zap.Int("queries", len(s.Queries)),
	)

	report, err := scene.NewRunner(logger, cfg.Workers).Run(ctx, s)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return errors.Wrap(enc.Close(), "failed to write report")
}
