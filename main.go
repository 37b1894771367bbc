package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"swwall/internal/config"
	"swwall/internal/game"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	headless := flag.Bool("headless", false, "render without a window")
	frames := flag.Int("frames", -1, "headless frame count, 0 runs until interrupted")
	out := flag.String("out", "", "headless PNG snapshot of the last frame")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)
	if *frames >= 0 {
		cfg.Headless.Frames = *frames
	}
	if *out != "" {
		cfg.Headless.Snapshot = *out
	}

	level, err := cfg.LogLevel()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("starting", "version", game.Version, "headless", *headless)

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := game.RunHeadless(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	if err := game.RunWindow(cfg, logger); err != nil {
		log.Fatal(err)
	}
}
