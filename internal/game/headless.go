package game

import (
	"context"
	"log/slog"
	"time"

	"swwall/internal/config"
	"swwall/internal/scene"
)

// RunHeadless renders frames without opening a window, replaying the
// configured axes every frame. It stops after headless.frames frames, or
// on ctx cancellation when frames is 0, and then writes the snapshot if
// one is configured.
func RunHeadless(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg == nil {
		cfg = config.Default()
	}
	logger = orNop(logger)
	g := NewGame(cfg, logger)

	hc := cfg.Headless
	logger.Info("headless run", "frames", hc.Frames, "hz", hc.Hz, "dt", hc.DT)

	n, err := g.runFrames(ctx, hc)
	logger.Info("headless run finished",
		"frames", n,
		"view", g.frame.View,
		"x", g.scene.Player.Pos.X(),
		"z", g.scene.Player.Pos.Y(),
		"heading", g.scene.Player.Heading,
	)
	if err != nil {
		return err
	}

	if hc.Snapshot != "" {
		if err := g.fb.SavePNG(cfg.Capture.Scale, hc.Snapshot); err != nil {
			return err
		}
		logger.Info("snapshot saved", "path", hc.Snapshot)
	}
	return nil
}

// runFrames steps the game on a ticker, or back to back when hz is 0.
// Frame statistics restart with the run.
func (g *Game) runFrames(ctx context.Context, hc config.HeadlessConfig) (int, error) {
	g.monitor.Reset()
	in := scene.Axes{X: hc.Axes.X, Z: hc.Axes.Z, Look: hc.Axes.Look}.Clamped()
	done := func(n int) bool { return hc.Frames > 0 && n >= hc.Frames }

	step := func() error {
		if err := g.Step(hc.DT, in); err != nil {
			return err
		}
		g.monitor.LogReport(g.logger)
		return nil
	}

	n := 0
	var period time.Duration
	if hc.Hz > 0 {
		period = time.Second / time.Duration(hc.Hz)
	}
	if period <= 0 {
		for !done(n) {
			if err := ctx.Err(); err != nil {
				return n, err
			}
			if err := step(); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	}

	t := time.NewTicker(period)
	defer t.Stop()

	for !done(n) {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}
