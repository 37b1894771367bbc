package game

func (g *Game) logPerfSnapshot() {
	stats := g.monitor.GetDetailedStats()
	g.logger.Debug("perf snapshot",
		"frames", stats["frame_count"],
		"fps", stats["fps"],
		"last_frame_ms", stats["last_frame_time_ms"],
		"avg_frame_ms", stats["avg_frame_time_ms"],
		"mem_alloc_mb", stats["memory_alloc_mb"],
		"gc_cycles", stats["gc_cycles"],
		"goroutines", stats["goroutines"],
		"view", g.frame.View,
		"heading", g.scene.Player.Heading,
	)
}
