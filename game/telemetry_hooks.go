package game

import (
	"log/slog"
	"time"
)

// flushTelemetry closes the stats window when due, logging and writing it.
func (g *Game) flushTelemetry() {
	frame := g.Frame()
	if !g.collector.ShouldFlush(frame) {
		return
	}

	pool := g.snow.Pool
	stats := g.collector.Flush(frame, pool.ActiveCount(), pool.Capacity(), time.Now())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteWindow(stats); err != nil {
			slog.Error("failed to write window stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, frame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
