package game

import "log/slog"

// logPerfStats logs the rolling perf window with the pool state.
func (g *Game) logPerfStats() {
	pool := g.snow.Pool
	slog.Info("frame",
		"run_id", g.runID,
		"frame", g.Frame(),
		"active", pool.ActiveCount(),
		"capacity", pool.Capacity(),
		"perf", g.perfCollector.Stats(),
	)
}
