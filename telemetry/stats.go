package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	RunID            string  `csv:"run_id"`
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	WallTimeSec      float64 `csv:"wall_time"`

	// Pool state at window end
	Active   int `csv:"active"`
	Capacity int `csv:"capacity"`

	// Events during window
	Emitted   int `csv:"emitted"`
	Despawned int `csv:"despawned"`

	// Frame timing over the window, in milliseconds
	FrameMeanMS float64 `csv:"frame_mean_ms"`
	FrameStdMS  float64 `csv:"frame_std_ms"`
	FrameP50MS  float64 `csv:"frame_p50_ms"`
	FrameP95MS  float64 `csv:"frame_p95_ms"`
	FrameMaxMS  float64 `csv:"frame_max_ms"`
	FPS         float64 `csv:"fps"`
}

// FrameStats summarizes a set of frame durations in milliseconds.
type FrameStats struct {
	Mean, Std, P50, P95, Max float64
}

// ComputeFrameStats calculates mean, deviation and quantiles of frame times.
// Returns zeros for an empty slice.
func ComputeFrameStats(ms []float64) FrameStats {
	n := len(ms)
	if n == 0 {
		return FrameStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, ms)
	sort.Float64s(sorted)

	fs := FrameStats{
		Mean: stat.Mean(sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Max:  sorted[n-1],
	}
	if n > 1 {
		fs.Std = stat.StdDev(sorted, nil)
	}
	return fs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Int("active", s.Active),
		slog.Int("capacity", s.Capacity),
		slog.Int("emitted", s.Emitted),
		slog.Int("despawned", s.Despawned),
		slog.Float64("frame_mean_ms", s.FrameMeanMS),
		slog.Float64("frame_std_ms", s.FrameStdMS),
		slog.Float64("frame_p50_ms", s.FrameP50MS),
		slog.Float64("frame_p95_ms", s.FrameP95MS),
		slog.Float64("frame_max_ms", s.FrameMaxMS),
		slog.Float64("fps", s.FPS),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
