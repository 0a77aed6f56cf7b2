package telemetry

import "time"

// Collector accumulates events within windows of frames and produces WindowStats.
type Collector struct {
	runID        string
	windowFrames int64
	start        time.Time

	// Current window tracking
	windowStartFrame int64

	// Event counters for current window
	emitted   int
	despawned int
	frameMS   []float64
}

// NewCollector creates a new stats collector flushing every windowFrames frames.
func NewCollector(runID string, windowFrames int, start time.Time) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		runID:        runID,
		windowFrames: int64(windowFrames),
		start:        start,
		frameMS:      make([]float64, 0, windowFrames),
	}
}

// RecordEmit records a slot activation.
func (c *Collector) RecordEmit() {
	c.emitted++
}

// RecordDespawn records n slots reset by the integrator.
func (c *Collector) RecordDespawn(n int) {
	c.despawned += n
}

// RecordFrame records one frame's wall duration.
func (c *Collector) RecordFrame(d time.Duration) {
	c.frameMS = append(c.frameMS, float64(d)/float64(time.Millisecond))
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(frame int64) bool {
	return frame-c.windowStartFrame >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(frame int64, active, capacity int, now time.Time) WindowStats {
	fs := ComputeFrameStats(c.frameMS)

	var fps float64
	if fs.Mean > 0 {
		fps = 1000 / fs.Mean
	}

	stats := WindowStats{
		RunID:            c.runID,
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		WallTimeSec:      now.Sub(c.start).Seconds(),
		Active:           active,
		Capacity:         capacity,
		Emitted:          c.emitted,
		Despawned:        c.despawned,
		FrameMeanMS:      fs.Mean,
		FrameStdMS:       fs.Std,
		FrameP50MS:       fs.P50,
		FrameP95MS:       fs.P95,
		FrameMaxMS:       fs.Max,
		FPS:              fps,
	}

	// Reset for next window
	c.windowStartFrame = frame
	c.emitted = 0
	c.despawned = 0
	c.frameMS = c.frameMS[:0]

	return stats
}
