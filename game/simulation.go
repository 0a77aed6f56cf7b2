package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/flurry/telemetry"
)

// Update advances one displayed frame: input, navigation timers, then one
// simulation step. Rendering happens in Draw.
func (g *Game) Update() {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseNav)
	g.handleInput(now)
	g.nav.Update(now, dt)

	g.perfCollector.StartPhase(telemetry.PhaseSimulate)
	g.step()
}

// UpdateHeadless advances one frame without a window: one simulation step,
// then the CPU pipeline renders the pool. Every dumpEvery frames the
// rendered frame is written as PNG.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseSimulate)
	g.step()

	img := g.cpu.Render(g.snow.Pool.Buffer())
	g.snow.Pool.ClearDirty()

	if g.shouldDump() {
		if _, err := g.outputManager.WriteFrame(g.Frame(), img); err != nil {
			slog.Error("failed to write frame", "frame", g.Frame(), "error", err)
		}
	}

	g.endFrame()
}

// step runs the simulation once and records its events.
func (g *Game) step() {
	res := g.snow.Step()
	if res.Despawned > 0 {
		g.collector.RecordDespawn(res.Despawned)
	}
	if res.Emitted >= 0 {
		g.collector.RecordEmit()
	}
}

func (g *Game) shouldDump() bool {
	return g.dumpEvery > 0 && g.outputManager != nil && g.Frame()%g.dumpEvery == 0
}

// endFrame closes the perf sample and flushes telemetry when due.
func (g *Game) endFrame() {
	d := g.perfCollector.EndTick()
	g.collector.RecordFrame(d)

	if g.logEvery > 0 && g.Frame()%g.logEvery == 0 {
		g.logPerfStats()
	}
	g.flushTelemetry()
}
