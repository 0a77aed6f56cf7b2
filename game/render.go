package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/telemetry"
	"github.com/pthm-cable/flurry/ui"
)

// Draw renders the snow through the GPU pipeline, presents it and draws the
// page overlay on top.
func (g *Game) Draw() {
	g.gpu.Render(g.snow.Pool.Buffer())
	g.snow.Pool.ClearDirty()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	g.gpu.Present()

	g.perfCollector.StartPhase(telemetry.PhaseUI)
	g.drawUI()
	g.endFrame()

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// drawUI draws the nav bar and content panel. A link click navigates
// immediately.
func (g *Game) drawUI() {
	if page, ok := g.navBar.Draw(g.nav.Links()); ok {
		g.nav.Navigate(page, time.Now())
	}
	g.content.Draw(g.nav.Blocks(), g.nav.Opacity())

	pool := g.snow.Pool
	g.perfPanel.Draw(ui.PerfPanelData{
		Frame:    g.Frame(),
		Active:   pool.ActiveCount(),
		Capacity: pool.Capacity(),
		Perf:     g.perfCollector.Stats(),
	})
}
