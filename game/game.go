// Package game drives one frame at a time: navigation, simulation step,
// rendering and telemetry.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/nav"
	"github.com/pthm-cable/flurry/pipeline"
	"github.com/pthm-cable/flurry/renderer"
	"github.com/pthm-cable/flurry/systems"
	"github.com/pthm-cable/flurry/telemetry"
	"github.com/pthm-cable/flurry/ui"
)

// Game holds the complete program state.
type Game struct {
	rng   *rand.Rand
	runID string

	snow *systems.Snow
	cam  *camera.Camera

	// Rendering: CPU for headless dumps, GPU for the window
	cpu *pipeline.Pipeline
	gpu *renderer.Pipeline

	// Page overlay (graphical mode only)
	nav       *nav.Controller
	navBar    *ui.NavBar
	content   *ui.ContentPanel
	perfPanel *ui.PerfPanel

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
	logEvery      int64
	dumpEvery     int64

	headless   bool
	lastUpdate time.Time
}

// NewGameWithOptions creates a game from the global config.
// In graphical mode the raylib window must already exist.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	now := time.Now()

	g := &Game{
		rng:        rand.New(rand.NewSource(opts.Seed)),
		runID:      telemetry.NewRunID(),
		headless:   opts.Headless,
		logStats:   opts.LogStats,
		logEvery:   int64(cfg.Telemetry.LogEvery),
		dumpEvery:  int64(opts.DumpEvery),
		lastUpdate: now,
	}

	g.snow = systems.NewSnow(cfg.Snow, g.rng)
	g.cam = camera.New(cfg.Camera.FovY, cfg.Camera.Distance, cfg.Camera.Near, cfg.Camera.Far,
		cfg.Derived.ViewportW, cfg.Derived.ViewportH)
	mat := pipeline.MaterialFromConfig(cfg.Material)

	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	g.collector = telemetry.NewCollector(g.runID, cfg.Telemetry.FrameWindow, now)

	om, err := telemetry.NewOutputManager(opts.OutputDir, g.runID)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
		slog.Info("writing output", "dir", om.Dir())
	}

	if g.headless {
		g.cpu = pipeline.New(g.cam, mat, cfg.Pixelate.BlockSize)
		g.cpu.SetTimer(g.perfCollector)
		slog.Info("pipeline", "renderer", "cpu", "passes", g.cpu.Passes())
		return g
	}

	g.gpu = renderer.NewPipeline(g.cam, mat, cfg.Pixelate.BlockSize)
	g.gpu.SetTimer(g.perfCollector)
	g.gpu.Init()
	slog.Info("pipeline", "renderer", "gpu", "passes", g.gpu.Passes())

	g.nav = nav.NewController(nav.Options{
		Source:      opts.Source,
		Home:        cfg.Nav.Home,
		HomeContent: opts.HomeContent,
		Pages:       cfg.Nav.Pages,
		Debounce:    cfg.Derived.Debounce,
		FadeRate:    cfg.Nav.FadeRate,
		NotFound:    cfg.Nav.NotFound,
		ActiveLabel: cfg.Nav.ActiveLabel,
	})
	g.nav.HandleRoute(opts.Route, now)

	theme := ui.DefaultTheme()
	g.navBar = ui.NewNavBar(theme.Padding, theme.Padding, cfg.Nav.ActiveLabel, theme)
	top := 2*theme.Padding + theme.LinkHeight
	g.content = ui.NewContentPanel(theme.Padding, top,
		cfg.Derived.ScreenW32-2*theme.Padding, cfg.Derived.ScreenH32-top-theme.Padding, theme)
	g.perfPanel = ui.NewPerfPanel(theme.Padding, cfg.Derived.ScreenH32-theme.Padding, theme)

	return g
}

// RunID returns the identifier of this run.
func (g *Game) RunID() string {
	return g.runID
}

// Frame returns the number of simulation steps taken.
func (g *Game) Frame() int64 {
	return g.snow.Frame()
}

// Unload releases resources and flushes output.
func (g *Game) Unload() {
	if g.nav != nil {
		g.nav.Close()
	}
	if g.gpu != nil {
		g.gpu.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
