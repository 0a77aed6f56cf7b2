package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/game"
	"github.com/pthm-cable/flurry/nav"
	"github.com/pthm-cable/flurry/site"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config snapshot and frame dumps")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	dumpEvery := flag.Int("dump-every", -1, "Headless: write a PNG every N frames (-1 = use config, 0 = off)")
	route := flag.String("route", "/", "Initial location path")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	dump := cfg.Telemetry.DumpEvery
	if *dumpEvery >= 0 {
		dump = *dumpEvery
	}

	src, err := pageSource(cfg)
	if err != nil {
		slog.Error("failed to create page source", "error", err)
		os.Exit(1)
	}

	opts := game.Options{
		Seed:        rngSeed,
		Headless:    *headless,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
		DumpEvery:   dump,
		Source:      src,
		HomeContent: site.Home(),
		Route:       *route,
	}

	if *headless {
		// Headless mode - CPU simulation and rendering, no raylib window
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"run_id", g.RunID(),
			"seed", rngSeed,
			"max_frames", *maxFrames,
			"dump_every", dump,
		)

		if *maxFrames <= 0 && (dump == 0 || *outputDir == "") {
			slog.Warn("headless run has no frame limit and writes no frames")
		}

		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
				slog.Info("max frames reached", "frame", g.Frame())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	slog.Info("starting", "run_id", g.RunID(), "seed", rngSeed, "route", *route)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
			break
		}
	}
}

// pageSource fetches over HTTP when a base URL is configured and from the
// embedded site otherwise.
func pageSource(cfg *config.Config) (nav.Source, error) {
	if cfg.Nav.BaseURL != "" {
		src, err := nav.NewHTTPSource(cfg.Nav.BaseURL, cfg.Derived.FetchTimeout)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return nav.NewFSSource(site.FS()), nil
}
