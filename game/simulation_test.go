package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/telemetry"
)

func newHeadless(t *testing.T, outputDir string, dumpEvery int) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
	g := NewGameWithOptions(Options{
		Seed:      1,
		Headless:  true,
		OutputDir: outputDir,
		DumpEvery: dumpEvery,
	})
	t.Cleanup(g.Unload)
	return g
}

func TestUpdateHeadless_RendersEveryFrame(t *testing.T) {
	g := newHeadless(t, "", 0)

	for i := 0; i < 3; i++ {
		g.UpdateHeadless()

		if g.snow.Pool.Dirty() {
			t.Fatalf("frame %d: pool still dirty after render", g.Frame())
		}
	}

	stats := g.perfCollector.Stats()
	for _, phase := range []string{telemetry.PhaseSimulate, telemetry.PhaseScene, telemetry.PhasePixelate} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("phase %q not timed in headless frames", phase)
		}
	}
	if g.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", g.Frame())
	}
}

func TestUpdateHeadless_DumpsOnInterval(t *testing.T) {
	dir := t.TempDir()
	g := newHeadless(t, dir, 2)

	for i := 0; i < 5; i++ {
		g.UpdateHeadless()
	}

	frames, err := os.ReadDir(filepath.Join(dir, g.RunID(), "frames"))
	if err != nil {
		t.Fatalf("reading frames dir: %v", err)
	}
	// Frames 2 and 4.
	if len(frames) != 2 {
		t.Errorf("wrote %d frames, want 2", len(frames))
	}
}
