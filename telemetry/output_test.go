package telemetry

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/flurry/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("", "run")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Nil manager methods are no-ops
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("WriteWindow on nil: %v", err)
	}
	if p, err := om.WriteFrame(1, image.NewRGBA(image.Rect(0, 0, 1, 1))); p != "" || err != nil {
		t.Errorf("WriteFrame on nil = %q, %v", p, err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerCSV(t *testing.T) {
	root := t.TempDir()
	om, err := NewOutputManager(root, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if om.Dir() != filepath.Join(root, "abc") {
		t.Errorf("Dir = %q", om.Dir())
	}

	for _, end := range []int64{600, 1200} {
		if err := om.WriteWindow(WindowStats{RunID: "abc", WindowEndFrame: end, Emitted: 75}); err != nil {
			t.Fatal(err)
		}
		if err := om.WritePerf(PerfStats{PhasePct: map[string]float64{}}, end); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(om.Dir(), "windows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("windows.csv has %d lines, want header + 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "run_id,window_end,") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Contains(lines[0], "WindowStartFrame") {
		t.Error("ignored field exported")
	}
	if !strings.HasPrefix(lines[2], "abc,1200,") {
		t.Errorf("second row = %q", lines[2])
	}

	perf, err := os.ReadFile(filepath.Join(om.Dir(), "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(perf), "window_end"); n != 1 {
		t.Errorf("perf.csv header written %d times", n)
	}
}

func TestOutputManagerWriteFrame(t *testing.T) {
	om, err := NewOutputManager(t.TempDir(), "frames")
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(3, 1, color.RGBA{R: 118, G: 118, B: 118, A: 255})

	path, err := om.WriteFrame(42, img)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "frame_000042.png" {
		t.Errorf("path = %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r, _, _, _ := decoded.At(3, 1).RGBA()
	if r>>8 != 118 {
		t.Errorf("pixel red = %d, want 118", r>>8)
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	om, err := NewOutputManager(t.TempDir(), "cfg")
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(filepath.Join(om.Dir(), "config.yaml")); err != nil {
		t.Errorf("written config does not reload: %v", err)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b || len(a) != 36 {
		t.Errorf("run ids %q %q", a, b)
	}
}
