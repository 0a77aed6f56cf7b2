// Frame dump tool - runs the simulation headless and writes the CPU pipeline
// output (or the scene pass alone) to a PNG file. Needs no GPU.
//
// Usage: go run ./cmd/framedump -steps 3000 -out frame.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/pipeline"
	"github.com/pthm-cable/flurry/systems"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "frame.png", "Output PNG path")
	steps := flag.Int("steps", 3000, "Simulation frames before rendering")
	seed := flag.Int64("seed", 1, "RNG seed")
	scene := flag.Bool("scene", false, "Export the scene pass only (skip pixelation)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	snow := systems.NewSnow(cfg.Snow, rand.New(rand.NewSource(*seed)))
	for i := 0; i < *steps; i++ {
		snow.Step()
	}

	cam := camera.New(cfg.Camera.FovY, cfg.Camera.Distance, cfg.Camera.Near, cfg.Camera.Far,
		cfg.Derived.ViewportW, cfg.Derived.ViewportH)
	p := pipeline.New(cam, pipeline.MaterialFromConfig(cfg.Material), cfg.Pixelate.BlockSize)

	var img image.Image = p.Render(snow.Pool.Buffer())
	if *scene {
		img = p.Scene()
	}

	if err := writePNG(*outPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d active particles after %d frames to: %s (%dx%d)\n",
		snow.Pool.ActiveCount(), snow.Frame(), *outPath, cfg.Screen.Width, cfg.Screen.Height)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
