// Shader debug tool - runs the simulation for a number of frames, renders it
// through the GPU pipeline and writes the result to a PNG file.
//
// Usage: go run ./cmd/shaderdebug -steps 3000 -out debug.png
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/pipeline"
	"github.com/pthm-cable/flurry/renderer"
	"github.com/pthm-cable/flurry/systems"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "debug.png", "Output PNG path")
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

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, "Shader Debug")
	defer rl.CloseWindow()

	cam := camera.New(cfg.Camera.FovY, cfg.Camera.Distance, cfg.Camera.Near, cfg.Camera.Far,
		cfg.Derived.ViewportW, cfg.Derived.ViewportH)
	mat := pipeline.MaterialFromConfig(cfg.Material)

	var tex rl.Texture2D
	if *scene {
		pass := renderer.NewPointsPass(cam, mat)
		defer pass.Unload()
		target := rl.LoadRenderTexture(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
		defer rl.UnloadRenderTexture(target)

		rl.BeginTextureMode(target)
		pass.Draw(snow.Pool.Buffer())
		rl.EndTextureMode()
		tex = target.Texture
	} else {
		p := renderer.NewPipeline(cam, mat, cfg.Pixelate.BlockSize)
		defer p.Unload()
		p.Render(snow.Pool.Buffer())
		tex = p.Output()
	}

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(tex)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Rendered %d active particles after %d frames to: %s (%dx%d)\n",
			snow.Pool.ActiveCount(), snow.Frame(), *outPath, cfg.Screen.Width, cfg.Screen.Height)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
