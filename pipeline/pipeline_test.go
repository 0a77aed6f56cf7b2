package pipeline

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/pthm-cable/flurry/camera"
)

var (
	black = color.RGBA{A: 255}
	snow  = color.RGBA{R: 118, G: 118, B: 118, A: 255}
)

func testMaterial() Material {
	return Material{
		Size:       0.1,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Sprite:     color.RGBA{R: 150, G: 150, B: 150, A: 200},
		AlphaTest:  0.5,
		Background: black,
	}
}

func testCamera() *camera.Camera {
	return camera.New(75, 5, 0.1, 1000, 1280, 720)
}

func randomImage(w, h int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rng.Read(img.Pix)
	return img
}

type phaseRecorder struct {
	phases []string
}

func (r *phaseRecorder) StartPhase(phase string) {
	r.phases = append(r.phases, phase)
}

func TestPixelateBlocksMatchTopLeft(t *testing.T) {
	src := randomImage(37, 29, 1)
	dst := image.NewRGBA(src.Bounds())

	Pixelate(dst, src, 8)

	for y := 0; y < 29; y++ {
		for x := 0; x < 37; x++ {
			want := src.RGBAAt(x/8*8, y/8*8)
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want block origin %v", x, y, got, want)
			}
		}
	}
}

func TestPixelateIdempotent(t *testing.T) {
	for _, block := range []int{1, 3, 8, 16} {
		src := randomImage(50, 33, int64(block))
		once := image.NewRGBA(src.Bounds())
		twice := image.NewRGBA(src.Bounds())

		Pixelate(once, src, block)
		Pixelate(twice, once, block)

		for i := range once.Pix {
			if once.Pix[i] != twice.Pix[i] {
				t.Fatalf("block %d: second pass changed byte %d", block, i)
			}
		}
	}
}

func TestPixelateInPlace(t *testing.T) {
	src := randomImage(40, 24, 5)
	out := image.NewRGBA(src.Bounds())
	Pixelate(out, src, 8)

	Pixelate(src, src, 8)

	for i := range out.Pix {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("in-place result differs at byte %d", i)
		}
	}
}

func TestPixelateOffsetBounds(t *testing.T) {
	full := randomImage(64, 64, 9)
	src := full.SubImage(image.Rect(3, 5, 27, 29)).(*image.RGBA)
	dst := image.NewRGBA(src.Bounds())

	Pixelate(dst, src, 8)

	// Blocks align to the sub-image's own corner
	if got, want := dst.RGBAAt(10, 12), src.RGBAAt(3, 5); got != want {
		t.Errorf("pixel (10,12) = %v, want %v", got, want)
	}
	if got, want := dst.RGBAAt(11, 13), src.RGBAAt(11, 13); got != want {
		t.Errorf("pixel (11,13) = %v, want %v", got, want)
	}
}

func TestMaterialFragment(t *testing.T) {
	c, ok := testMaterial().Fragment()
	if !ok {
		t.Fatal("default sprite should pass the alpha test")
	}
	if c != (color.RGBA{R: 150, G: 150, B: 150, A: 200}) {
		t.Errorf("fragment = %v", c)
	}

	m := testMaterial()
	m.Sprite.A = 100
	if _, ok := m.Fragment(); ok {
		t.Error("alpha 100/255 should be discarded at threshold 0.5")
	}
}

func TestScenePassDrawsPoint(t *testing.T) {
	cam := testCamera()
	pass := NewScenePass(cam, testMaterial())
	dst := image.NewRGBA(image.Rect(0, 0, 1280, 720))

	pass.Render(dst, []float32{0, 0, 0})

	// 7.2px sprite centered on (640, 360) covers columns/rows 636..643
	if got := dst.RGBAAt(640, 360); got != snow {
		t.Errorf("center = %v, want %v", got, snow)
	}
	if got := dst.RGBAAt(636, 356); got != snow {
		t.Errorf("sprite corner = %v, want %v", got, snow)
	}
	if got := dst.RGBAAt(644, 360); got != black {
		t.Errorf("outside sprite = %v, want background", got)
	}
	if got := dst.RGBAAt(0, 0); got != black {
		t.Errorf("corner = %v, want background", got)
	}
}

func TestScenePassAlphaTestDiscards(t *testing.T) {
	m := testMaterial()
	m.Sprite.A = 60
	pass := NewScenePass(testCamera(), m)
	dst := image.NewRGBA(image.Rect(0, 0, 1280, 720))

	pass.Render(dst, []float32{0, 0, 0})

	if got := dst.RGBAAt(640, 360); got != black {
		t.Errorf("discarded fragment drawn: %v", got)
	}
}

func TestScenePassSkipsOffscreen(t *testing.T) {
	pass := NewScenePass(testCamera(), testMaterial())
	dst := image.NewRGBA(image.Rect(0, 0, 1280, 720))

	// Behind the camera and far outside the frustum
	pass.Render(dst, []float32{0, 0, 10, 500, 0, 0})

	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatalf("unexpected pixel drawn at byte %d", i)
		}
	}
}

func TestPipelineOrderAndOutput(t *testing.T) {
	p := New(testCamera(), testMaterial(), 8)
	rec := &phaseRecorder{}
	p.SetTimer(rec)

	if got := p.Passes(); len(got) != 2 || got[0] != PassScene || got[1] != PassPixelate {
		t.Fatalf("passes = %v, want [scene pixelate]", got)
	}

	out := p.Render([]float32{0, 0, 0})

	if len(rec.phases) != 2 || rec.phases[0] != PassScene || rec.phases[1] != PassPixelate {
		t.Errorf("phases = %v, want [scene pixelate]", rec.phases)
	}

	// Block 640..647 x 360..367 takes its top-left pixel, which the sprite covers
	if got := out.RGBAAt(647, 367); got != snow {
		t.Errorf("output block pixel = %v, want %v", got, snow)
	}
	// Block 632..639 starts outside the sprite, so its covered pixels are lost
	if got := p.Scene().RGBAAt(637, 361); got != snow {
		t.Errorf("scene pixel = %v, want %v", got, snow)
	}
	if got := out.RGBAAt(637, 361); got != black {
		t.Errorf("output pixel = %v, want background", got)
	}
}
