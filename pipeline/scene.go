package pipeline

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/config"
)

// Material describes how every particle is drawn.
type Material struct {
	Size       float64    // point size in world units
	Color      color.RGBA // tint multiplied with the sprite texel
	Sprite     color.RGBA // the single texel of the sprite texture
	AlphaTest  float64    // fragments with alpha below this are discarded
	Background color.RGBA
}

// MaterialFromConfig builds a material from the material config.
func MaterialFromConfig(cfg config.MaterialConfig) Material {
	return Material{
		Size:       cfg.Size,
		Color:      color.RGBA{R: cfg.Color[0], G: cfg.Color[1], B: cfg.Color[2], A: 255},
		Sprite:     color.RGBA{R: cfg.Sprite[0], G: cfg.Sprite[1], B: cfg.Sprite[2], A: cfg.Sprite[3]},
		AlphaTest:  cfg.AlphaTest,
		Background: color.RGBA{R: cfg.Background[0], G: cfg.Background[1], B: cfg.Background[2], A: 255},
	}
}

// Fragment returns the shaded sprite color and whether it survives the alpha test.
func (m Material) Fragment() (color.RGBA, bool) {
	c := color.RGBA{
		R: mul8(m.Sprite.R, m.Color.R),
		G: mul8(m.Sprite.G, m.Color.G),
		B: mul8(m.Sprite.B, m.Color.B),
		A: m.Sprite.A,
	}
	return c, float64(c.A)/255 >= m.AlphaTest
}

// ScenePass draws every slot of a position buffer as a square, screen-facing,
// uniformly colored point.
type ScenePass struct {
	cam *camera.Camera
	mat Material
}

// NewScenePass creates a scene pass.
func NewScenePass(cam *camera.Camera, mat Material) *ScenePass {
	return &ScenePass{cam: cam, mat: mat}
}

// Name returns the pass name.
func (s *ScenePass) Name() string {
	return PassScene
}

// Render clears dst to the background and draws the points.
func (s *ScenePass) Render(dst *image.RGBA, positions []float32) {
	fill(dst, s.mat.Background)

	frag, ok := s.mat.Fragment()
	if !ok {
		return
	}

	for i := 0; i+2 < len(positions); i += 3 {
		p := mgl64.Vec3{float64(positions[i]), float64(positions[i+1]), float64(positions[i+2])}
		sx, sy, depth, visible := s.cam.WorldToScreen(p)
		if !visible {
			continue
		}
		size := math.Max(s.cam.PointSize(s.mat.Size, depth), 1)
		drawPoint(dst, sx, sy, size, frag)
	}
}

// drawPoint blends a square sprite covering every pixel whose center lies
// inside [sx-size/2, sx+size/2) x [sy-size/2, sy+size/2).
func drawPoint(dst *image.RGBA, sx, sy, size float64, c color.RGBA) {
	half := size / 2
	x0 := int(math.Ceil(sx - half - 0.5))
	x1 := int(math.Ceil(sx + half - 0.5))
	y0 := int(math.Ceil(sy - half - 0.5))
	y1 := int(math.Ceil(sy + half - 0.5))

	r := image.Rect(x0, y0, x1, y1).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blend(dst, x, y, c)
		}
	}
}

// blend composites c over the pixel at (x, y) (straight alpha).
func blend(dst *image.RGBA, x, y int, c color.RGBA) {
	i := dst.PixOffset(x, y)
	px := dst.Pix[i : i+4]
	a := uint32(c.A)
	inv := 255 - a
	px[0] = uint8((uint32(c.R)*a + uint32(px[0])*inv + 127) / 255)
	px[1] = uint8((uint32(c.G)*a + uint32(px[1])*inv + 127) / 255)
	px[2] = uint8((uint32(c.B)*a + uint32(px[2])*inv + 127) / 255)
	px[3] = uint8((a*255 + uint32(px[3])*inv + 127) / 255)
}

func fill(dst *image.RGBA, c color.RGBA) {
	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
