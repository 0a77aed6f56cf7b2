package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/pipeline"
)

// Camera3D converts the simulation camera to a raylib camera.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(float32(cam.Position[0]), float32(cam.Position[1]), float32(cam.Position[2])),
		Target:     rl.NewVector3(float32(cam.Target[0]), float32(cam.Target[1]), float32(cam.Target[2])),
		Up:         rl.NewVector3(float32(cam.Up[0]), float32(cam.Up[1]), float32(cam.Up[2])),
		Fovy:       float32(cam.FovY),
		Projection: rl.CameraPerspective,
	}
}

// PointsPass draws every slot of the position buffer as a camera-facing
// billboard of the 1x1 sprite texture, through the alpha-test shader.
type PointsPass struct {
	camera rl.Camera3D
	mat    pipeline.Material
	size   float32 // billboard world size

	shader       rl.Shader
	alphaTestLoc int32
	sprite       rl.Texture2D
	initialized  bool
}

// NewPointsPass creates the scene pass. Init must run after the window exists.
func NewPointsPass(cam *camera.Camera, mat pipeline.Material) *PointsPass {
	// Points are sized in pixels per unit depth, size*(H/2)/depth; a billboard
	// projects to size*(H/2)/(depth*tan(fov/2)), so scale by tan(fov/2).
	return &PointsPass{
		camera: Camera3D(cam),
		mat:    mat,
		size:   float32(mat.Size * cam.HalfHeightAt(1)),
	}
}

// Name returns the pass name.
func (p *PointsPass) Name() string {
	return pipeline.PassScene
}

// Init compiles the shader and uploads the sprite texture.
func (p *PointsPass) Init() {
	if p.initialized {
		return
	}

	p.shader = rl.LoadShaderFromMemory(vertexShader, pointsFragment)
	p.alphaTestLoc = rl.GetShaderLocation(p.shader, "alphaTest")
	rl.SetShaderValue(p.shader, p.alphaTestLoc, []float32{float32(p.mat.AlphaTest)}, rl.ShaderUniformFloat)

	img := rl.GenImageColor(1, 1, p.mat.Sprite)
	p.sprite = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(p.sprite, rl.FilterPoint)

	p.initialized = true
}

// Draw renders the points into the currently bound target.
func (p *PointsPass) Draw(positions []float32) {
	if !p.initialized {
		p.Init()
	}

	rl.ClearBackground(p.mat.Background)

	rl.BeginMode3D(p.camera)
	rl.BeginShaderMode(p.shader)
	for i := 0; i+2 < len(positions); i += 3 {
		pos := rl.NewVector3(positions[i], positions[i+1], positions[i+2])
		rl.DrawBillboard(p.camera, p.sprite, pos, p.size, p.mat.Color)
	}
	rl.EndShaderMode()
	rl.EndMode3D()
}

// Unload frees resources.
func (p *PointsPass) Unload() {
	if p.initialized {
		rl.UnloadShader(p.shader)
		rl.UnloadTexture(p.sprite)
		p.initialized = false
	}
}
