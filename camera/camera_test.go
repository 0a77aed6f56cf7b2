package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newDefault() *Camera {
	return New(75, 5, 0.1, 1000, 1280, 720)
}

func TestOriginAtScreenCenter(t *testing.T) {
	cam := newDefault()

	sx, sy, depth, ok := cam.WorldToScreen(mgl64.Vec3{0, 0, 0})
	if !ok {
		t.Fatal("origin not visible")
	}
	if math.Abs(sx-640) > 0.01 || math.Abs(sy-360) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
	if math.Abs(depth-5) > 1e-9 {
		t.Errorf("depth = %v, want 5", depth)
	}
}

func TestTopEdge(t *testing.T) {
	cam := newDefault()

	// A point at the top of the frustum at z=0 lands on screen row 0
	top := cam.HalfHeightAt(5)
	_, sy, _, ok := cam.WorldToScreen(mgl64.Vec3{0, top, 0})
	if !ok {
		t.Fatal("top point not visible")
	}
	if math.Abs(sy) > 0.01 {
		t.Errorf("expected top edge y=0, got %f", sy)
	}
}

func TestUpIsUp(t *testing.T) {
	cam := newDefault()

	_, syHigh, _, _ := cam.WorldToScreen(mgl64.Vec3{0, 3.8, 0})
	_, syLow, _, _ := cam.WorldToScreen(mgl64.Vec3{0, -3.8, 0})
	if syHigh >= syLow {
		t.Errorf("higher world y should be higher on screen: %f vs %f", syHigh, syLow)
	}

	sxLeft, _, _, _ := cam.WorldToScreen(mgl64.Vec3{-1, 0, 0})
	if sxLeft >= 640 {
		t.Errorf("negative x should be left of center, got %f", sxLeft)
	}
}

func TestBehindCameraNotVisible(t *testing.T) {
	cam := newDefault()

	testCases := []mgl64.Vec3{
		{0, 0, 6},    // behind eye
		{0, 0, 4.95}, // inside near plane
		{0, 0, -2000},
	}
	for _, p := range testCases {
		if _, _, _, ok := cam.WorldToScreen(p); ok {
			t.Errorf("point %v should not be visible", p)
		}
	}
}

func TestPointSize(t *testing.T) {
	cam := newDefault()

	got := cam.PointSize(0.1, 5)
	if math.Abs(got-7.2) > 1e-9 {
		t.Errorf("point size = %v, want 7.2", got)
	}
	if cam.PointSize(0.1, 10) >= got {
		t.Error("farther points should be smaller")
	}
	if cam.PointSize(0.1, 0) != 0 {
		t.Error("zero depth should give zero size")
	}
}
