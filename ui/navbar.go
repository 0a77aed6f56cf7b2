package ui

import (
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/nav"
)

// NavBar draws one button per nav link along the top of the screen.
type NavBar struct {
	theme       Theme
	x, y        int32
	activeLabel string
}

// NewNavBar creates a nav bar at (x, y). Links whose label is activeLabel are
// drawn as a snowflake, which the default font has no glyph for.
func NewNavBar(x, y int32, activeLabel string, theme Theme) *NavBar {
	return &NavBar{theme: theme, x: x, y: y, activeLabel: activeLabel}
}

// Draw renders the links and returns the page of a clicked link.
func (b *NavBar) Draw(links []nav.Link) (string, bool) {
	t := b.theme
	var clicked string
	var ok bool

	for i, link := range links {
		rect := rl.Rectangle{
			X:      float32(b.x + int32(i)*(t.LinkWidth+t.LinkSpacing)),
			Y:      float32(b.y),
			Width:  float32(t.LinkWidth),
			Height: float32(t.LinkHeight),
		}

		// The button supplies the frame and the click; the label is drawn
		// separately so it can fade.
		if gui.Button(rect, "") && !ok {
			clicked, ok = link.Page, true
		}

		col := faded(t.LinkColor, link.Fade.Opacity)
		if link.Label == b.activeLabel {
			drawSnowflake(rect.X+rect.Width/2, rect.Y+rect.Height/2, float32(t.FontSize)/2, col)
			continue
		}
		w := rl.MeasureText(link.Label, t.FontSize)
		tx := int32(rect.X) + (int32(rect.Width)-w)/2
		ty := int32(rect.Y) + (int32(rect.Height)-t.FontSize)/2
		rl.DrawText(link.Label, tx, ty, t.FontSize, col)
	}

	return clicked, ok
}

// drawSnowflake draws three crossing strokes of radius r centered at (cx, cy).
func drawSnowflake(cx, cy, r float32, col rl.Color) {
	for k := 0; k < 3; k++ {
		a := float64(k) * math.Pi / 3
		dx := r * float32(math.Cos(a))
		dy := r * float32(math.Sin(a))
		rl.DrawLineEx(rl.NewVector2(cx-dx, cy-dy), rl.NewVector2(cx+dx, cy+dy), 2, col)
	}
}
