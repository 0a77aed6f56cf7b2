// Package ui draws the page overlay: the nav bar and the content panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg         rl.Color
	PanelBorder     rl.Color
	HeadingColor    rl.Color
	TextColor       rl.Color
	LinkColor       rl.Color
	Padding         int32
	LineHeight      int32
	FontSize        int32
	HeadingFontSize int32
	LinkWidth       int32
	LinkHeight      int32
	LinkSpacing     int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:         rl.Color{R: 10, G: 12, B: 18, A: 160},
		PanelBorder:     rl.Color{R: 60, G: 70, B: 80, A: 255},
		HeadingColor:    rl.RayWhite,
		TextColor:       rl.LightGray,
		LinkColor:       rl.RayWhite,
		Padding:         16,
		LineHeight:      24,
		FontSize:        18,
		HeadingFontSize: 28,
		LinkWidth:       110,
		LinkHeight:      30,
		LinkSpacing:     10,
	}
}

// faded applies opacity in [0, 1] to c.
func faded(c rl.Color, opacity float64) rl.Color {
	return rl.Fade(c, float32(opacity))
}
