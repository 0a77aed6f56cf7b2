package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/nav"
)

// ContentPanel draws the current page's text blocks, word wrapped, at the
// content opacity.
type ContentPanel struct {
	theme               Theme
	x, y, width, height int32
}

// NewContentPanel creates a content panel covering the given rectangle.
func NewContentPanel(x, y, width, height int32, theme Theme) *ContentPanel {
	return &ContentPanel{theme: theme, x: x, y: y, width: width, height: height}
}

// Draw renders blocks at opacity in [0, 1]. Nothing is drawn when fully faded.
func (p *ContentPanel) Draw(blocks []nav.Block, opacity float64) {
	if opacity <= 0 {
		return
	}
	t := p.theme

	rl.DrawRectangle(p.x, p.y, p.width, p.height, faded(t.PanelBg, opacity))
	rl.DrawRectangleLines(p.x, p.y, p.width, p.height, faded(t.PanelBorder, opacity))

	maxWidth := p.width - 2*t.Padding
	bottom := p.y + p.height - t.Padding
	y := p.y + t.Padding

	for _, b := range blocks {
		size, col, prefix := t.FontSize, t.TextColor, ""
		switch b.Kind {
		case nav.BlockHeading:
			size, col = t.HeadingFontSize, t.HeadingColor
		case nav.BlockItem:
			prefix = "- "
		}

		measure := func(s string) int32 { return rl.MeasureText(s, size) }
		for _, line := range wrap(prefix+b.Text, maxWidth, measure) {
			if y+size > bottom {
				return
			}
			rl.DrawText(line, p.x+t.Padding, y, size, faded(col, opacity))
			y += size + size/3
		}
		y += t.LineHeight / 2
	}
}

// wrap breaks text into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func wrap(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	var line strings.Builder

	for _, word := range strings.Fields(text) {
		if line.Len() == 0 {
			line.WriteString(word)
			continue
		}
		candidate := line.String() + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			continue
		}
		line.WriteString(" " + word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
