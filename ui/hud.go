package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/telemetry"
)

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	Frame    int64
	Active   int
	Capacity int
	Perf     telemetry.PerfStats
}

// PerfPanel renders the frame performance panel in the bottom-left corner.
type PerfPanel struct {
	theme   Theme
	x, y    int32
	visible bool
}

// NewPerfPanel creates a hidden performance panel.
func NewPerfPanel(x, y int32, theme Theme) *PerfPanel {
	return &PerfPanel{theme: theme, x: x, y: y}
}

// Toggle switches panel visibility.
func (p *PerfPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	if !p.visible {
		return
	}

	const width, height = 230, 140
	x, y := p.x, p.y-height
	rl.DrawRectangle(x, y, width, height, p.theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, p.theme.PanelBorder)

	x += 8
	y += 8
	rl.DrawText("Frame Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Frame: %d | FPS: %d", data.Frame, rl.GetFPS()), x, y, 12, rl.LightGray)
	y += 14
	rl.DrawText(fmt.Sprintf("Active: %d / %d", data.Active, data.Capacity), x, y, 12, rl.LightGray)
	y += 14
	rl.DrawText(fmt.Sprintf("Total: %s", data.Perf.AvgTickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, phase := range telemetry.Phases {
		avg := data.Perf.PhaseAvg[phase]
		pct := data.Perf.PhasePct[phase]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 12
	}
}
