package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input other than link clicks.
func (g *Game) handleInput(now time.Time) {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Perf panel toggle
	if rl.IsKeyPressed(rl.KeyF3) {
		g.perfPanel.Toggle()
	}

	// History back (mouse back button or backspace)
	if rl.IsMouseButtonPressed(rl.MouseButtonBack) || rl.IsKeyPressed(rl.KeyBackspace) {
		g.nav.Back(now)
	}
}
