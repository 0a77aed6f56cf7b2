package game

import "github.com/pthm-cable/flurry/nav"

// Options configures a Game.
type Options struct {
	Seed      int64
	Headless  bool // no window: simulation plus CPU rendering only
	LogStats  bool // log window stats at each flush
	OutputDir string
	DumpEvery int // headless: frames between PNG dumps (0 = off)

	// Graphical mode only
	Source      nav.Source // where non-home pages are fetched from
	HomeContent string
	Route       string // initial location path
}
