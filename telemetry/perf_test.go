package telemetry

import (
	"log/slog"
	"math"
	"reflect"
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(windowSize int) (*PerfCollector, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	pc := NewPerfCollector(windowSize)
	pc.now = clock.now
	return pc, clock
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSimulate)
		clock.advance(100 * time.Microsecond)
		pc.StartPhase(PhaseScene)
		clock.advance(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration != 300*time.Microsecond {
		t.Errorf("AvgTickDuration = %v, want 300µs", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseSimulate] != 100*time.Microsecond {
		t.Errorf("simulate avg = %v, want 100µs", stats.PhaseAvg[PhaseSimulate])
	}
	if stats.PhaseAvg[PhaseScene] != 200*time.Microsecond {
		t.Errorf("scene avg = %v, want 200µs", stats.PhaseAvg[PhaseScene])
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc, clock := newTestCollector(5)

	// Five slow ticks are pushed out of the window by five fast ones.
	for i := 0; i < 10; i++ {
		d := 4 * time.Millisecond
		if i >= 5 {
			d = time.Millisecond
		}
		pc.StartTick()
		pc.StartPhase(PhaseSimulate)
		clock.advance(d)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration != time.Millisecond {
		t.Errorf("AvgTickDuration = %v, want 1ms", stats.AvgTickDuration)
	}
	if stats.MaxTickDuration != time.Millisecond {
		t.Errorf("MaxTickDuration = %v, want 1ms", stats.MaxTickDuration)
	}
	if stats.TicksPerSecond != 1000 {
		t.Errorf("TicksPerSecond = %v, want 1000", stats.TicksPerSecond)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	tests := []struct {
		name     string
		fast     time.Duration
		slow     time.Duration
		wantFast float64
		wantSlow float64
	}{
		{"one to three", time.Millisecond, 3 * time.Millisecond, 25, 75},
		{"even split", 2 * time.Millisecond, 2 * time.Millisecond, 50, 50},
		{"one to nine", 100 * time.Microsecond, 900 * time.Microsecond, 10, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, clock := newTestCollector(10)
			for i := 0; i < 5; i++ {
				pc.StartTick()
				pc.StartPhase("fast")
				clock.advance(tt.fast)
				pc.StartPhase("slow")
				clock.advance(tt.slow)
				pc.EndTick()
			}

			stats := pc.Stats()
			if got := stats.PhasePct["fast"]; math.Abs(got-tt.wantFast) > 1e-9 {
				t.Errorf("fast pct = %v, want %v", got, tt.wantFast)
			}
			if got := stats.PhasePct["slow"]; math.Abs(got-tt.wantSlow) > 1e-9 {
				t.Errorf("slow pct = %v, want %v", got, tt.wantSlow)
			}
		})
	}
}

func TestPerfCollector_TimeOutsidePhases(t *testing.T) {
	pc, clock := newTestCollector(4)

	pc.StartTick()
	clock.advance(time.Millisecond) // before the first phase
	pc.StartPhase(PhaseUI)
	clock.advance(time.Millisecond)
	pc.EndTick()

	stats := pc.Stats()
	if stats.AvgTickDuration != 2*time.Millisecond {
		t.Errorf("AvgTickDuration = %v, want 2ms", stats.AvgTickDuration)
	}
	if got := stats.PhasePct[PhaseUI]; got != 50 {
		t.Errorf("ui pct = %v, want 50", got)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}
	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	// First call only establishes the baseline.
	pc.RecordFrame()
	if fps := pc.Stats().FPS; fps != 0 {
		t.Errorf("FPS after one frame = %v, want 0", fps)
	}

	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 20ms", stats.FrameDuration)
	}
	if stats.FPS != 50 {
		t.Errorf("FPS = %v, want 50", stats.FPS)
	}
}

func TestPerfCollector_EndTickReturnsDuration(t *testing.T) {
	pc, clock := newTestCollector(4)

	durations := []time.Duration{time.Millisecond, 3 * time.Millisecond, 250 * time.Microsecond}
	for _, want := range durations {
		pc.StartTick()
		pc.StartPhase(PhaseNav)
		clock.advance(want / 2)
		pc.StartPhase(PhaseSimulate)
		clock.advance(want - want/2)
		if got := pc.EndTick(); got != want {
			t.Errorf("EndTick = %v, want %v", got, want)
		}
	}
}

func TestPhases_Order(t *testing.T) {
	want := []string{"nav", "simulate", "scene", "pixelate", "ui"}
	if !reflect.DeepEqual(Phases, want) {
		t.Errorf("Phases = %v, want %v", Phases, want)
	}
}

func TestPerfStats_LogValuePhaseOrder(t *testing.T) {
	pc, clock := newTestCollector(4)

	// Record phases out of order; the logged attrs follow Phases.
	pc.StartTick()
	for _, phase := range []string{PhaseUI, PhaseScene, PhaseNav, PhasePixelate, PhaseSimulate} {
		pc.StartPhase(phase)
		clock.advance(time.Millisecond)
	}
	pc.EndTick()

	var got []string
	for _, a := range pc.Stats().LogValue().Group() {
		switch a.Key {
		case "avg_tick_us", "min_tick_us", "max_tick_us", "ticks_per_sec", "fps":
			continue
		}
		got = append(got, a.Key)
		if a.Value.Kind() != slog.KindFloat64 || math.Abs(a.Value.Float64()-20) > 1e-9 {
			t.Errorf("%s = %v, want 20", a.Key, a.Value)
		}
	}

	want := []string{"nav_pct", "simulate_pct", "scene_pct", "pixelate_pct", "ui_pct"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phase attrs = %v, want %v", got, want)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 2 * time.Millisecond,
		PhasePct: map[string]float64{
			PhaseNav:      5,
			PhaseSimulate: 40,
			PhaseScene:    20,
			PhasePixelate: 25,
			PhaseUI:       10,
		},
	}

	row := s.ToCSV(600)
	if row.WindowEnd != 600 {
		t.Errorf("WindowEnd = %d, want 600", row.WindowEnd)
	}
	if row.AvgTickUS != 2000 {
		t.Errorf("AvgTickUS = %d, want 2000", row.AvgTickUS)
	}
	got := []float64{row.NavPct, row.SimulatePct, row.ScenePct, row.PixelatePct, row.UIPct}
	want := []float64{5, 40, 20, 25, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phase pct = %v, want %v", got, want)
	}

	if row := (PerfStats{}).ToCSV(0); row.ScenePct != 0 {
		t.Errorf("ScenePct = %v, want 0 for untracked phase", row.ScenePct)
	}
}
