package telemetry

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/pthm-cable/flurry/config"
)

// NewRunID returns a fresh identifier for one program run.
func NewRunID() string {
	return uuid.NewString()
}

// OutputManager handles structured run output: CSV logs, the effective
// config and PNG frame dumps.
type OutputManager struct {
	dir        string
	framesDir  string
	windowFile *os.File
	perfFile   *os.File

	// Track if headers have been written
	windowHeaderWritten bool
	perfHeaderWritten   bool
}

// NewOutputManager creates <dir>/<runID> and opens its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir, runID string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	runDir := filepath.Join(dir, runID)
	framesDir := filepath.Join(runDir, "frames")
	if err := os.MkdirAll(framesDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: runDir, framesDir: framesDir}

	f, err := os.Create(filepath.Join(runDir, "windows.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowFile = f

	f, err = os.Create(filepath.Join(runDir, "perf.csv"))
	if err != nil {
		om.windowFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow writes a window stats record to windows.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.windowHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.windowFile); err != nil {
			return fmt.Errorf("writing window stats: %w", err)
		}
		om.windowHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.windowFile); err != nil {
			return fmt.Errorf("writing window stats: %w", err)
		}
	}

	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int64) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// WriteFrame encodes img as frames/frame_<n>.png and returns the path.
func (om *OutputManager) WriteFrame(frame int64, img image.Image) (string, error) {
	if om == nil {
		return "", nil
	}

	path := filepath.Join(om.framesDir, fmt.Sprintf("frame_%06d.png", frame))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	return path, f.Close()
}

// Dir returns the run output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.windowFile != nil {
		if err := om.windowFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
