package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"chroma-ca/internal/params"
)

// Output writes run artefacts into a directory: the resolved parameters and
// one telemetry row per recorded generation.
type Output struct {
	dir           string
	telemetry     *os.File
	headerWritten bool
}

// NewOutput creates dir and opens telemetry.csv inside it. An empty dir
// disables output and returns a nil *Output, whose methods are no-ops.
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	return &Output{dir: dir, telemetry: f}, nil
}

// Dir returns the output directory.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// Path joins name onto the output directory.
func (o *Output) Path(name string) string {
	return filepath.Join(o.Dir(), name)
}

// WriteParameters saves p as config.yaml.
func (o *Output) WriteParameters(p *params.Parameters) error {
	if o == nil {
		return nil
	}
	return p.WriteYAML(o.Path("config.yaml"))
}

// WriteStats appends one row to telemetry.csv.
func (o *Output) WriteStats(s GenerationStats) error {
	if o == nil {
		return nil
	}
	records := []GenerationStats{s}
	if !o.headerWritten {
		if err := gocsv.Marshal(records, o.telemetry); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		o.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, o.telemetry); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the telemetry file.
func (o *Output) Close() error {
	if o == nil {
		return nil
	}
	return o.telemetry.Close()
}

// ReadStats loads a telemetry.csv written by Output.
func ReadStats(path string) ([]GenerationStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening telemetry: %w", err)
	}
	defer f.Close()
	var rows []GenerationStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing telemetry: %w", err)
	}
	return rows, nil
}
