// Package config holds the framealign command configuration: built-in
// defaults, an optional YAML or JSON file, and FRAMEALIGN_* environment
// overrides, applied in that order. Command-line flags win over all three.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/framealign/gotoh"
	"github.com/katalvlaran/framealign/metric"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Metric names accepted in Config.Metric.
const (
	MetricPixel      = "pixel"
	MetricPerceptual = "perceptual"
	MetricEqual      = "equal"
)

// Output formats accepted in Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the top-level command configuration.
type Config struct {
	Align   Align   `json:"align" yaml:"align"`
	Frames  Frames  `json:"frames" yaml:"frames"`
	Output  string  `json:"output" yaml:"output"`
	Metrics string  `json:"metricsOut" yaml:"metricsOut"`
	Log     Logging `json:"log" yaml:"log"`
}

// Align configures the aligners.
type Align struct {
	GapOpen      float64 `json:"gapOpen" yaml:"gapOpen"`
	GapExtension float64 `json:"gapExtension" yaml:"gapExtension"`
	MaxCells     int     `json:"maxCells" yaml:"maxCells"`
	// Divide enables hash anchoring before the affine aligner.
	Divide bool `json:"divide" yaml:"divide"`
}

// Frames configures how frame directories are read and compared.
type Frames struct {
	Metric   string   `json:"metric" yaml:"metric"`
	HashKind string   `json:"hashKind" yaml:"hashKind"`
	Formats  []string `json:"formats" yaml:"formats"`
	CacheDir string   `json:"cacheDir" yaml:"cacheDir"`
}

// Logging configures the process logger.
type Logging struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Align: Align{
			GapOpen:      gotoh.DefaultGapOpen,
			GapExtension: gotoh.DefaultGapExtension,
			Divide:       true,
		},
		Frames: Frames{
			Metric:   MetricPixel,
			HashKind: "difference",
			Formats:  []string{"png", "jpg", "jpeg", "gif"},
		},
		Output: OutputText,
		Log: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML or JSON file, chosen by extension,
// on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Align.GapOpen) || math.IsInf(c.Align.GapOpen, 0):
		return fmt.Errorf("%w: align.gapOpen must be finite", ErrInvalid)
	case math.IsNaN(c.Align.GapExtension) || math.IsInf(c.Align.GapExtension, 0):
		return fmt.Errorf("%w: align.gapExtension must be finite", ErrInvalid)
	case c.Align.MaxCells < 0:
		return fmt.Errorf("%w: align.maxCells must be >= 0", ErrInvalid)
	}

	switch c.Frames.Metric {
	case MetricPixel, MetricPerceptual, MetricEqual:
	default:
		return fmt.Errorf("%w: frames.metric %q", ErrInvalid, c.Frames.Metric)
	}
	if _, err := metric.ParseHashKind(c.Frames.HashKind); err != nil {
		return fmt.Errorf("%w: frames.hashKind: %w", ErrInvalid, err)
	}
	if len(c.Frames.Formats) == 0 {
		return fmt.Errorf("%w: frames.formats is empty", ErrInvalid)
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q", ErrInvalid, c.Output)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}
