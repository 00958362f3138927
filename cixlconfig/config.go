// Package cixlconfig loads the YAML file describing a console's size and a
// game loop's timing, filling in defaults for anything the file omits.
package cixlconfig

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/cixl/loop"
	"gopkg.in/yaml.v3"
)

// DefaultWidth and DefaultHeight are used when a config file omits them, or
// when no config file is given at all.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ConsoleSize is the Grid dimension pair loaded alongside a loop.Config.
type ConsoleSize struct {
	Width  int
	Height int
}

// file is the on-disk YAML schema. Every field is optional; omitted fields
// fall back to loop.DefaultConfig()/DefaultWidth/DefaultHeight.
type file struct {
	Width           *int    `yaml:"width"`
	Height          *int    `yaml:"height"`
	FixedTimeStep   *bool   `yaml:"fixed_time_step"`
	TargetElapsedMS *uint32 `yaml:"target_elapsed_ms"`
	MaxElapsedMS    *uint32 `yaml:"max_elapsed_ms"`
	ClocksPerSecond *int64  `yaml:"clocks_per_second"`
}

// Load reads and parses the YAML file at path, returning a loop.Config and
// ConsoleSize with defaults applied to any field the file left unset. An
// empty path returns pure defaults. logger, if non-nil, receives a line for
// every malformed-config anomaly encountered along the way; a nil logger is
// silent. Load never falls back to a package-level logger of its own.
func Load(path string, logger *log.Logger) (loop.Config, ConsoleSize, error) {
	cfg := loop.DefaultConfig()
	size := ConsoleSize{Width: DefaultWidth, Height: DefaultHeight}

	if path == "" {
		return cfg, size, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if logger != nil {
			logger.Printf("cixlconfig: could not read %s: %v", path, err)
		}
		return cfg, size, fmt.Errorf("cixlconfig: read %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		if logger != nil {
			logger.Printf("cixlconfig: could not parse %s: %v", path, err)
		}
		return cfg, size, fmt.Errorf("cixlconfig: parse %s: %w", path, err)
	}

	if f.Width != nil {
		size.Width = *f.Width
	}
	if f.Height != nil {
		size.Height = *f.Height
	}
	if f.FixedTimeStep != nil {
		cfg.IsFixedTimeStep = *f.FixedTimeStep
	}
	if f.TargetElapsedMS != nil {
		cfg.TargetElapsedMS = *f.TargetElapsedMS
	}
	if f.MaxElapsedMS != nil {
		cfg.MaxElapsedMS = *f.MaxElapsedMS
	}
	if f.ClocksPerSecond != nil {
		cfg.ClocksPerSecond = *f.ClocksPerSecond
	}

	if size.Width < 2 || size.Height < 2 {
		if logger != nil {
			logger.Printf("cixlconfig: %s set width/height below 2: %dx%d", path, size.Width, size.Height)
		}
		return cfg, size, fmt.Errorf("cixlconfig: width and height must be at least 2, got %dx%d", size.Width, size.Height)
	}
	if cfg.ClocksPerSecond <= 0 {
		if logger != nil {
			logger.Printf("cixlconfig: %s set clocks_per_second <= 0, falling back to %d", path, int64(time.Second))
		}
		cfg.ClocksPerSecond = int64(time.Second)
	}

	return cfg, size, nil
}
