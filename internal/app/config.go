package app

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the startup parameters shared by every front end. Side
// is fixed for the life of the process; everything else only seeds the
// initial state or the presentation.
type Config struct {
	Side         int           `yaml:"side"`
	StepInterval time.Duration `yaml:"step_interval"`
	Scale        int           `yaml:"scale"`
	Workers      int           `yaml:"workers"`
	Density      float64       `yaml:"density"`
	Pattern      string        `yaml:"pattern"`
	Seed         int64         `yaml:"seed"`
	HUDWidth     int           `yaml:"hud_width"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Side:         50,
		StepInterval: 100 * time.Millisecond,
		Scale:        12,
		Workers:      1,
		Density:      0.25,
		Seed:         42,
		HUDWidth:     168,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Side, "side", c.Side, "grid side length (board spans 0..side inclusive)")
	fs.DurationVar(&c.StepInterval, "interval", c.StepInterval, "time between generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands stepped in parallel")
	fs.Float64Var(&c.Density, "density", c.Density, "alive density for randomized boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name (empty for a blank board)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// LoadFile reads a YAML configuration file over the defaults. Fields
// absent from the file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Resolve merges a file config under the receiver: file values apply
// except where a flag was set explicitly on the command line, which
// always wins. The receiver must be the flag-parsed config bound to fs.
func (c Config) Resolve(fileCfg Config, fs *flag.FlagSet) Config {
	out := fileCfg
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "side":
			out.Side = c.Side
		case "interval":
			out.StepInterval = c.StepInterval
		case "scale":
			out.Scale = c.Scale
		case "workers":
			out.Workers = c.Workers
		case "density":
			out.Density = c.Density
		case "pattern":
			out.Pattern = c.Pattern
		case "seed":
			out.Seed = c.Seed
		case "hud":
			out.HUDWidth = c.HUDWidth
		}
	})
	return out
}

// Validate floors every field to a usable value.
func (c *Config) Validate() {
	if c.Side < 0 {
		c.Side = 0
	}
	if c.StepInterval <= 0 {
		c.StepInterval = 100 * time.Millisecond
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
}
