package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	SimTPS  int
	Seed    int64
	Params  string
	Workers int
	Width   int
	Height  int
	Panel   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "arena", Scale: 3, TPS: 60, SimTPS: 20, Seed: 42, Width: 256, Height: 192, Panel: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Params, "config", c.Params, "YAML parameter file")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines per step (0 = GOMAXPROCS)")
	fs.IntVar(&c.Width, "w", c.Width, "field width")
	fs.IntVar(&c.Height, "h", c.Height, "field height")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
}

// SimConfig renders the settings a sim factory understands. Width, height and
// seed are only passed when set explicitly so a config file can supply them.
func (c *Config) SimConfig(explicit map[string]bool) map[string]string {
	cfg := map[string]string{
		"workers": strconv.Itoa(c.Workers),
	}
	if c.Params != "" {
		cfg["config"] = c.Params
	}
	if c.Params == "" || explicit["seed"] {
		cfg["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	if c.Params == "" || explicit["w"] {
		cfg["w"] = strconv.Itoa(c.Width)
	}
	if c.Params == "" || explicit["h"] {
		cfg["h"] = strconv.Itoa(c.Height)
	}
	return cfg
}
