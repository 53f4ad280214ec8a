package arena

import (
	"fmt"
	"strconv"

	"chroma-ca/internal/engine"
	"chroma-ca/internal/field"
	"chroma-ca/internal/params"
)

// Config controls the arena simulation.
type Config struct {
	Params params.Parameters

	Workers  int
	History  int
	Boundary field.Boundary
	Genesis  string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Params:   params.Default(),
		History:  engine.DefaultLimit,
		Boundary: field.Toroidal,
		Genesis:  "random",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// A "config" entry names a YAML parameter file that is loaded first; the
// remaining keys override it.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if path, ok := cfg["config"]; ok && path != "" {
		p, err := params.Load(path)
		if err != nil {
			return c, err
		}
		c.Params = p
	}
	if v, ok := cfg["w"]; ok {
		if err := c.Params.SetString(params.FieldWidth, v); err != nil {
			return c, err
		}
	}
	if v, ok := cfg["h"]; ok {
		if err := c.Params.SetString(params.FieldHeight, v); err != nil {
			return c, err
		}
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("seed: %w", err)
		}
		c.Params.Seed = parsed
	}
	for _, k := range params.Kinds() {
		if v, ok := cfg[k.Key()]; ok {
			if err := c.Params.SetString(k, v); err != nil {
				return c, err
			}
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.History = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		b, err := field.ParseBoundary(v)
		if err != nil {
			return c, err
		}
		c.Boundary = b
	}
	if v, ok := cfg["genesis"]; ok {
		if _, err := engine.ParseGenesis(v); err != nil {
			return c, err
		}
		c.Genesis = v
	}
	return c, nil
}
