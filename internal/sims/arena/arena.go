// Package arena registers the hue bout simulation with the sim registry and
// adapts an engine.History to the window and headless runners.
package arena

import (
	"log/slog"

	"chroma-ca/internal/core"
	"chroma-ca/internal/engine"
	"chroma-ca/internal/telemetry"
)

// Arena drives a History and caches the current frame.
type Arena struct {
	cfg     Config
	logger  *slog.Logger
	history *engine.History

	pixels   []byte
	pixelGen *engine.Generation
	stats    telemetry.GenerationStats
	statsGen *engine.Generation
}

// New builds an arena and seeds generation zero.
func New(cfg Config) (*Arena, error) {
	a := &Arena{cfg: cfg, logger: slog.Default()}
	if err := a.reset(cfg.Params.Seed); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) reset(seed int64) error {
	genesis, err := engine.ParseGenesis(a.cfg.Genesis)
	if err != nil {
		return err
	}
	p := a.cfg.Params
	p.Seed = seed
	h, err := engine.NewHistory(p,
		engine.WithWorkers(a.cfg.Workers),
		engine.WithLimit(a.cfg.History),
		engine.WithBoundary(a.cfg.Boundary),
		engine.WithGenesis(genesis),
		engine.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	a.history = h
	a.pixelGen, a.statsGen = nil, nil
	return nil
}

// Name returns the simulation identifier.
func (a *Arena) Name() string { return "arena" }

// Size reports the grid dimensions.
func (a *Arena) Size() core.Size { return a.history.Current().Size() }

// History exposes the underlying run.
func (a *Arena) History() *engine.History { return a.history }

// Reset restarts the run from genesis with the given seed. A zero seed reuses
// the configured one.
func (a *Arena) Reset(seed int64) {
	if seed == 0 {
		seed = a.cfg.Params.Seed
	}
	if err := a.reset(seed); err != nil {
		// the configuration already produced a history once
		a.logger.Error("reset failed", "seed", seed, "error", err)
	}
}

// Step advances one generation.
func (a *Arena) Step() { a.history.Step() }

// Pixels returns the current generation as packed RGB triples.
func (a *Arena) Pixels() []byte {
	g := a.history.Current()
	if g != a.pixelGen {
		a.pixels = g.AppendRGB(a.pixels[:0])
		a.pixelGen = g
	}
	return a.pixels
}

// Stats summarises the current generation.
func (a *Arena) Stats() telemetry.GenerationStats {
	g := a.history.Current()
	if g != a.statsGen {
		a.stats = telemetry.Compute(g)
		a.statsGen = g
	}
	return a.stats
}

// StatsLines implements core.StatsProvider.
func (a *Arena) StatsLines() []string { return a.Stats().Lines() }

// Parameters implements core.ParameterProvider.
func (a *Arena) Parameters() core.ParameterSnapshot {
	snap := a.history.Parameters().Snapshot()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "boundary", Label: "Boundary", Type: core.ParamTypeText, Value: a.cfg.Boundary.String()},
			{Key: "genesis", Label: "Genesis", Type: core.ParamTypeText, Value: a.cfg.Genesis},
		},
	})
	return snap
}

// ScoreMask returns each cell's score, row-major.
func (a *Arena) ScoreMask() []uint8 {
	cells := a.history.Current().Field().Values()
	mask := make([]uint8, len(cells))
	for i, ind := range cells {
		mask[i] = ind.Score
	}
	return mask
}

// SaturationMask returns each cell's saturation, row-major.
func (a *Arena) SaturationMask() []uint8 {
	cells := a.history.Current().Field().Values()
	mask := make([]uint8, len(cells))
	for i, ind := range cells {
		mask[i] = ind.Stats.S
	}
	return mask
}

func init() {
	core.Register("arena", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
