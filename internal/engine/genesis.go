package engine

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"chroma-ca/internal/bout"
	"chroma-ca/internal/core"
	"chroma-ca/internal/field"
	"chroma-ca/internal/params"
)

// Genesis fills generation zero.
type Genesis interface {
	Populate(f *field.Field[bout.Individual], seed int64)
}

// GenesisFunc adapts a plain function to Genesis.
type GenesisFunc func(f *field.Field[bout.Individual], seed int64)

// Populate calls fn.
func (fn GenesisFunc) Populate(f *field.Field[bout.Individual], seed int64) { fn(f, seed) }

// RandomGenesis gives every cell an independent uniformly random hue.
var RandomGenesis = GenesisFunc(func(f *field.Field[bout.Individual], seed int64) {
	rng := core.NewRNG(seed)
	hues := make([]uint8, f.W)
	for _, row := range f.Rows() {
		rng.FillBytes(hues)
		for c, h := range hues {
			row[c] = bout.Genesis(h)
		}
	}
})

// noiseScale is the feature size of NoiseGenesis regions, in cells.
const noiseScale = 48.0

// NoiseGenesis paints smooth hue regions from 2D simplex noise, so that
// neighbouring cells start out mostly cooperating.
var NoiseGenesis = GenesisFunc(func(f *field.Field[bout.Individual], seed int64) {
	noise := opensimplex.NewNormalized(seed)
	for r, row := range f.Rows() {
		for c := range row {
			v := noise.Eval2(float64(c)/noiseScale, float64(r)/noiseScale)
			// three turns of the hue circle across the noise range
			row[c] = bout.Genesis(uint8(int(v*3*256) & 0xff))
		}
	}
})

// ParseGenesis resolves a genesis strategy by name.
func ParseGenesis(name string) (Genesis, error) {
	switch name {
	case "", "random":
		return RandomGenesis, nil
	case "noise":
		return NoiseGenesis, nil
	}
	return nil, fmt.Errorf("engine: unknown genesis %q", name)
}

// Seed builds generation zero for p using the given strategy.
func Seed(p *params.Parameters, boundary field.Boundary, genesis Genesis) (*Generation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f, err := field.New[bout.Individual](p.Width, p.Height, boundary)
	if err != nil {
		return nil, err
	}
	if genesis == nil {
		genesis = RandomGenesis
	}
	genesis.Populate(f, p.Seed)
	return NewGeneration(f, p), nil
}
