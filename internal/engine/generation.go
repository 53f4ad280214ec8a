// Package engine advances the grid of individuals one generation at a time
// and keeps the recent history of generations.
package engine

import (
	"chroma-ca/internal/bout"
	"chroma-ca/internal/core"
	"chroma-ca/internal/field"
	"chroma-ca/internal/params"
)

// Generation is an immutable snapshot of the grid. It shares the run's
// parameters with every other generation of the same history.
type Generation struct {
	index  uint64
	field  *field.Field[bout.Individual]
	params *params.Parameters
	tally  bout.Tally
}

// NewGeneration wraps an existing grid as generation zero. The grid must not
// be modified afterwards.
func NewGeneration(f *field.Field[bout.Individual], p *params.Parameters) *Generation {
	return &Generation{field: f, params: p}
}

// Index is the number of steps taken since genesis.
func (g *Generation) Index() uint64 { return g.index }

// Field exposes the grid. Callers must treat it as read-only.
func (g *Generation) Field() *field.Field[bout.Individual] { return g.field }

// Parameters returns the shared parameter handle.
func (g *Generation) Parameters() *params.Parameters { return g.params }

// Tally counts the outcomes of the bouts that produced this generation.
func (g *Generation) Tally() bout.Tally { return g.tally }

// Size reports the grid dimensions.
func (g *Generation) Size() core.Size { return core.Size{W: g.field.W, H: g.field.H} }

// At returns the individual at the given cell.
func (g *Generation) At(row, column int) bout.Individual {
	return g.field.At(field.Coordinate{Row: row, Column: column})
}

// AppendRGB appends one RGB triple per cell, row-major.
func (g *Generation) AppendRGB(dst []byte) []byte {
	for _, ind := range g.field.Values() {
		c := ind.Stats.RGB()
		dst = append(dst, c.R, c.G, c.B)
	}
	return dst
}

// RGB returns the generation as packed RGB triples, 3×W×H bytes.
func (g *Generation) RGB() []byte {
	return g.AppendRGB(make([]byte, 0, 3*len(g.field.Values())))
}
