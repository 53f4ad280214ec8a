package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"chroma-ca/internal/bout"
	"chroma-ca/internal/field"
	"chroma-ca/internal/params"
)

// parallelThreshold is the minimum cell count worth fanning out.
const parallelThreshold = 1024

// Engine computes successive generations. The zero value uses one worker per
// available CPU.
type Engine struct {
	Workers int
}

func (e Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// rowChunk is a half-open range of rows owned by one worker.
type rowChunk struct {
	start, end int
}

func chunkRows(h, workers int) []rowChunk {
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}
	size := (h + workers - 1) / workers
	chunks := make([]rowChunk, 0, workers)
	for start := 0; start < h; start += size {
		chunks = append(chunks, rowChunk{start: start, end: min(start+size, h)})
	}
	return chunks
}

// Advance produces the next generation. Each cell plays its Moore neighbours
// from prev only, so rows are computed in parallel and written to disjoint
// parts of a fresh grid. The result does not depend on the worker count.
func (e Engine) Advance(prev *Generation) *Generation {
	old := prev.field
	rows := make([][]bout.Individual, old.H)

	workers := e.workers()
	if old.W*old.H < parallelThreshold {
		workers = 1
	}
	chunks := chunkRows(old.H, workers)
	tallies := make([]bout.Tally, len(chunks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			tallies[i] = advanceRows(old, prev.params, rows, chunk)
			return nil
		})
	}
	// advanceRows cannot fail; Wait is the end-of-generation barrier.
	_ = g.Wait()

	next, err := field.FromRows(rows, old.Boundary())
	if err != nil {
		// rows mirror the shape of a valid grid
		panic(err)
	}
	var tally bout.Tally
	for _, t := range tallies {
		tally.Add(t)
	}
	return &Generation{index: prev.index + 1, field: next, params: prev.params, tally: tally}
}

func advanceRows(old *field.Field[bout.Individual], p *params.Parameters, rows [][]bout.Individual, chunk rowChunk) bout.Tally {
	var tally bout.Tally
	for r := chunk.start; r < chunk.end; r++ {
		line := make([]bout.Individual, old.W)
		for c, protagonist := range old.Row(r) {
			antagonists := old.Kernel(field.Coordinate{Row: r, Column: c}, field.Moore)
			next, t := protagonist.BoutSeries(antagonists, p)
			line[c] = next
			tally.Add(t)
		}
		rows[r] = line
	}
	return tally
}
