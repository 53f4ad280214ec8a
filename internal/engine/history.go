package engine

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"chroma-ca/internal/field"
	"chroma-ca/internal/params"
)

// DefaultLimit is the number of generations a History retains by default.
const DefaultLimit = 8

// History owns a run: its parameters and a rolling window of generations.
// Step and Current may be called from different goroutines; Current never
// observes a partially computed generation.
type History struct {
	params *params.Parameters
	engine Engine
	limit  int
	logger *slog.Logger

	mu      sync.Mutex
	gens    []*Generation
	current atomic.Pointer[Generation]
}

type options struct {
	workers  int
	limit    int
	genesis  Genesis
	boundary field.Boundary
	logger   *slog.Logger
}

// Option customises NewHistory.
type Option func(*options)

// WithWorkers sets the number of goroutines per step. Zero means one per CPU.
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithLimit sets how many generations are retained. Values below one keep
// only the current generation.
func WithLimit(n int) Option { return func(o *options) { o.limit = n } }

// WithGenesis selects how generation zero is populated.
func WithGenesis(g Genesis) Option { return func(o *options) { o.genesis = g } }

// WithBoundary selects the grid edge policy.
func WithBoundary(b field.Boundary) Option { return func(o *options) { o.boundary = b } }

// WithLogger routes step logging to l.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// NewHistory seeds generation zero from p. The parameters are copied, so later
// changes to p do not affect the run.
func NewHistory(p params.Parameters, opts ...Option) (*History, error) {
	o := options{limit: DefaultLimit, genesis: RandomGenesis, boundary: field.Toroidal}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit < 1 {
		o.limit = 1
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	shared := p.Clone()
	gen, err := Seed(shared, o.boundary, o.genesis)
	if err != nil {
		return nil, err
	}
	h := &History{
		params: shared,
		engine: Engine{Workers: o.workers},
		limit:  o.limit,
		logger: o.logger,
		gens:   []*Generation{gen},
	}
	h.current.Store(gen)
	h.logger.Debug("genesis", "width", shared.Width, "height", shared.Height, "seed", shared.Seed, "boundary", o.boundary.String())
	return h, nil
}

// Parameters returns the run's shared, read-only parameters.
func (h *History) Parameters() *params.Parameters { return h.params }

// Current returns the most recent generation.
func (h *History) Current() *Generation { return h.current.Load() }

// Step computes the next generation from the current one and publishes it.
func (h *History) Step() *Generation {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := time.Now()
	next := h.engine.Advance(h.gens[len(h.gens)-1])
	h.gens = append(h.gens, next)
	if over := len(h.gens) - h.limit; over > 0 {
		clear(h.gens[:over])
		h.gens = h.gens[over:]
	}
	h.current.Store(next)

	h.logger.Debug("generation",
		"index", next.Index(),
		"elapsed", time.Since(start),
		"competitive", next.Tally().Competitive(),
	)
	return next
}

// Len reports how many generations are retained.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.gens)
}

// Generation returns a retained generation by index.
func (h *History) Generation(index uint64) (*Generation, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	first := h.gens[0].Index()
	if index < first || index-first >= uint64(len(h.gens)) {
		return nil, false
	}
	return h.gens[index-first], true
}
