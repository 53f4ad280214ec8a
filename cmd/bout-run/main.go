// Command bout-run advances a hue bout field without a window and records
// per-generation telemetry.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"chroma-ca/internal/render"
	"chroma-ca/internal/sims/arena"
	"chroma-ca/internal/telemetry"
)

type options struct {
	steps    int
	config   string
	out      string
	workers  int
	logEvery int
	seed     int64
	boundary string
	genesis  string
	verbose  bool
}

func main() {
	var opts options
	flag.IntVar(&opts.steps, "steps", 200, "generations to simulate")
	flag.StringVar(&opts.config, "config", "", "YAML parameter file")
	flag.StringVar(&opts.out, "out", "", "output directory for telemetry.csv, config.yaml and final.png")
	flag.IntVar(&opts.workers, "workers", 0, "worker goroutines per step (0 = GOMAXPROCS)")
	flag.IntVar(&opts.logEvery, "log-every", 10, "log statistics every N generations (0 disables)")
	flag.Int64Var(&opts.seed, "seed", 0, "override the configured seed (0 keeps it)")
	flag.StringVar(&opts.boundary, "boundary", "toroidal", "edge policy: toroidal or truncate")
	flag.StringVar(&opts.genesis, "genesis", "random", "initial field: random or noise")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(opts, logger); err != nil {
		fmt.Fprintln(os.Stderr, "bout-run:", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	m := map[string]string{
		"workers":  strconv.Itoa(opts.workers),
		"boundary": opts.boundary,
		"genesis":  opts.genesis,
	}
	if opts.config != "" {
		m["config"] = opts.config
	}
	if opts.seed != 0 {
		m["seed"] = strconv.FormatInt(opts.seed, 10)
	}
	cfg, err := arena.FromMap(m)
	if err != nil {
		return err
	}
	a, err := arena.New(cfg)
	if err != nil {
		return err
	}

	out, err := telemetry.NewOutput(opts.out)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteParameters(a.History().Parameters()); err != nil {
		return err
	}

	size := a.Size()
	logger.Info("run started", "width", size.W, "height", size.H, "steps", opts.steps,
		"seed", a.History().Parameters().Seed, "boundary", opts.boundary, "genesis", opts.genesis)

	if err := out.WriteStats(a.Stats()); err != nil {
		return err
	}
	start := time.Now()
	for i := 1; i <= opts.steps; i++ {
		a.Step()
		stats := a.Stats()
		if err := out.WriteStats(stats); err != nil {
			return err
		}
		if opts.logEvery > 0 && i%opts.logEvery == 0 {
			logger.Info("generation", "stats", stats)
		}
	}
	elapsed := time.Since(start)
	logger.Info("run finished", "elapsed", elapsed.Round(time.Millisecond), "final", a.Stats())

	if out != nil {
		if err := render.WritePNG(out.Path("final.png"), a.Pixels(), size.W, size.H); err != nil {
			return err
		}
		logger.Info("wrote outputs", "dir", out.Dir())
	}
	return out.Close()
}
