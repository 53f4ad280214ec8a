// Command reward-sweep runs the bout field under a grid of reward settings in
// parallel and ranks them by how much hue diversity survives.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"chroma-ca/internal/params"
	"chroma-ca/internal/sims/arena"
	"chroma-ca/internal/telemetry"
)

type rewardSet struct {
	cooperation uint8
	win         uint8
	loss        uint8
	draw        uint8
}

func (r rewardSet) String() string {
	return fmt.Sprintf("coop=%d win=%d loss=%d draw=%d", r.cooperation, r.win, r.loss, r.draw)
}

type scenarioResult struct {
	rewards rewardSet
	final   telemetry.GenerationStats
}

func main() {
	steps := flag.Int("steps", 60, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios run concurrently")
	size := flag.Int("size", 96, "field width and height")
	seed := flag.Int64("seed", 1, "seed shared by every scenario")
	values := flag.String("values", "0,1,3,6", "comma-separated reward values to combine")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	options, err := parseValues(*values)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reward-sweep:", err)
		os.Exit(2)
	}

	base := arena.DefaultConfig()
	base.Params.Width = *size
	base.Params.Height = *size
	base.Params.Seed = *seed
	// scenarios already run in parallel
	base.Workers = 1
	base.History = 1

	sets := combinations(options)
	fmt.Printf("Sweeping %d reward sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	start := time.Now()
	all, err := sweep(base, sets, *steps, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reward-sweep:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d by hue entropy (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) entropy=%.3f score=%.1f sat=%.1f compet=%.2f %s\n",
			i+1, res.final.HueEntropy, res.final.ScoreMean, res.final.SaturationMean, res.final.Competitive, res.rewards)
	}
}

func parseValues(s string) ([]uint8, error) {
	var out []uint8
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("reward value %q: %w", part, err)
		}
		out = append(out, uint8(v))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no reward values given")
	}
	return out, nil
}

func combinations(values []uint8) []rewardSet {
	var sets []rewardSet
	for _, coop := range values {
		for _, win := range values {
			for _, loss := range values {
				for _, draw := range values {
					sets = append(sets, rewardSet{cooperation: coop, win: win, loss: loss, draw: draw})
				}
			}
		}
	}
	return sets
}

// sweep runs every set on a pool of workers and returns the results ordered
// by descending final hue entropy.
func sweep(base arena.Config, sets []rewardSet, steps, workers int) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan rewardSet)
	results := make(chan scenarioResult)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rewards := range jobs {
				res, err := runScenario(base, rewards, steps)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, rewards := range sets {
			jobs <- rewards
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].final.HueEntropy != all[j].final.HueEntropy {
			return all[i].final.HueEntropy > all[j].final.HueEntropy
		}
		return all[i].rewards.String() < all[j].rewards.String()
	})
	return all, nil
}

func runScenario(base arena.Config, rewards rewardSet, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Params.Set(params.CooperationReward, params.Byte(rewards.cooperation))
	cfg.Params.Set(params.WinReward, params.Byte(rewards.win))
	cfg.Params.Set(params.LossReward, params.Byte(rewards.loss))
	cfg.Params.Set(params.DrawReward, params.Byte(rewards.draw))

	a, err := arena.New(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	for range steps {
		a.Step()
	}
	return scenarioResult{rewards: rewards, final: a.Stats()}, nil
}
