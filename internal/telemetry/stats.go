// Package telemetry summarises generations for logging and CSV output.
package telemetry

import (
	"fmt"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"

	"chroma-ca/internal/bout"
	"chroma-ca/internal/chroma"
	"chroma-ca/internal/engine"
)

// hueBins is the histogram resolution used for hue diversity.
const hueBins = 32

// GenerationStats holds aggregate statistics for one generation.
type GenerationStats struct {
	Generation uint64 `csv:"generation"`
	Cells      int    `csv:"cells"`

	ScoreMean float64 `csv:"score_mean"`
	ScoreStd  float64 `csv:"score_std"`
	ScoreP10  float64 `csv:"score_p10"`
	ScoreP50  float64 `csv:"score_p50"`
	ScoreP90  float64 `csv:"score_p90"`
	Saturated int     `csv:"score_saturated"`

	SaturationMean float64 `csv:"saturation_mean"`
	SaturationStd  float64 `csv:"saturation_std"`

	// HueEntropy is the Shannon entropy (nats) of a 32-bin hue histogram.
	HueEntropy float64 `csv:"hue_entropy"`
	// DominantHue is the centre of the most populated hue bin, in degrees.
	DominantHue float64 `csv:"dominant_hue"`

	Cooperations uint64  `csv:"cooperations"`
	Wins         uint64  `csv:"wins"`
	Losses       uint64  `csv:"losses"`
	Draws        uint64  `csv:"draws"`
	Competitive  float64 `csv:"competitive"`
}

// Compute summarises g.
func Compute(g *engine.Generation) GenerationStats {
	cells := g.Field().Values()
	scores := make([]float64, len(cells))
	sats := make([]float64, len(cells))
	hist := make([]float64, hueBins)
	saturated := 0
	for i, ind := range cells {
		scores[i] = float64(ind.Score)
		sats[i] = float64(ind.Stats.S)
		hist[int(ind.Stats.H)*hueBins/256]++
		if ind.Score == 255 {
			saturated++
		}
	}

	s := GenerationStats{Generation: g.Index(), Cells: len(cells), Saturated: saturated}
	s.ScoreMean, s.ScoreStd = meanStd(scores)
	s.SaturationMean, s.SaturationStd = meanStd(sats)
	s.ScoreP10, s.ScoreP50, s.ScoreP90 = quantiles(scores)

	peak := 0
	for i := range hist {
		if hist[i] > hist[peak] {
			peak = i
		}
	}
	total := float64(len(cells))
	for i := range hist {
		hist[i] /= total
	}
	s.DominantHue = binCentre(peak).Degrees()
	s.HueEntropy = stat.Entropy(hist)

	t := g.Tally()
	s.Cooperations = t.Count(bout.Cooperation)
	s.Wins = t.Count(bout.Win)
	s.Losses = t.Count(bout.Loss)
	s.Draws = t.Count(bout.Draw)
	s.Competitive = t.Competitive()
	return s
}

func binCentre(bin int) chroma.HSL {
	const width = 256 / hueBins
	return chroma.HSL{H: uint8(bin*width + width/2)}
}

func meanStd(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		if len(xs) == 1 {
			return xs[0], 0
		}
		return 0, 0
	}
	return stat.MeanStdDev(xs, nil)
}

func quantiles(xs []float64) (p10, p50, p90 float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	q := func(p float64) float64 { return stat.Quantile(p, stat.LinInterp, sorted, nil) }
	return q(0.1), q(0.5), q(0.9)
}

// Lines renders the headline numbers for on-screen display.
func (s GenerationStats) Lines() []string {
	return []string{
		fmt.Sprintf("generation %d", s.Generation),
		fmt.Sprintf("score   %.1f ± %.1f", s.ScoreMean, s.ScoreStd),
		fmt.Sprintf("sat     %.1f ± %.1f", s.SaturationMean, s.SaturationStd),
		fmt.Sprintf("hue H   %.3f", s.HueEntropy),
		fmt.Sprintf("hue top %.0f°", s.DominantHue),
		fmt.Sprintf("compet  %.1f%%", s.Competitive*100),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("generation", s.Generation),
		slog.Float64("score_mean", s.ScoreMean),
		slog.Float64("score_p50", s.ScoreP50),
		slog.Int("score_saturated", s.Saturated),
		slog.Float64("saturation_mean", s.SaturationMean),
		slog.Float64("hue_entropy", s.HueEntropy),
		slog.Float64("dominant_hue", s.DominantHue),
		slog.Float64("competitive", s.Competitive),
	)
}
