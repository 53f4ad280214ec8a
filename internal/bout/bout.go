// Package bout implements the per-cell neighbour game. Each individual plays
// its antagonists in turn, collecting a reward chosen by the hue separation
// between the two, and then hardens or softens depending on how competitive
// those encounters were.
package bout

import (
	"fmt"
	"iter"
	"math"

	"chroma-ca/internal/chroma"
	"chroma-ca/internal/params"
)

// Outcome classifies a single encounter.
type Outcome uint8

const (
	Cooperation Outcome = iota
	Win
	Loss
	Draw

	outcomeCount
)

func (o Outcome) String() string {
	switch o {
	case Cooperation:
		return "cooperation"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// rewardKind maps an outcome to the parameter paying for it.
func (o Outcome) rewardKind() params.Kind {
	switch o {
	case Win:
		return params.WinReward
	case Loss:
		return params.LossReward
	case Draw:
		return params.DrawReward
	default:
		return params.CooperationReward
	}
}

// references lists the reference angles in tie-break priority order.
var references = [outcomeCount]float64{
	Cooperation: 0,
	Win:         120,
	Loss:        -120,
	Draw:        180,
}

// Individual is a single cell: a colour trait and an accumulated score.
type Individual struct {
	Stats chroma.HSL
	Score uint8
}

// New returns an individual with the given trait and a zero score.
func New(hue, saturation, lightness uint8) Individual {
	return Individual{Stats: chroma.HSL{H: hue, S: saturation, L: lightness}}
}

// Genesis returns a fresh individual of the given hue at full saturation and
// mid lightness.
func Genesis(hue uint8) Individual {
	return New(hue, math.MaxUint8, math.MaxUint8/2)
}

func (i Individual) String() string {
	return fmt.Sprintf("[%s | %2d]", i.Stats, i.Score)
}

// Separation is the signed hue difference from antagonist to protagonist in
// degrees, within (-180, 180]. Positive means the protagonist leads.
func Separation(protagonist, antagonist chroma.HSL) float64 {
	steps := int8(protagonist.H - antagonist.H)
	if steps == math.MinInt8 {
		return 180
	}
	return float64(steps) * 360 / 256
}

func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Classify picks the outcome whose reference angle is nearest. Ties go to the
// earlier of cooperation, win, loss, draw.
func Classify(degrees float64) Outcome {
	best := Cooperation
	bestDist := angularDistance(degrees, references[Cooperation])
	for o := Win; o < outcomeCount; o++ {
		if d := angularDistance(degrees, references[o]); d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// Bout plays one encounter and returns the updated protagonist.
func (i Individual) Bout(antagonist Individual, p *params.Parameters) (Individual, Outcome) {
	outcome := Classify(Separation(i.Stats, antagonist.Stats))
	i.Score = saturatingAdd(i.Score, p.Reward(outcome.rewardKind()))
	return i, outcome
}

// BoutSeries plays every antagonist in order, then adjusts saturation. An
// individual with no antagonists is returned unchanged.
func (i Individual) BoutSeries(antagonists iter.Seq[Individual], p *params.Parameters) (Individual, Tally) {
	var tally Tally
	out := i
	for a := range antagonists {
		var o Outcome
		out, o = out.Bout(a, p)
		tally[o]++
	}
	if tally.Total() == 0 {
		return out, tally
	}
	if tally.Competitive() >= 0.5 {
		out.Stats.S = saturatingAdd(out.Stats.S, p.HardeningRate)
	} else {
		out.Stats.S = saturatingSub(out.Stats.S, p.SofteningRate)
	}
	return out, tally
}

func saturatingAdd(a, b uint8) uint8 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint8
}

func saturatingSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}
