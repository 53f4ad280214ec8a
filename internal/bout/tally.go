package bout

// Tally counts encounter outcomes.
type Tally [outcomeCount]uint64

// Total is the number of encounters.
func (t Tally) Total() uint64 {
	var n uint64
	for _, c := range t {
		n += c
	}
	return n
}

// Count returns the encounters that ended in o.
func (t Tally) Count(o Outcome) uint64 { return t[o] }

// Competitive is the share of wins and losses, or 0 without encounters.
func (t Tally) Competitive() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t[Win]+t[Loss]) / float64(total)
}

// Add merges another tally into t.
func (t *Tally) Add(o Tally) {
	for i := range t {
		t[i] += o[i]
	}
}
