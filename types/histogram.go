package types

// Histogram holds per-partition key counts for a sampled key batch.
//
// The histogram is dense: it always has exactly poolSize entries, indexed by
// partition number, including zero-count entries. Callers can detect starved
// partitions without a presence check.
//
// Histograms are produced fresh per statistics request and never mutated
// incrementally by the library after being returned.
type Histogram []uint64

// Total returns the number of sampled keys across all partitions.
func (h Histogram) Total() uint64 {
	var total uint64
	for _, c := range h {
		total += c
	}

	return total
}

// Partitions returns the number of partitions covered by the histogram.
func (h Histogram) Partitions() int {
	return len(h)
}

// Imbalance returns the load-skew ratio of the histogram: the difference
// between the most and least loaded partitions divided by the total count.
//
// The scheduling layer compares this ratio against an operator-chosen
// threshold (e.g. 0.15) to decide whether the pool needs rebalancing.
//
// Returns:
//   - float64: Skew ratio in [0.0, 1.0]; 0 for empty or single-partition histograms
func (h Histogram) Imbalance() float64 {
	if len(h) < 2 {
		return 0
	}

	minCount, maxCount := h[0], h[0]
	for _, c := range h[1:] {
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}

	total := h.Total()
	if total == 0 {
		return 0
	}

	return float64(maxCount-minCount) / float64(total)
}
