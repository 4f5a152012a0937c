package runner

import (
	"slices"
	"time"
)

// LatencyStats summarizes how long a case took to answer over its measured
// runs.
type LatencyStats struct {
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
	Mean    time.Duration `json:"mean"`
	P50     time.Duration `json:"p50"`
	P95     time.Duration `json:"p95"`
	Samples int           `json:"samples"`

	samples []time.Duration
}

func NewLatencyStats(samples []time.Duration) LatencyStats {
	if len(samples) == 0 {
		return LatencyStats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return LatencyStats{
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Mean:    total / time.Duration(len(sorted)),
		P50:     nearestRank(sorted, 50),
		P95:     nearestRank(sorted, 95),
		Samples: len(sorted),
		samples: sorted,
	}
}

// MergeLatencyStats recomputes stats over the samples of every input.
func MergeLatencyStats(stats ...LatencyStats) LatencyStats {
	var all []time.Duration
	for _, s := range stats {
		all = append(all, s.samples...)
	}
	return NewLatencyStats(all)
}

// nearestRank returns the smallest sample with at least p percent of the
// samples at or below it.
func nearestRank(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100
	return sorted[max(rank, 1)-1]
}

func (s LatencyStats) IsZero() bool {
	return s.Samples == 0
}
