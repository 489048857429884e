package util

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/guregu/null.v3"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
)

// quartiles is the number of groups the quantile cut points divide a sample into.
const quartiles = 4

// ExpandFrequencies turns a grade-point frequency distribution into the per-student
// sample it summarizes: every GPA appears Freq times.
func ExpandFrequencies(dist []*model.GPAFrequency) []float64 {
	total := 0
	for _, d := range dist {
		if d.Freq > 0 {
			total += d.Freq
		}
	}

	sample := make([]float64, 0, total)
	for _, d := range dist {
		for i := 0; i < d.Freq; i++ {
			sample = append(sample, d.GPA)
		}
	}
	return sample
}

// DescribeSample computes descriptive statistics of sample. It returns nil for an
// empty sample.
//
// The mode is the most frequent value, the smallest one on ties. The standard
// deviation is the sample (n-1) one and is null for fewer than two values. Quartiles
// use the exclusive method, interpolating at positions i(n+1)/4.
func DescribeSample(sample []float64) *model.DescriptiveStats {
	n := len(sample)
	if n == 0 {
		return nil
	}

	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	stats := &model.DescriptiveStats{
		N:         n,
		Min:       sorted[0],
		Max:       sorted[n-1],
		Mean:      stat.Mean(sorted, nil),
		Median:    median(sorted),
		Mode:      mode(sorted),
		Quantiles: exclusiveQuantiles(sorted, quartiles),
	}
	if n > 1 {
		stats.Stdev = null.FloatFrom(stat.StdDev(sorted, nil))
	}

	return stats
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode scans runs of equal values; sorted input makes the first longest run the
// smallest mode.
func mode(sorted []float64) float64 {
	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestCount {
			best, bestCount = sorted[i], j-i
		}
		i = j
	}
	return best
}

func exclusiveQuantiles(sorted []float64, groups int) []float64 {
	ld := len(sorted)
	cuts := make([]float64, 0, groups-1)

	if ld == 1 {
		for i := 1; i < groups; i++ {
			cuts = append(cuts, sorted[0])
		}
		return cuts
	}

	m := ld + 1
	for i := 1; i < groups; i++ {
		j := i * m / groups
		if j < 1 {
			j = 1
		} else if j > ld-1 {
			j = ld - 1
		}
		delta := i*m - j*groups
		cuts = append(cuts, (sorted[j-1]*float64(groups-delta)+sorted[j]*float64(delta))/float64(groups))
	}
	return cuts
}
