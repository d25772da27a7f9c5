package auditor

import (
	"math"
	"sort"
)

// Record is one item of the audited population. Only the label matters to
// the auditor; the row's remaining columns never reach this package.
type Record struct {
	Label string
}

// Population is the ordered, immutable set of records an audit runs against.
type Population []Record

// LabelCount pairs a label with the number of draws that resolved to it.
type LabelCount struct {
	Label string
	Count int
}

// Report is the immutable result of a single audit run.
//
// Counts holds every drawn label sorted by descending count (ties broken by
// label) so callers can render most/least-drawn tables directly. When
// StatsValid is false the draw sequence was empty and all ratio-type fields
// are zero placeholders, not computed values.
type Report struct {
	PopulationSize int
	TotalDraws     int
	UniqueCount    int
	CoverageRatio  float64
	Mean           float64
	MinCount       int
	MaxCount       int
	StdDev         float64
	CV             float64
	StatsValid     bool
	Counts         []LabelCount
}

// NotApplicable reports whether the ratio fields carry meaning. It is the
// inverse of StatsValid, named for the way reports are rendered.
func (r Report) NotApplicable() bool {
	return !r.StatsValid
}

// Audit resolves every draw to its record's label, counts occurrences and
// derives the distribution statistics.
//
// The population must be non-empty and every draw must fall in
// [0, len(population)); violations return ErrInvalidPopulation or an
// IndexError respectively. An empty draw sequence is not an error: the
// returned report has UniqueCount zero and StatsValid false.
func Audit(population Population, draws []int) (Report, error) {
	if len(population) == 0 {
		return Report{}, ErrInvalidPopulation
	}

	counts := make(map[string]int)
	for pos, idx := range draws {
		if idx < 0 || idx >= len(population) {
			return Report{}, &IndexError{Index: idx, Position: pos, Size: len(population)}
		}
		counts[population[idx].Label]++
	}

	rep := Report{
		PopulationSize: len(population),
		TotalDraws:     len(draws),
		UniqueCount:    len(counts),
	}

	if len(counts) == 0 {
		return rep, nil
	}

	rep.CoverageRatio = float64(rep.UniqueCount) / float64(rep.PopulationSize)
	rep.Counts = sortedCounts(counts)
	rep.StatsValid = true

	// Dispersion is computed over drawn labels only; never-drawn labels
	// appear in the coverage denominator but not here.
	rep.Mean = float64(rep.TotalDraws) / float64(rep.UniqueCount)
	rep.MinCount = rep.Counts[len(rep.Counts)-1].Count
	rep.MaxCount = rep.Counts[0].Count
	rep.StdDev = stdDev(rep.Counts, rep.Mean)
	rep.CV = rep.StdDev / rep.Mean

	return rep, nil
}

func sortedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}

	// Ties break by label so identical inputs always produce an
	// identical report.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	return out
}

func stdDev(counts []LabelCount, mean float64) float64 {
	var sum float64
	for _, lc := range counts {
		d := float64(lc.Count) - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(counts)))
}
