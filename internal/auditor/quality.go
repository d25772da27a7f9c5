package auditor

const (
	VariationGood = "good"
	VariationHigh = "highly-varied"

	CoverageAdequate = "adequate"
	CoverageLimited  = "limited"
)

const (
	DefaultMaxCV       = 1.0
	DefaultMinCoverage = 0.5
)

// Thresholds configures Classify. MaxCV bounds the coefficient of variation
// below which a distribution counts as evenly spread; MinCoverage is the
// fraction of the population that must have been drawn at least once.
type Thresholds struct {
	MaxCV       float64
	MinCoverage float64
}

// Verdict carries the two independent qualitative judgments over a report:
// how even the draw distribution is, and how much of the population it
// touched.
type Verdict struct {
	Variation string
	Coverage  string
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxCV:       DefaultMaxCV,
		MinCoverage: DefaultMinCoverage,
	}
}

// Classify judges a report against the given thresholds. Zero-value
// threshold fields fall back to the defaults. Comparisons are strict
// (CV < MaxCV, coverage > MinCoverage), so boundary values classify as
// highly-varied and limited. A report without valid statistics can vouch
// for nothing and classifies as highly-varied with limited coverage.
func Classify(rep Report, t Thresholds) Verdict {
	if t.MaxCV == 0 {
		t.MaxCV = DefaultMaxCV
	}
	if t.MinCoverage == 0 {
		t.MinCoverage = DefaultMinCoverage
	}

	v := Verdict{Variation: VariationHigh, Coverage: CoverageLimited}
	if !rep.StatsValid {
		return v
	}

	if rep.CV < t.MaxCV {
		v.Variation = VariationGood
	}
	if rep.CoverageRatio > t.MinCoverage {
		v.Coverage = CoverageAdequate
	}

	return v
}
