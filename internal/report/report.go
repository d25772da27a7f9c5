package report

import (
	"fmt"
	"io"

	"github.com/alexkarev/rowaudit/internal/auditor"
)

// Render writes the audit analysis to w. topN bounds how many labels appear
// in the most/least drawn sections. Reports without valid statistics render
// "n/a" for every ratio-type field instead of misleading zeros.
func Render(w io.Writer, rep auditor.Report, verdict auditor.Verdict, topN int) {
	fmt.Fprintln(w, "Row Sampling Audit")
	fmt.Fprintln(w, "==================")
	fmt.Fprintf(w, "Population size:  %d\n", rep.PopulationSize)
	fmt.Fprintf(w, "Total draws:      %d\n", rep.TotalDraws)
	fmt.Fprintf(w, "Unique labels:    %d\n", rep.UniqueCount)
	fmt.Fprintf(w, "Coverage:         %s\n", ratio(rep, rep.CoverageRatio*100, "%.1f%%"))

	if rep.StatsValid && topN > 0 {
		fmt.Fprintf(w, "\nTop %d most drawn:\n", min(topN, len(rep.Counts)))
		for _, lc := range rep.Counts[:min(topN, len(rep.Counts))] {
			fmt.Fprintf(w, "  %s: %d draws\n", lc.Label, lc.Count)
		}

		fmt.Fprintf(w, "\nTop %d least drawn:\n", min(topN, len(rep.Counts)))
		bottom := rep.Counts[len(rep.Counts)-min(topN, len(rep.Counts)):]
		for i := len(bottom) - 1; i >= 0; i-- {
			fmt.Fprintf(w, "  %s: %d draws\n", bottom[i].Label, bottom[i].Count)
		}
	}

	fmt.Fprintln(w, "\nDistribution:")
	fmt.Fprintf(w, "  Mean draws per label:      %s\n", ratio(rep, rep.Mean, "%.2f"))
	fmt.Fprintf(w, "  Min/Max draws:             %s\n", minMax(rep))
	fmt.Fprintf(w, "  Standard deviation:        %s\n", ratio(rep, rep.StdDev, "%.2f"))
	fmt.Fprintf(w, "  Coefficient of variation:  %s\n", ratio(rep, rep.CV, "%.2f"))

	fmt.Fprintf(w, "\nVerdict: variation %s, coverage %s\n", verdict.Variation, verdict.Coverage)
}

func ratio(rep auditor.Report, v float64, format string) string {
	if rep.NotApplicable() {
		return "n/a"
	}
	return fmt.Sprintf(format, v)
}

func minMax(rep auditor.Report) string {
	if rep.NotApplicable() {
		return "n/a"
	}
	return fmt.Sprintf("%d/%d", rep.MinCount, rep.MaxCount)
}
