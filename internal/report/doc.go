// Package report renders an audit report as the human-readable analysis
// text printed by the CLI: totals, coverage, the most and least drawn
// labels, the dispersion block and the final verdicts.
package report
