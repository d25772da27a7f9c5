// Package auditor computes how uniformly a sequence of random index draws
// covers a labeled population.
//
// It is the statistical core of rowaudit: given the rows of a data file and
// the indices a load-test tool picked from them, Audit tabulates per-label
// draw counts and derives coverage and dispersion statistics (mean, min/max,
// standard deviation, coefficient of variation). Classify turns a report into
// qualitative verdicts against caller-supplied thresholds.
//
// Both entry points are pure functions: no I/O, no hidden state, no
// randomness of their own. The draws are produced elsewhere (see
// internal/drawsource) and handed in as a finite slice, so identical inputs
// always yield identical reports and the package is safe for concurrent use.
//
// Statistics follow the drawn-labels convention: mean, min/max, standard
// deviation and CV are computed only over labels that received at least one
// draw, while the coverage ratio divides by the full population size.
package auditor
