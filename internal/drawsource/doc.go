// Package drawsource produces the draw sequences the auditor consumes.
//
// Three producers cover the ways selections reach an audit:
//
//   - Uniform: a seeded pseudo-random generator simulating the row selection
//     locally, for reproducible self-audits
//   - Scraper: regexp extraction of selection labels from another process's
//     debug log, mapped back to population indices
//   - CommandRunner: drives the external load-test tool as a subprocess under
//     a deadline and captures its output for the Scraper
//
// All blocking, timeout and text-parsing concerns live here so the auditor
// core stays pure. Whatever the producer, the core only ever sees a plain
// []int of indices.
package drawsource
