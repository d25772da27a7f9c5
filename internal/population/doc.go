// Package population loads the audited data set from CSV.
//
// The load-test tool under audit picks rows from a referential data CSV; this
// package turns that file into an auditor.Population by reading the header,
// locating the configured label column (BankId in the original data set) and
// emitting one record per data row. Rows keep their file order, so a draw
// index produced against the file resolves to the same record here.
package population
