// Package types defines the term model, the search alphabet, run
// configuration, and the standard errors for the repunit solver.
package types
