// Package repunit provides the public API of the repunit solver: the
// shortest infix expression over repeated-digit constants for every result
// in [0, MaxResult].
//
// Example:
//
//	sols, err := repunit.GetSequence(6)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sols[1000])
package repunit

import (
	"github.com/mesh-intelligence/repunit/internal/search"
	"github.com/mesh-intelligence/repunit/pkg/types"
)

// Version is the release version of the module.
const Version = "0.1.0"

// GetSequence searches rounds 1..rounds over the default alphabet and returns
// the solution table indexed by result. Unreached results hold "".
func GetSequence(rounds int) ([]string, error) {
	cfg := types.DefaultConfig()
	cfg.Rounds = rounds
	return Solve(cfg)
}

// Solve runs the search described by cfg and returns the solution table
// indexed by result.
func Solve(cfg types.Config) ([]string, error) {
	table, err := search.Run(cfg)
	if err != nil {
		return nil, err
	}
	return table.Entries(), nil
}
