package types

import "errors"

// RunStore persists solver runs and answers lookups against the latest one.
// Callers attach to a data directory, use the store, and detach when done.
type RunStore interface {
	// Attach opens the store in dataDir, creating it if needed.
	// Returns ErrStoreAttached if called while already attached.
	Attach(dataDir string) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, every other operation returns ErrStoreDetached.
	Detach() error

	// SaveRun records a run and its non-empty entries and returns the stored
	// run with its generated ID.
	SaveRun(cfg Config, entries []string) (Run, error)

	// LatestRun returns the most recently saved run, or ErrNoRuns.
	LatestRun() (Run, error)

	// Lookup returns the expression for result in the latest run, or "" if
	// that run did not reach it. Returns ErrNoRuns if nothing was saved.
	Lookup(result int) (string, error)

	// Solutions rebuilds the full solution table of a run, indexed by result.
	Solutions(runID string) ([]string, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached = errors.New("store is detached")
	ErrStoreAttached = errors.New("store is already attached")
	ErrNoRuns        = errors.New("no runs recorded")
)
