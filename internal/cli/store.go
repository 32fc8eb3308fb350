package cli

import (
	"github.com/mesh-intelligence/repunit/internal/sqlite"
	"github.com/mesh-intelligence/repunit/pkg/types"
)

// newStore returns the run store commands record to and read from.
// Tests replace it to exercise commands against other RunStore
// implementations.
var newStore = func() types.RunStore { return sqlite.NewBackend() }
