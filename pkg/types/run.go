package types

import "time"

// Run describes one recorded solver run.
type Run struct {
	RunID     string    // UUID v7, generated when the run is saved.
	Rounds    int       // Rounds searched.
	Alphabet  Alphabet  // Alphabet searched.
	Reached   int       // Number of non-empty solution entries.
	CreatedAt time.Time // Timestamp of the save.
}
