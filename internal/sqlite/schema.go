// Package sqlite stores solver runs and their solution tables in SQLite.
package sqlite

// Schema DDL. Tables are created on first attach and kept across runs.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    rounds INTEGER NOT NULL,
    operands TEXT NOT NULL,
    operators TEXT NOT NULL,
    reached INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createSolutions = `CREATE TABLE IF NOT EXISTS solutions (
    run_id TEXT NOT NULL,
    result INTEGER NOT NULL,
    expression TEXT NOT NULL,
    length INTEGER NOT NULL,
    PRIMARY KEY (run_id, result),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxSolutionsResult = `CREATE INDEX IF NOT EXISTS idx_solutions_result ON solutions(result);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRuns,
	createSolutions,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxSolutionsResult,
}
