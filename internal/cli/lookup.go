package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/repunit/internal/export"
	"github.com/mesh-intelligence/repunit/internal/sqlite"
	"github.com/mesh-intelligence/repunit/pkg/types"
)

// lookupEntry is one --json output record of lookup.
type lookupEntry struct {
	Result     int    `json:"result"`
	Expression string `json:"expression"`
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <n>...",
		Short: "Print the shortest known expression for each result",
		Long:  "Look up results in the latest recorded run, falling back to sols.json when no run database exists.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	results := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 || n > types.MaxResult {
			return exitError(exitUserError, "result %q must be an integer in [0, %d]", arg, types.MaxResult)
		}
		results = append(results, n)
	}

	outputDir, err := outputDirFromConfig()
	if err != nil {
		return err
	}

	lookup, closeFn, err := openSolutions(outputDir)
	if err != nil {
		return err
	}
	defer closeFn()

	entries := make([]lookupEntry, 0, len(results))
	for _, n := range results {
		expr, err := lookup(n)
		if err != nil {
			return exitError(exitSysError, "lookup %d: %s", n, err)
		}
		entries = append(entries, lookupEntry{Result: n, Expression: expr})
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%d %s\n", e.Result, e.Expression)
	}
	return nil
}

// outputDirFromConfig loads config.yaml and resolves the output directory.
func outputDirFromConfig() (string, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", exitError(exitSysError, "resolve config dir: %s", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return "", exitError(exitUserError, "%s", err)
	}
	outputDir, err := resolveOutputDir(v.GetString(cfgKeyOutputDir))
	if err != nil {
		return "", exitError(exitSysError, "resolve output dir: %s", err)
	}
	return outputDir, nil
}

// openSolutions returns a lookup function backed by the run database when
// one exists in outputDir, or by sols.json otherwise.
func openSolutions(outputDir string) (func(int) (string, error), func(), error) {
	if sqlite.Exists(outputDir) {
		store := newStore()
		if err := store.Attach(outputDir); err != nil {
			return nil, nil, exitError(exitSysError, "attach store: %s", err)
		}
		return store.Lookup, func() { store.Detach() }, nil
	}

	entries, err := export.ReadJSON(filepath.Join(outputDir, export.JSONFile))
	if err != nil {
		return nil, nil, exitError(exitUserError, "no solutions found, run gen first: %s", err)
	}
	lookup := func(n int) (string, error) {
		if n >= len(entries) {
			return "", nil
		}
		return entries[n], nil
	}
	return lookup, func() {}, nil
}
