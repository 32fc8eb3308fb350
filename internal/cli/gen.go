package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/repunit/internal/export"
	"github.com/mesh-intelligence/repunit/internal/sqlite"
	"github.com/mesh-intelligence/repunit/pkg/repunit"
	"github.com/mesh-intelligence/repunit/pkg/types"
)

// genResult is the --json output of gen.
type genResult struct {
	RunID    string  `json:"run_id"`
	Rounds   int     `json:"rounds"`
	Reached  int     `json:"reached"`
	TextFile string  `json:"text_file"`
	JSONFile string  `json:"json_file"`
	Database string  `json:"database"`
	Seconds  float64 `json:"seconds"`
}

func newGenCmd() *cobra.Command {
	var (
		rounds  int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Search all expressions and write the solution table",
		Long: "Search postfix expressions of length 1, 3, ..., 2*rounds-1, then write\n" +
			"sols.txt and sols.json to the output directory and record the run in repunit.db.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := resolveConfigDir()
			if err != nil {
				return exitError(exitSysError, "resolve config dir: %s", err)
			}
			v, err := loadConfig(configDir)
			if err != nil {
				return exitError(exitUserError, "%s", err)
			}
			if cmd.Flags().Changed("rounds") {
				v.Set(cfgKeyRounds, rounds)
			}
			if cmd.Flags().Changed("workers") {
				v.Set(cfgKeyWorkers, workers)
			}

			cfg, err := solverConfig(v)
			if err != nil {
				return exitError(exitUserError, "invalid configuration: %s", err)
			}

			outputDir, err := resolveOutputDir(v.GetString(cfgKeyOutputDir))
			if err != nil {
				return exitError(exitSysError, "resolve output dir: %s", err)
			}

			return runGen(cmd, cfg, outputDir)
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", types.DefaultRounds, "number of rounds; the longest expression has 2*rounds-1 terms")
	cmd.Flags().IntVar(&workers, "workers", 1, "rounds searched concurrently")

	return cmd
}

func runGen(cmd *cobra.Command, cfg types.Config, outputDir string) error {
	out := cmd.OutOrStdout()
	if !flags.jsonMode {
		color.New(color.FgBlue).Fprintf(out, "Searching %d rounds (max length %d) with %d worker(s)\n",
			cfg.Rounds, cfg.MaxLen(), cfg.Workers)
	}

	start := time.Now()
	entries, err := repunit.Solve(cfg)
	if err != nil {
		return exitError(exitUserError, "solve: %s", err)
	}
	elapsed := time.Since(start)

	textPath, jsonPath, err := export.WriteAll(outputDir, entries)
	if err != nil {
		return exitError(exitSysError, "%s", err)
	}

	store := newStore()
	if err := store.Attach(outputDir); err != nil {
		return exitError(exitSysError, "attach store: %s", err)
	}
	defer store.Detach()

	run, err := store.SaveRun(cfg, entries)
	if err != nil {
		return exitError(exitSysError, "save run: %s", err)
	}

	res := genResult{
		RunID:    run.RunID,
		Rounds:   run.Rounds,
		Reached:  run.Reached,
		TextFile: textPath,
		JSONFile: jsonPath,
		Database: filepath.Join(outputDir, sqlite.DBFile),
		Seconds:  elapsed.Seconds(),
	}

	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	green := color.New(color.FgGreen)
	green.Fprintf(out, "✓ Reached %d of %d results in %s\n", res.Reached, types.MaxResult+1, elapsed.Round(time.Millisecond))
	green.Fprintf(out, "  Run: %s\n", res.RunID)
	fmt.Fprintf(out, "  Text: %s\n  JSON: %s\n  Database: %s\n", res.TextFile, res.JSONFile, res.Database)
	return nil
}
