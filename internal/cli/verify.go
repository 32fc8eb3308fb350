package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/repunit/internal/export"
	"github.com/mesh-intelligence/repunit/internal/sqlite"
	"github.com/mesh-intelligence/repunit/internal/verify"
	"github.com/mesh-intelligence/repunit/pkg/types"
)

// verifyReport is the --json output of verify for one source.
type verifyReport struct {
	Source     string   `json:"source"`
	Checked    int      `json:"checked"`
	Mismatches []string `json:"mismatches"`
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Re-evaluate every stored expression and check it against its result",
		Long:  "Evaluate each expression of sols.json, and of the latest run in repunit.db when present, with an independent CEL evaluator.",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	outputDir, err := outputDirFromConfig()
	if err != nil {
		return err
	}

	checker, err := verify.NewChecker()
	if err != nil {
		return exitError(exitSysError, "%s", err)
	}

	jsonPath := filepath.Join(outputDir, export.JSONFile)
	entries, err := export.ReadJSON(jsonPath)
	if err != nil {
		return exitError(exitUserError, "no solutions found, run gen first: %s", err)
	}
	reports := []verifyReport{check(checker, jsonPath, entries)}

	if sqlite.Exists(outputDir) {
		report, err := checkStore(checker, outputDir)
		if err != nil {
			return exitError(exitSysError, "%s", err)
		}
		reports = append(reports, report)
	}

	failed := 0
	for _, r := range reports {
		failed += len(r.Mismatches)
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			if len(r.Mismatches) == 0 {
				color.New(color.FgGreen).Fprintf(out, "✓ %s: %d expressions verified\n", r.Source, r.Checked)
				continue
			}
			red := color.New(color.FgRed)
			red.Fprintf(out, "✗ %s: %d of %d expressions wrong\n", r.Source, len(r.Mismatches), r.Checked)
			for _, m := range r.Mismatches {
				red.Fprintf(out, "  %s\n", m)
			}
		}
	}

	if failed > 0 {
		return exitError(exitUserError, "verification failed: %d mismatches", failed)
	}
	return nil
}

func checkStore(checker *verify.Checker, outputDir string) (verifyReport, error) {
	store := newStore()
	if err := store.Attach(outputDir); err != nil {
		return verifyReport{}, fmt.Errorf("attach store: %w", err)
	}
	defer store.Detach()

	source := filepath.Join(outputDir, sqlite.DBFile)
	run, err := store.LatestRun()
	if errors.Is(err, types.ErrNoRuns) {
		return verifyReport{Source: source, Mismatches: []string{}}, nil
	}
	if err != nil {
		return verifyReport{}, err
	}
	entries, err := store.Solutions(run.RunID)
	if err != nil {
		return verifyReport{}, err
	}
	return check(checker, source+"#"+run.RunID, entries), nil
}

func check(checker *verify.Checker, source string, entries []string) verifyReport {
	report := verifyReport{Source: source, Mismatches: []string{}}
	for _, e := range entries {
		if e != "" {
			report.Checked++
		}
	}
	for _, m := range checker.CheckEntries(entries) {
		report.Mismatches = append(report.Mismatches, m.String())
	}
	return report
}
