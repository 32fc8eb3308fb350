package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

// SaveRun records a run and its non-empty solution entries in one
// transaction and returns the stored run with its generated ID.
func (b *Backend) SaveRun(cfg types.Config, entries []string) (types.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Run{}, types.ErrStoreDetached
	}

	run := types.Run{
		RunID:     generateUUID(),
		Rounds:    cfg.Rounds,
		Alphabet:  cfg.Alphabet,
		CreatedAt: time.Now().UTC(),
	}
	for _, expr := range entries {
		if expr != "" {
			run.Reached++
		}
	}

	tx, err := b.db.Begin()
	if err != nil {
		return types.Run{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (run_id, rounds, operands, operators, reached, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Rounds,
		encodeOperands(run.Alphabet.Operands), encodeOperators(run.Alphabet.Operators),
		run.Reached, run.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return types.Run{}, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO solutions (run_id, result, expression, length) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return types.Run{}, fmt.Errorf("prepare solutions: %w", err)
	}
	defer stmt.Close()

	for result, expr := range entries {
		if expr == "" {
			continue
		}
		if _, err := stmt.Exec(run.RunID, result, expr, len(expr)); err != nil {
			return types.Run{}, fmt.Errorf("insert solution %d: %w", result, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Run{}, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recently saved run.
// Returns types.ErrNoRuns if nothing has been saved.
func (b *Backend) LatestRun() (types.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Run{}, types.ErrStoreDetached
	}
	return b.latestRunLocked()
}

// latestRunLocked reads the newest run. Callers hold b.mu and have checked
// that the store is attached.
func (b *Backend) latestRunLocked() (types.Run, error) {
	var (
		run                 types.Run
		operands, operators string
		createdAt           string
	)
	err := b.db.QueryRow(
		`SELECT run_id, rounds, operands, operators, reached, created_at
		 FROM runs ORDER BY rowid DESC LIMIT 1`,
	).Scan(&run.RunID, &run.Rounds, &operands, &operators, &run.Reached, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, types.ErrNoRuns
	}
	if err != nil {
		return types.Run{}, fmt.Errorf("query latest run: %w", err)
	}

	if run.Alphabet.Operands, err = decodeOperands(operands); err != nil {
		return types.Run{}, err
	}
	run.Alphabet.Operators = decodeOperators(operators)
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return types.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	return run, nil
}

// Lookup returns the expression stored for result in the latest run, or ""
// if that run did not reach it.
func (b *Backend) Lookup(result int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	run, err := b.latestRunLocked()
	if err != nil {
		return "", err
	}

	var expr string
	err = b.db.QueryRow(
		`SELECT expression FROM solutions WHERE run_id = ? AND result = ?`,
		run.RunID, result,
	).Scan(&expr)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query solution %d: %w", result, err)
	}
	return expr, nil
}

// Solutions rebuilds the full solution table of a run, indexed by result.
func (b *Backend) Solutions(runID string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		`SELECT result, expression FROM solutions WHERE run_id = ? ORDER BY result`, runID)
	if err != nil {
		return nil, fmt.Errorf("query solutions: %w", err)
	}
	defer rows.Close()

	entries := make([]string, types.MaxResult+1)
	for rows.Next() {
		var (
			result int
			expr   string
		)
		if err := rows.Scan(&result, &expr); err != nil {
			return nil, fmt.Errorf("scan solution: %w", err)
		}
		if result < 0 || result > types.MaxResult {
			continue
		}
		entries[result] = expr
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solutions: %w", err)
	}
	return entries, nil
}

func encodeOperands(operands []int64) string {
	parts := make([]string, len(operands))
	for i, v := range operands {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func decodeOperands(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse operand %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func encodeOperators(ops []types.Op) string {
	var sb strings.Builder
	for _, op := range ops {
		sb.WriteByte(byte(op))
	}
	return sb.String()
}

func decodeOperators(s string) []types.Op {
	out := make([]types.Op, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = types.Op(s[i])
	}
	return out
}
