package search

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

// Walk generates every well-formed postfix sequence of length n over terms,
// in order, and calls visit for each. An operator is placed only while the
// operands placed so far outnumber the operators by at least two, so every
// prefix keeps at least one value on the stack. The slice passed to visit is
// a reused buffer; visit must not retain it.
func Walk(terms []types.Term, n int, visit func(expr []types.Term)) {
	if n < 1 || n > types.MaxExprLen {
		return
	}
	expr := make([]types.Term, n)
	walk(terms, expr, 0, 0, 0, visit)
}

func walk(terms, expr []types.Term, i, numbers, operators int, visit func([]types.Term)) {
	if i == len(expr) {
		if numbers == operators+1 {
			visit(expr)
		}
		return
	}

	for _, term := range terms {
		expr[i] = term
		switch term.Kind {
		case types.KindOperand:
			walk(terms, expr, i+1, numbers+1, operators, visit)
		case types.KindOperator:
			if numbers > operators+1 {
				walk(terms, expr, i+1, numbers, operators+1, visit)
			}
		default:
			panic(fmt.Errorf("%w: unset term in alphabet", types.ErrInvariantViolation))
		}
	}
	expr[i] = types.Term{}
}

// Round searches all postfix sequences of length n and offers every in-range
// result to table.
func Round(terms []types.Term, n int, table *Table) {
	Walk(terms, n, func(expr []types.Term) {
		res, err := Evaluate(expr)
		if err != nil || !InRange(res) {
			return
		}
		infix, err := Render(expr)
		if err != nil {
			panic(fmt.Errorf("%w: render %q after evaluating to %d: %v",
				types.ErrInvariantViolation, types.FormatPostfix(expr), res, err))
		}
		table.Offer(res, infix)
	})
}

// Run searches lengths 1, 3, ..., 2*Rounds-1 and returns the accumulated
// table. With more than one worker each round fills a private table; the
// tables are merged in ascending length order, which gives the same result
// as the sequential search.
func Run(cfg types.Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	terms := cfg.Alphabet.Terms()
	table := NewTable()

	if cfg.Workers == 1 {
		for n := 1; n <= cfg.MaxLen(); n += 2 {
			Round(terms, n, table)
		}
		return table, nil
	}

	partials := make([]*Table, cfg.Rounds)
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup

	for r := 0; r < cfg.Rounds; r++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(r int) {
			defer wg.Done()
			defer func() { <-sem }()
			partial := NewTable()
			Round(terms, 2*r+1, partial)
			partials[r] = partial
		}(r)
	}
	wg.Wait()

	for _, partial := range partials {
		table.Merge(partial)
	}
	return table, nil
}
