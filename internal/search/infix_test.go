package search

import (
	"fmt"
	"strconv"
)

// evaluateInfixForTest parses a rendered infix string with conventional
// precedence and left associativity and evaluates it exactly. It shares no
// code with Evaluate or Render.
func evaluateInfixForTest(s string) (int64, error) {
	p := &infixParser{src: s}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("trailing input at %d in %q", p.pos, s)
	}
	return v, nil
}

type infixParser struct {
	src string
	pos int
}

func (p *infixParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *infixParser) expr() (int64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for c := p.peek(); c == '+' || c == '-'; c = p.peek() {
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

func (p *infixParser) term() (int64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for c := p.peek(); c == '*' || c == '/'; c = p.peek() {
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			v *= rhs
			continue
		}
		if rhs == 0 || v%rhs != 0 {
			return 0, fmt.Errorf("inexact division %d/%d", v, rhs)
		}
		v /= rhs
	}
	return v, nil
}

func (p *infixParser) factor() (int64, error) {
	if p.peek() == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing ) at %d in %q", p.pos, p.src)
		}
		p.pos++
		return v, nil
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected number at %d in %q", start, p.src)
	}
	return strconv.ParseInt(p.src[start:p.pos], 10, 64)
}
