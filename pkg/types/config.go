package types

import "errors"

// Config holds the parameters of one solver run.
type Config struct {
	Rounds   int      // Rounds bounds the expression length at 2*Rounds-1.
	Workers  int      // Workers > 1 runs rounds concurrently.
	Alphabet Alphabet // Alphabet is the term vocabulary.
}

// Config validation errors.
var (
	ErrRoundsOutOfRange = errors.New("rounds out of range")
	ErrWorkersInvalid   = errors.New("workers must be positive")
	ErrOperandsEmpty    = errors.New("operands must not be empty")
	ErrOperandNegative  = errors.New("operands must not be negative")
	ErrOperatorsEmpty   = errors.New("operators must not be empty")
	ErrOperatorUnknown  = errors.New("unknown operator")
)

// DefaultConfig returns the configuration of the classic puzzle: six rounds
// over the default alphabet on a single worker.
func DefaultConfig() Config {
	return Config{
		Rounds:   DefaultRounds,
		Workers:  1,
		Alphabet: DefaultAlphabet(),
	}
}

// MaxLen returns the longest expression length searched, 2*Rounds-1.
func (c Config) MaxLen() int {
	return 2*c.Rounds - 1
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Rounds < 1 || c.MaxLen() > MaxExprLen {
		return ErrRoundsOutOfRange
	}
	if c.Workers < 1 {
		return ErrWorkersInvalid
	}
	return c.Alphabet.Validate()
}
