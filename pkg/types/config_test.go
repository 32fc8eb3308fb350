package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "zero rounds returns ErrRoundsOutOfRange",
			config:  Config{Rounds: 0, Workers: 1, Alphabet: DefaultAlphabet()},
			wantErr: ErrRoundsOutOfRange,
		},
		{
			name:    "rounds past MaxExprLen returns ErrRoundsOutOfRange",
			config:  Config{Rounds: 26, Workers: 1, Alphabet: DefaultAlphabet()},
			wantErr: ErrRoundsOutOfRange,
		},
		{
			name:    "25 rounds fits MaxExprLen",
			config:  Config{Rounds: 25, Workers: 1, Alphabet: DefaultAlphabet()},
			wantErr: nil,
		},
		{
			name:    "zero workers returns ErrWorkersInvalid",
			config:  Config{Rounds: 2, Workers: 0, Alphabet: DefaultAlphabet()},
			wantErr: ErrWorkersInvalid,
		},
		{
			name:    "empty operands returns ErrOperandsEmpty",
			config:  Config{Rounds: 2, Workers: 1, Alphabet: Alphabet{Operators: []Op{OpAdd}}},
			wantErr: ErrOperandsEmpty,
		},
		{
			name:    "negative operand returns ErrOperandNegative",
			config:  Config{Rounds: 2, Workers: 1, Alphabet: Alphabet{Operands: []int64{-2}, Operators: []Op{OpAdd}}},
			wantErr: ErrOperandNegative,
		},
		{
			name:    "empty operators returns ErrOperatorsEmpty",
			config:  Config{Rounds: 2, Workers: 1, Alphabet: Alphabet{Operands: []int64{2}}},
			wantErr: ErrOperatorsEmpty,
		},
		{
			name:    "unknown operator returns ErrOperatorUnknown",
			config:  Config{Rounds: 2, Workers: 1, Alphabet: Alphabet{Operands: []int64{2}, Operators: []Op{'^'}}},
			wantErr: ErrOperatorUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
