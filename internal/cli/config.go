package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyRounds    = "rounds"
	cfgKeyWorkers   = "workers"
	cfgKeyOperands  = "operands"
	cfgKeyOperators = "operators"
	cfgKeyOutputDir = "output_dir"
)

// loadConfig reads config.yaml from configDir using Viper, with defaults for
// every key. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyRounds, def.Rounds)
	v.SetDefault(cfgKeyWorkers, def.Workers)
	v.SetDefault(cfgKeyOperands, operandInts(def.Alphabet.Operands))
	v.SetDefault(cfgKeyOperators, operatorStrings(def.Alphabet.Operators))
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// solverConfig builds a validated solver configuration from the loaded keys.
func solverConfig(v *viper.Viper) (types.Config, error) {
	ops, err := types.ParseOperators(v.GetStringSlice(cfgKeyOperators))
	if err != nil {
		return types.Config{}, fmt.Errorf("%s: %w", cfgKeyOperators, err)
	}

	var operands []int64
	for _, n := range v.GetIntSlice(cfgKeyOperands) {
		operands = append(operands, int64(n))
	}

	cfg := types.Config{
		Rounds:  v.GetInt(cfgKeyRounds),
		Workers: v.GetInt(cfgKeyWorkers),
		Alphabet: types.Alphabet{
			Operands:  operands,
			Operators: ops,
		},
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func operandInts(operands []int64) []int {
	out := make([]int, len(operands))
	for i, v := range operands {
		out[i] = int(v)
	}
	return out
}

func operatorStrings(ops []types.Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}
