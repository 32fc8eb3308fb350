package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Rounds    int      `yaml:"rounds"`
	Workers   int      `yaml:"workers"`
	Operands  []int    `yaml:"operands"`
	Operators []string `yaml:"operators"`
	OutputDir string   `yaml:"output_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml and create the run database",
		Long:  "Create the configuration directory with a default config.yaml, then create the output directory and its run database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return exitError(exitSysError, "resolve config dir: %s", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(exitSysError, "create config directory: %s", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, flags.outputDir); err != nil {
		return exitError(exitSysError, "write config: %s", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return exitError(exitUserError, "%s", err)
	}
	outputDir, err := resolveOutputDir(v.GetString(cfgKeyOutputDir))
	if err != nil {
		return exitError(exitSysError, "resolve output dir: %s", err)
	}

	store := newStore()
	if err := store.Attach(outputDir); err != nil {
		return exitError(exitSysError, "initialize storage: %s", err)
	}
	if err := store.Detach(); err != nil {
		return exitError(exitSysError, "finalize storage: %s", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\nOutput: %s\n", configPath, outputDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, outputDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	def := types.DefaultConfig()
	cfg := configFile{
		Rounds:    def.Rounds,
		Workers:   def.Workers,
		Operands:  operandInts(def.Alphabet.Operands),
		Operators: operatorStrings(def.Alphabet.Operators),
		OutputDir: outputDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
