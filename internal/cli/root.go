// Package cli implements the repunit command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/repunit/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	outputDir string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "repunit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "repunit",
		Short: "Shortest expressions over repeated-digit constants",
		Long: "repunit enumerates postfix expressions over 2, 22, 222, 2222 and + - * /,\n" +
			"and records the shortest infix expression for every result from 0 to 1000.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.jsonMode {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/repunit)")
	root.PersistentFlags().StringVar(&flags.outputDir, "output-dir", "", "directory for sols.txt, sols.json and repunit.db (default: current directory)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCodeError carries the process exit code for a failed command.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// exitError returns an error that Execute reports on stderr before exiting
// with code.
func exitError(code int, format string, args ...any) error {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}

// exitCode maps an error returned by a command to a process exit code.
// Errors not built by exitError come from flag and argument parsing.
func exitCode(err error) int {
	var ee *exitCodeError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveOutputDir returns the output directory from flag, config, env, or
// the current directory.
func resolveOutputDir(configValue string) (string, error) {
	return paths.ResolveOutputDir(flags.outputDir, configValue)
}
