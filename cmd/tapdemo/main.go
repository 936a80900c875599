// tapdemo is a small color-tap game that exercises tapkit's dispatcher.
//
// Usage:
//
//	tapdemo run              - Open the demo window
//	tapdemo config           - Print the effective dispatcher config
//
// Global flags:
//
//	--config <path>  - Dispatcher config YAML (default search order applies)
//	--verbose        - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tapdemo",
	Short: "Toddler-friendly tap target demo",
	Long: `tapdemo opens a window with four big colored squares.

Tap the color named at the top. The green square can be dragged around,
and holding the purple square changes its color.

Examples:
  tapdemo run
  tapdemo run --debug
  tapdemo run --script walkthrough.yaml --exit
  tapdemo config --config ./my-tapkit.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to dispatcher config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "tapdemo",
		ReportTimestamp: true,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
