package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Tiny init/update/view flows for the terminal",
	Long: `Sprout is a teaching-sized kernel for the unidirectional data flow
architecture: a flow is an initial state, a pure transition function and a
pure view. The built-in mirror flow echoes a text input into a live text
node; running sprout with no arguments starts it.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// --config applies to every subcommand.
	rootCmd.PersistentFlags().String("config", "", "Path to a sprout.yaml config file")
}
