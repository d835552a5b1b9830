package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/sprout/internal/cli"
	"github.com/aretw0/sprout/internal/presentation/tui"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the mirror flow",
	Long:  `Starts the built-in mirror flow: a text input whose value is echoed into a text node on every keystroke.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		headless, _ := cmd.Flags().GetBool("headless")
		debug, _ := cmd.Flags().GetBool("debug")

		if bannerEnabled(headless, os.Stdin) {
			tui.PrintBanner(os.Stdout)
		}

		if err := cli.Execute(cli.RunOptions{
			ConfigPath: configPath,
			Headless:   headless,
			Debug:      debug,
		}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// bannerEnabled reports whether the interactive banner should show:
// never in headless mode, and never when stdin is not a real terminal —
// in that case the program falls back to the line host and the banner
// would only pollute piped output.
func bannerEnabled(headless bool, stdin *os.File) bool {
	return !headless && term.IsTerminal(int(stdin.Fd()))
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (line-oriented IO, no banner)")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")

	// Make 'run' the default if no command is provided
	rootCmd.Run = runCmd.Run
}
