package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sprout"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the sprout version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sprout " + sprout.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
