package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/reflex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of reflex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reflex version %s\n", reflex.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
