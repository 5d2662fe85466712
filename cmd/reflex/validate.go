package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the command catalog for consistency",
	Long:  `Parses and compiles the catalog against the builtin tools, reporting unknown tools, malformed steps and bad repeat factors.`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := buildEngine(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
