package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/reflex"
	"github.com/aretw0/reflex/internal/logging"
	"github.com/aretw0/reflex/pkg/registry"
)

var rootCmd = &cobra.Command{
	Use:   "reflex",
	Short: "Reflex is a composable action engine for trigger-driven automation",
	Long:  `Reflex compiles a YAML command catalog into composable action trees and executes them against trigger data, the way a voice-command host fires recognized commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "./commands.yaml", "Path to the command catalog")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// buildEngine wires the standard CLI engine: builtin tools, stderr logger.
func buildEngine(cmd *cobra.Command, opts ...reflex.Option) (*reflex.Engine, error) {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	reg := registry.New()
	RegisterBuiltins(reg, os.Stdout)

	opts = append([]reflex.Option{
		reflex.WithRegistry(reg),
		reflex.WithLogger(logger),
	}, opts...)

	return reflex.New(catalogPath, opts...)
}
