package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/reflex/pkg/action"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <command>",
	Short: "Execute a catalog command once",
	Long:  `Compiles the catalog and executes the named command with the extras given via --data, simulating one trigger event.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pairs, _ := cmd.Flags().GetStringArray("data")

		extras, err := parseExtras(pairs)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		eng, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		rec, err := eng.Execute(cmd.Context(), args[0], extras)
		if err != nil {
			fmt.Printf("Command failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK (%s)\n", rec.Duration.Round(time.Microsecond))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayP("data", "d", nil, "Trigger extras as key=value (repeatable)")
}

// parseExtras converts key=value flags into an extras mapping. Values
// that look like integers, floats or booleans are converted so repeat
// factors and numeric parameters work from the shell.
func parseExtras(pairs []string) (action.Extras, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	extras := make(action.Extras, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --data %q, expected key=value", pair)
		}
		extras[key] = coerce(value)
	}
	return extras, nil
}

func coerce(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
