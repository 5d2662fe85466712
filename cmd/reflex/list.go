package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/reflex/internal/presentation/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog commands and registered tools",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var md strings.Builder
		md.WriteString(fmt.Sprintf("# %s\n\n## Commands\n\n", eng.Name))
		for _, info := range eng.Commands() {
			md.WriteString(fmt.Sprintf("- **%s** (%d steps, on failure: %s)", info.Name, info.Steps, info.OnFailure))
			if info.Description != "" {
				md.WriteString(" — " + info.Description)
			}
			md.WriteString("\n")
		}

		md.WriteString("\n## Tools\n\n")
		for _, tool := range eng.Registry().List() {
			md.WriteString(fmt.Sprintf("- **%s**", tool.Name))
			if len(tool.Params) > 0 {
				md.WriteString(fmt.Sprintf(" (`%s`)", strings.Join(tool.Params, "`, `")))
			}
			if tool.Description != "" {
				md.WriteString(" — " + tool.Description)
			}
			md.WriteString("\n")
		}

		render := tui.NewRenderer()
		out, err := render(md.String())
		if err != nil {
			// Fall back to the raw markdown when the terminal can't render.
			fmt.Println(md.String())
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
