package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/reflex"
	"github.com/aretw0/reflex/pkg/adapters/redis"
	"github.com/aretw0/reflex/pkg/domain"
)

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Re-execute the last journaled command",
	Long:  `Replays the most recent execution from the journal with its original extras. Requires a Redis journal, since CLI invocations do not share memory.`,
	Run: func(cmd *cobra.Command, args []string) {
		redisAddr, _ := cmd.Flags().GetString("redis")

		journal := redis.New(redisAddr, "", 0)
		eng, err := buildEngine(cmd, reflex.WithJournal(journal))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		rec, err := eng.Redo(cmd.Context())
		if errors.Is(err, domain.ErrNoJournalEntries) {
			fmt.Println("Nothing to redo.")
			return
		}
		if err != nil {
			fmt.Printf("Redo failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Replayed %q\n", rec.Command)
	},
}

func init() {
	rootCmd.AddCommand(redoCmd)

	redoCmd.Flags().String("redis", "localhost:6379", "Redis address for the shared journal")
}
