package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/reflex"
	"github.com/aretw0/reflex/internal/presentation/tui"
	httpadapter "github.com/aretw0/reflex/pkg/adapters/http"
	"github.com/aretw0/reflex/pkg/adapters/memory"
	"github.com/aretw0/reflex/pkg/adapters/redis"
	"github.com/aretw0/reflex/pkg/observability"
	"github.com/aretw0/reflex/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long:  `Starts an HTTP server exposing command listing, execution, redo and the journal, with Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")

		var journal ports.JournalStore = memory.NewJournal()
		if redisAddr != "" {
			journal = redis.New(redisAddr, "", 0)
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		eng, err := buildEngine(cmd,
			reflex.WithJournal(journal),
			reflex.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()
		fmt.Printf("Serving %q on %s\n", eng.Name, addr)

		if err := http.ListenAndServe(addr, httpadapter.NewHandler(eng)); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address for a persistent journal (default: in-memory)")
}
