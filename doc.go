/*
Package reflex is a composable action engine for trigger-driven automation,
built for hosts like speech-recognition frontends that fire a command with a
mapping of captured values ("extras") and expect a composed tree of actions
to run predictably.

It separates the composition algebra (sequence, fallback, repetition, data
binding) from the leaf actions, which hosts provide as registered tools.
The engine compiles a YAML command catalog into action trees and executes
them synchronously, depth-first, once per trigger event.

# Key Features

  - Predictable composition: flattened series, explicit failure policies,
    innermost-wins data binding.
  - Hexagonal architecture: leaf tools, catalog source and journal storage
    are all injected adapters.
  - Execution journal: optional persistence of every run, enabling
    "redo last command" across restarts (memory or Redis backed).
  - Observability: lifecycle hooks with a ready-made Prometheus bundle.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/reflex"
		"github.com/aretw0/reflex/pkg/action"
		"github.com/aretw0/reflex/pkg/registry"
	)

	func main() {
		reg := registry.New()
		reg.Register(registry.Tool{
			Name:   "press",
			Params: []string{"key"},
			Fn: func(ctx context.Context, args action.Extras) error {
				log.Println("pressing", args["key"])
				return nil
			},
		})

		eng, err := reflex.New("./commands.yaml", reflex.WithRegistry(reg))
		if err != nil {
			log.Fatal(err)
		}

		// One trigger event: execute a command with its recognized extras.
		if _, err := eng.Execute(context.Background(), "press-many", action.Extras{"n": 3}); err != nil {
			log.Fatal(err)
		}
	}

Hosts that compose trees programmatically can skip the catalog entirely and
use the pkg/action operators directly.
*/
package reflex

// Version is the library version, reported by the CLI.
const Version = "0.3.1"
