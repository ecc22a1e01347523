// Command embryogen runs one named simulation scenario to completion.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	embryogen "github.com/xulman/EmbryoGen-sub000"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	scenario, ok := embryogen.LookupScenario(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "embryogen: unknown scenario %q\n\n", name)
		printUsage()
		os.Exit(1)
	}

	controls := embryogen.DefaultSceneControls()
	log := embryogen.NewDefaultLogger("embryogen", false)
	display := embryogen.NewFileDisplayUnit(log)
	sim := embryogen.NewSimulation(controls, 2, log, display, nil)

	ctx := context.Background()
	if err := scenario.Build(ctx, sim, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "embryogen: %v\n", err)
		os.Exit(1)
	}

	if err := sim.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "embryogen: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	names := embryogen.ScenarioNames()
	sort.Strings(names)
	fmt.Fprintln(os.Stderr, "usage: embryogen <scenarioName> [scenarioArgs...]")
	fmt.Fprintln(os.Stderr, "available scenarios:")
	for _, n := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", n)
	}
}
