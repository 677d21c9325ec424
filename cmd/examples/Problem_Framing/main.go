// Problem framing walkthrough: states the red-vs-white task, the data
// dictionary, and the runtime snapshot. No data file is touched at this
// stage.
package main

import (
	"fmt"
	"os"

	"winescope/pkg/config"
	"winescope/pkg/framing"
	"winescope/pkg/wine"
)

func main() {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	fmt.Println("=== Problem Brief ===")
	fmt.Println(framing.DefaultBrief().Render())

	fmt.Println("=== Data Dictionary ===")
	for _, info := range wine.Dictionary() {
		fmt.Printf("%-22v %-20s %s\n", info.Attr, info.Unit, info.Description)
	}
	fmt.Printf("%-22s %-20s %s\n", wine.QualityColumn, "score 0-10",
		"median sensory rating from at least three blind tastings")
	fmt.Println()

	fmt.Println("=== Runtime ===")
	fmt.Print(framing.Snapshot().Render())

	logger.Info("problem framing rendered")
}
