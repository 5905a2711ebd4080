// Command mapfcbs is the command-line driver for the CBS solver.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var cli struct {
	Solve        SolveCommand        `cmd:"" help:"Solve a scenario file and print the joint plan."`
	Demo         DemoCommand         `cmd:"" help:"Run the built-in demo scenarios."`
	Bench        BenchCommand        `cmd:"" help:"Run the success-rate-vs-agent-count stress test."`
	GenInstances GenInstancesCommand `cmd:"" name:"gen-instances" help:"Generate a random scenario file."`
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&cli,
		kong.Name("mapfcbs"),
		kong.Description("Multi-agent path finding via Conflict-Based Search."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
