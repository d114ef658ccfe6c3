// Command synsim loads developing-synapse records and evaluates their
// weights over simulation time.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/synsim/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}
	if !cli.WasReported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
