// Command multigrid generates quasiperiodic tilings with the dual multigrid
// method and writes their cells for plotting.
//
// Usage:
//
//	multigrid generate [flags]   Generate a tiling (see --help)
//	multigrid presets            List the basis presets
//	multigrid config             Print the effective configuration
//	multigrid schema             Print the configuration schema
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/multigrid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
