// Package main provides the CLI entrypoint for model-mender.
//
// model-mender is a post-processing tool for datamodel-codegen output that:
//   - Rewrites shared mutable literal defaults into default_factory form
//   - Flattens single-parent dataclass hierarchies into parent-less records
//   - Applies hand-corrected canonical bodies for known-broken shapes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "model-mender",
		Short:         "Repair structural defects in generated data-model source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(buildMendCommand(), buildDumpCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "model-mender:", err)
		os.Exit(1)
	}
}
