package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"model-mender/internal/pymodel"
)

// buildDumpCommand creates the debug command that prints the records the
// scanner extracts from generated source, without rewriting anything.
func buildDumpCommand() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the records scanned from generated source",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inPath, err)
			}

			spew.Dump(pymodel.Scan(string(raw)))

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Generated source file to scan")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
