package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"model-mender/internal/mend"
	"model-mender/internal/override"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// buildMendCommand creates the repair command.
func buildMendCommand() *cobra.Command {
	var inPath string
	var outPath string
	var overridesPath string
	var missingParent string

	cmd := &cobra.Command{
		Use:   "mend",
		Short: "Run the repair passes over generated source",
		Long: `Run the repair passes over generated source in fixed order:
mutable-default normalization, hierarchy flattening, manual overrides.
The input is read once, transformed in memory, and written once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMend(inPath, outPath, overridesPath, missingParent)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Generated source file to repair")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (defaults to rewriting in place)")
	cmd.Flags().StringVar(&overridesPath, "overrides", "", "Custom override table (YAML), replaces the embedded table")
	cmd.Flags().StringVar(&missingParent, "missing-parent", "fail", "Policy for records whose parent has no definition: fail, own-fields, or keep")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func runMend(inPath, outPath, overridesPath, missingParent string) error {
	cfg := mend.DefaultConfig()

	policy, err := mend.ParseMissingParentPolicy(missingParent)
	if err != nil {
		return err
	}

	cfg.MissingParent = policy

	if overridesPath != "" {
		table, err := override.LoadFile(overridesPath)
		if err != nil {
			return err
		}

		cfg.Overrides = table
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	out, report, err := mend.Run(string(raw), cfg)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = inPath
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(outPath, []byte(out), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	for _, w := range report.Diagnostics.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	fmt.Printf("mutable defaults rewritten: %d\n", report.MutableDefaults)
	fmt.Printf("records flattened:          %d\n", report.Flattened)
	fmt.Printf("records overridden:         %d\n", report.Overridden)
	fmt.Printf("total fixes:                %d\n", report.Total())

	return nil
}
