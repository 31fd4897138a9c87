package mend

import (
	"model-mender/internal/diagnostic"
	"model-mender/internal/override"
)

// Config holds configuration for a mend run.
type Config struct {
	// MissingParent controls handling of records whose declared parent has
	// no definition in the source.
	MissingParent MissingParentPolicy

	// Overrides is the manual override table applied as the final pass.
	// Nil disables the pass.
	Overrides *override.Table
}

// DefaultConfig returns the default pipeline configuration: fail on missing
// parents and apply the embedded override table.
func DefaultConfig() Config {
	return Config{
		MissingParent: MissingParentFail,
		Overrides:     override.Default(),
	}
}

// Report summarizes one pipeline run.
type Report struct {
	// MutableDefaults is the number of field declarations rewritten to
	// deferred construction.
	MutableDefaults int

	// Flattened is the number of records rewritten parent-less.
	Flattened int

	// Overridden is the number of records replaced from the override table.
	Overridden int

	// Diagnostics carries non-fatal findings from the passes.
	Diagnostics diagnostic.Diagnostics
}

// Total returns the combined number of rewrites across all passes.
func (r Report) Total() int {
	return r.MutableDefaults + r.Flattened + r.Overridden
}

// Run applies the passes in fixed order against one in-memory buffer:
// mutable-default normalization, hierarchy flattening, manual overrides.
// On error the input text is returned unchanged; the run either completes
// or aborts as a whole.
func Run(src string, cfg Config) (string, Report, error) {
	var report Report

	orig := src

	src, report.MutableDefaults = MendMutableDefaults(src)

	src, flattened, diags, err := FlattenHierarchy(src, cfg.MissingParent)
	if err != nil {
		return orig, Report{}, err
	}

	report.Flattened = flattened
	report.Diagnostics.Merge(diags)

	if cfg.Overrides != nil {
		src, report.Overridden = ApplyOverrides(src, cfg.Overrides)
	}

	return src, report, nil
}
