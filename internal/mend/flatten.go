package mend

import (
	"fmt"

	"model-mender/internal/common"
	"model-mender/internal/diagnostic"
	"model-mender/internal/pymodel"
)

//go:generate go tool stringer -type=MissingParentPolicy -output=missingparentpolicy_string.go

// MissingParentPolicy controls what happens when a record's declared parent
// has no definition in the scanned source.
type MissingParentPolicy int

const (
	// MissingParentFail aborts the run with an error naming the record and
	// the missing parent. This is the default: flattening with an absent
	// ancestor silently drops fields the schema intended the record to have.
	MissingParentFail MissingParentPolicy = iota

	// MissingParentOwnFields stops traversal at the missing ancestor and
	// flattens with whatever fields were accumulated up to that point.
	MissingParentOwnFields

	// MissingParentKeep leaves the record untouched, parent reference intact.
	MissingParentKeep
)

// ParseMissingParentPolicy parses the CLI spelling of a policy.
func ParseMissingParentPolicy(s string) (MissingParentPolicy, error) {
	switch s {
	case "fail":
		return MissingParentFail, nil
	case "own-fields":
		return MissingParentOwnFields, nil
	case "keep":
		return MissingParentKeep, nil
	default:
		return MissingParentFail, fmt.Errorf("unknown missing-parent policy %q (want fail, own-fields, or keep)", s)
	}
}

// FlattenHierarchy rewrites every record that declares a parent as a flat,
// parent-less record whose field list is the deduplicated union of its
// ancestors' and its own fields: on a name collision the most-derived
// declaration wins, all required fields precede all defaulted fields, and
// relative order within each group follows the root-to-child merge order of
// the surviving declarations.
//
// Returns the rewritten text, the number of records flattened, and any
// non-fatal findings. The error is non-nil only under MissingParentFail.
func FlattenHierarchy(src string, policy MissingParentPolicy) (string, int, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	records := pymodel.Scan(src)
	if common.IsEmpty(records) {
		return src, 0, diags, nil
	}

	byName := make(map[string]pymodel.Record, len(records))
	for _, rec := range records {
		byName[rec.Name] = rec
	}

	var repls []replacement

	for _, rec := range records {
		if !rec.HasParent() {
			continue
		}

		fields, ok, err := resolveFields(rec, byName, policy, &diags)
		if err != nil {
			return src, 0, diags, err
		}

		if !ok {
			continue
		}

		repls = append(repls, replacement{
			start: rec.Start,
			end:   rec.End,
			text:  pymodel.Render(rec.Name, fields),
		})
	}

	return spliceAll(src, repls), len(repls), diags, nil
}

// resolveFields accumulates ancestor fields in root-to-child order, appends
// the record's own fields, deduplicates keeping the most-derived occurrence
// at its merge position, and partitions required fields before defaulted
// ones. The second return value is false when the record must be left
// untouched.
func resolveFields(rec pymodel.Record, byName map[string]pymodel.Record, policy MissingParentPolicy, diags *diagnostic.Diagnostics) ([]pymodel.Field, bool, error) {
	// Walk child-to-root, guarding against revisiting an ancestor so a
	// cycle or self-reference truncates instead of looping.
	var ancestors []pymodel.Record

	visited := map[string]struct{}{rec.Name: {}}
	parent := rec.Parent

	for parent != "" {
		p, ok := byName[parent]
		if !ok {
			switch policy {
			case MissingParentFail:
				return nil, false, fmt.Errorf("record %s: parent %s has no definition in the generated source", rec.Name, parent)
			case MissingParentKeep:
				diags.AddWarning("missing-parent", fmt.Sprintf("parent %s has no definition, record left unmodified", parent), rec.Name)

				return nil, false, nil
			default:
				diags.AddWarning("missing-parent", fmt.Sprintf("parent %s has no definition, ancestors beyond it are dropped", parent), rec.Name)
			}

			break
		}

		if _, seen := visited[p.Name]; seen {
			diags.AddWarning("inheritance-cycle", fmt.Sprintf("cycle through %s, traversal truncated", p.Name), rec.Name)

			break
		}

		visited[p.Name] = struct{}{}
		ancestors = append(ancestors, p)
		parent = p.Parent
	}

	// ancestors is child-to-root; merge root-to-child, then own fields.
	var merged []pymodel.Field

	for i := len(ancestors) - 1; i >= 0; i-- {
		merged = append(merged, ancestors[i].Fields...)
	}

	merged = append(merged, rec.Fields...)

	merged = common.DedupLastBy(merged, func(f pymodel.Field) string { return f.Name })
	merged = common.StablePartition(merged, func(f pymodel.Field) bool { return !f.HasDefault })

	return merged, true, nil
}
