package mend

import (
	"model-mender/internal/override"
	"model-mender/internal/pymodel"
)

// ApplyOverrides replaces each record named in the table with its canonical
// definition, whatever the record's computed shape was and whether or not it
// went through flattening. Names with no matching record in the source are
// skipped without error. Returns the rewritten text and the number of
// replacements.
func ApplyOverrides(src string, table *override.Table) (string, int) {
	byName := make(map[string]override.RecordOverride, len(table.Records))
	for _, o := range table.Records {
		byName[o.Name] = o
	}

	var repls []replacement

	for _, rec := range pymodel.Scan(src) {
		o, ok := byName[rec.Name]
		if !ok {
			continue
		}

		repls = append(repls, replacement{
			start: rec.Start,
			end:   rec.End,
			text:  pymodel.Render(o.Name, o.Fields()),
		})
	}

	return spliceAll(src, repls), len(repls)
}
