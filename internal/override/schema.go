package override

import (
	"fmt"
	"regexp"
	"strings"

	"model-mender/internal/pymodel"
)

// Table is the root of an override table: an immutable, read-only mapping
// from record name to canonical body, loaded once per run.
type Table struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Records lists the record definitions to replace outright.
	Records []RecordOverride `yaml:"records"`
}

// RecordOverride names one record and carries its canonical field body.
type RecordOverride struct {
	// Name is the record's type name, exactly as it appears in the
	// generated source.
	Name string `yaml:"name"`

	// Body is the canonical field list, one declaration per line.
	Body string `yaml:"body"`
}

var identRe = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// Validate checks that every override names a record and carries a body
// whose lines all follow the field declaration convention.
func (t *Table) Validate() error {
	seen := make(map[string]struct{}, len(t.Records))

	for i, rec := range t.Records {
		if !identRe.MatchString(rec.Name) {
			return fmt.Errorf("override %d: invalid record name %q", i, rec.Name)
		}

		if _, ok := seen[rec.Name]; ok {
			return fmt.Errorf("override %d: duplicate record name %q", i, rec.Name)
		}

		seen[rec.Name] = struct{}{}

		if len(rec.Fields()) == 0 {
			return fmt.Errorf("override %q: body has no field declarations", rec.Name)
		}

		for _, line := range bodyLines(rec.Body) {
			if _, ok := pymodel.ParseField(line); !ok {
				return fmt.Errorf("override %q: malformed field line %q", rec.Name, line)
			}
		}
	}

	return nil
}

// Fields parses the canonical body into field declarations. Malformed lines
// yield no field; Validate rejects them up front.
func (o RecordOverride) Fields() []pymodel.Field {
	var fields []pymodel.Field

	for _, line := range bodyLines(o.Body) {
		if f, ok := pymodel.ParseField(line); ok {
			fields = append(fields, f)
		}
	}

	return fields
}

func bodyLines(body string) []string {
	var lines []string

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
