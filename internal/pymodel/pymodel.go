package pymodel

import "strings"

// Field is one declared member of a record: a name, a type expression, and
// an optional default expression.
type Field struct {
	// Name is the field identifier, unique within its own record body.
	Name string
	// Type is the type expression, verbatim (e.g. "Optional[Dict[str, Any]]").
	Type string
	// Default is the default expression, verbatim. Only meaningful when
	// HasDefault is true.
	Default string
	// HasDefault reports whether the declaration carries "= default".
	HasDefault bool
}

// Record is one dataclass definition found in generated source.
type Record struct {
	// Name is the record's type name.
	Name string
	// Parent is the single parent type name, or empty for a root record.
	Parent string
	// Fields are the record's own declared fields, in declaration order.
	Fields []Field
	// Start and End delimit the record's full definition in the scanned
	// source, from the marker line through the end of the last body line
	// (exclusive, not counting the trailing newline).
	Start, End int
}

// HasParent reports whether the record declares a parent.
func (r Record) HasParent() bool {
	return r.Parent != ""
}

// Render emits a parent-less record definition in the generator's own
// convention. An empty field list renders a "pass" body so the result stays
// a valid definition.
func Render(name string, fields []Field) string {
	var b strings.Builder

	b.WriteString("@dataclass\n")
	b.WriteString("class " + name + ":\n")

	if len(fields) == 0 {
		b.WriteString("    pass")

		return b.String()
	}

	for i, f := range fields {
		b.WriteString("    " + f.Name + ": " + f.Type)
		if f.HasDefault {
			b.WriteString(" = " + f.Default)
		}

		if i < len(fields)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
