// Package pymodel provides scanning and rendering for the record convention
// emitted by datamodel-codegen in dataclass mode.
//
// The convention is line-oriented:
//
//	@dataclass
//	class Name(Parent):
//	    field_name: TypeExpr
//	    other_field: TypeExpr = default
//
// The parent is optional, single, and always a bare identifier. Anything that
// does not match the convention (enums, imports, docstrings, malformed
// records) is skipped silently and survives rewriting byte-for-byte: the
// scanner records byte spans so passes can splice replacements without
// touching surrounding text.
package pymodel
